// Package writers turns search results into serialized outputs.
//
// Writers own all presentation knowledge (text/JSON/JSONL). The app only
// assembles an api.ReportV1 and picks a format. JSON/JSONL go through
// pkg/api (v1) for a stable wire format.
package writers
