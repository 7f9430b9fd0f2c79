// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"
)

func init() {
	Register(FormatJSON, func(w io.Writer, p Payload) error {
		r := p.Report
		if !p.Records {
			r.Results = stripHits(r.Results)
		}
		return encodePretty(w, r)
	})
}

// encodePretty writes v as indented JSON to w.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
