// pkg/api/report_v1.go
package api

// HitV1 locates one occurrence inside its FASTA record.
type HitV1 struct {
	Offset int    `json:"offset"`
	Record string `json:"record"`
	Pos    int    `json:"pos"` // 0-based, record-relative
}

// MatchSetV1 is the stable JSON/JSONL schema for one query.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchSetV1 struct {
	Pattern string  `json:"pattern"`
	Count   int     `json:"count"`
	Offsets []int   `json:"offsets"` // ascending; [] when not found
	Hits    []HitV1 `json:"hits,omitempty"`
}

// ReportV1 is the single document written by --output json.
type ReportV1 struct {
	RunID        string       `json:"run_id"`
	Source       string       `json:"source"`
	ValidBytes   int          `json:"valid_bytes"`
	Method       string       `json:"method"`
	Results      []MatchSetV1 `json:"results"`
	CoveredBases *uint64      `json:"covered_bases,omitempty"`
}
