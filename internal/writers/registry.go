// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqsa/pkg/api"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Payload is what every writer receives.
type Payload struct {
	Report  api.ReportV1
	Header  bool // text only
	Records bool // emit record/pos columns (text) or hits (json/jsonl)
}

// WriterFunc serializes one payload.
type WriterFunc func(w io.Writer, p Payload) error

// Writer registry (format → handler). Populated from init() blocks.
var registry = map[string]WriterFunc{}

// Register adds fn for format (last wins).
func Register(format string, fn WriterFunc) { registry[format] = fn }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}
