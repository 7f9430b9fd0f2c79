// internal/writers/text.go
package writers

import (
	"bufio"
	"io"
	"strconv"

	"seqsa/pkg/api"
)

const (
	textHeader        = "pattern\toffset"
	textHeaderRecords = "pattern\toffset\trecord\tpos"
)

func init() { Register(FormatText, writeText) }

// writeText prints one TSV row per occurrence, a "# not found" line for
// empty results and, when set, a trailing "# covered" line.
func writeText(w io.Writer, p Payload) error {
	bw := bufio.NewWriter(w)
	if p.Header {
		h := textHeader
		if p.Records {
			h = textHeaderRecords
		}
		if _, err := bw.WriteString(h + "\n"); err != nil {
			return err
		}
	}
	var row []byte
	for _, m := range p.Report.Results {
		if len(m.Offsets) == 0 {
			if _, err := bw.WriteString("# not found: " + m.Pattern + "\n"); err != nil {
				return err
			}
			continue
		}
		for i, off := range m.Offsets {
			row = appendRow(row[:0], m, i, off, p.Records)
			if _, err := bw.Write(row); err != nil {
				return err
			}
		}
	}
	if c := p.Report.CoveredBases; c != nil {
		if _, err := bw.WriteString("# covered: " + strconv.FormatUint(*c, 10) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendRow(b []byte, m api.MatchSetV1, i, off int, records bool) []byte {
	b = append(b, m.Pattern...)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(off), 10)
	if records && i < len(m.Hits) {
		b = append(b, '\t')
		b = append(b, m.Hits[i].Record...)
		b = append(b, '\t')
		b = strconv.AppendInt(b, int64(m.Hits[i].Pos), 10)
	}
	return append(b, '\n')
}
