package suffix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultPreview is the listing width used when none is given.
const DefaultPreview = 50

var rule = strings.Repeat("-", 73)

// Preview returns at most n leading bytes of the i-th smallest suffix.
func (x *Index) Preview(i, n int) []byte {
	s := x.Suffix(i)
	if n >= 0 && len(s) > n {
		s = s[:n]
	}
	return s
}

// WriteListing writes every suffix in sorted order next to its offset,
// each truncated to preview bytes (DefaultPreview if preview <= 0).
func (x *Index) WriteListing(w io.Writer, preview int) error {
	if preview <= 0 {
		preview = DefaultPreview
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "Index | Sequence")
	fmt.Fprintln(bw, rule)
	for i := range x.sa {
		fmt.Fprintf(bw, "  %3d | \"%s\"\n", x.sa[i], x.Preview(i, preview))
	}
	fmt.Fprintln(bw, rule)
	return bw.Flush()
}
