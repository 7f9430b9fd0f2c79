// internal/query/loader.go
package query

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadFile reads one pattern per line. Blank lines and lines starting
// with '#' are skipped.
func LoadFile(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	list, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s%w", path, err)
	}
	return list, nil
}

// Load is LoadFile over an open reader. Errors are prefixed with ":<line>".
func Load(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.IndexFunc(line, isSpace) >= 0 {
			return nil, fmt.Errorf(":%d pattern contains whitespace", ln)
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf(":%d %w", ln, err)
	}
	return list, nil
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
