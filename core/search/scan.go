package search

import "bytes"

// Scan finds every occurrence of pattern in data with a linear scan.
// It honours the same contract as Searcher.Search and needs no index.
func Scan(data, pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	out := []int{}
	for off := 0; off+len(pattern) <= len(data); {
		i := bytes.Index(data[off:], pattern)
		if i < 0 {
			break
		}
		out = append(out, off+i)
		off += i + 1
	}
	return out, nil
}
