// Package search finds every occurrence of an exact pattern using a
// suffix.Index. A Searcher holds no mutable state and may be shared freely.
package search

import (
	"bytes"
	"fmt"
	"slices"

	"seqsa-core/suffix"
)

// ErrEmptyPattern is returned for a zero-length pattern.
var ErrEmptyPattern = fmt.Errorf("%w: empty pattern", suffix.ErrInvalidArgument)

type Searcher struct {
	idx  *suffix.Index
	data []byte
}

func New(idx *suffix.Index) *Searcher {
	return &Searcher{idx: idx, data: idx.Data()}
}

// Index returns the suffix index the searcher reads.
func (s *Searcher) Index() *suffix.Index { return s.idx }

// Search returns every offset where pattern occurs, in ascending order.
// Overlapping occurrences are all reported. A pattern that never occurs
// yields an empty, non-nil slice.
func (s *Searcher) Search(pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	slot, ok := s.locate(pattern)
	if !ok {
		return []int{}, nil
	}

	out := []int{s.idx.Offset(slot)}
	for i := slot - 1; i >= 0 && s.hasPrefix(i, pattern); i-- {
		out = append(out, s.idx.Offset(i))
	}
	for i := slot + 1; i < s.idx.Len() && s.hasPrefix(i, pattern); i++ {
		out = append(out, s.idx.Offset(i))
	}
	slices.Sort(out)
	return out, nil
}

// locate binary-searches the suffix order for any slot whose suffix starts
// with pattern.
func (s *Searcher) locate(pattern []byte) (int, bool) {
	lo, hi := 0, s.idx.Len()
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		switch c := s.probe(pattern, s.idx.Offset(m)); {
		case c == 0:
			return m, true
		case c < 0:
			hi = m
		default:
			lo = m + 1
		}
	}
	return 0, false
}

// probe compares pattern against the suffix at off, over at most
// len(pattern) bytes. It returns 0 when the suffix starts with pattern,
// a negative value when pattern sorts before the suffix, positive after.
// A suffix that ends before the pattern does sorts before it.
func (s *Searcher) probe(pattern []byte, off int) int {
	for k, p := range pattern {
		if off+k >= len(s.data) {
			return 1
		}
		if d := s.data[off+k]; p != d {
			if p < d {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (s *Searcher) hasPrefix(slot int, pattern []byte) bool {
	return bytes.HasPrefix(s.idx.Suffix(slot), pattern)
}
