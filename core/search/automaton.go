package search

import (
	"context"
	"fmt"
)

/*
Aho-Corasick multi-pattern scanner.

- NewAutomaton(patterns) builds a trie over a compacted alphabet, sets failure
  links breadth-first and fills every missing edge from the failure state, so
  a scan is one table lookup per byte.
- ScanAll(ctx, data) reports every (overlapping) occurrence of every pattern
  in one pass over data.
*/

// ctxCheckEvery is how many bytes ScanAll reads between ctx checks.
const ctxCheckEvery = 1 << 20

// Automaton finds a fixed set of patterns in one pass. Safe for concurrent use.
type Automaton struct {
	patterns [][]byte
	class    [256]int32 // byte → alphabet column; 0 = in no pattern
	width    int        // columns per state
	next     []int32    // state*width + column → state
	out      [][]int    // pattern indexes ending at each state, failure outputs included
}

// NewAutomaton compiles patterns. Duplicates are allowed and each gets its
// own result.
func NewAutomaton(patterns [][]byte) (*Automaton, error) {
	a := &Automaton{patterns: patterns, width: 1}
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, fmt.Errorf("pattern #%d: %w", i+1, ErrEmptyPattern)
		}
		for _, b := range p {
			if a.class[b] == 0 {
				a.class[b] = int32(a.width)
				a.width++
			}
		}
	}

	// 1) Trie edges; state 0 is the root and 0 also means "no edge".
	a.next = make([]int32, a.width)
	a.out = make([][]int, 1)
	for i, p := range patterns {
		cur := 0
		for _, b := range p {
			e := cur*a.width + int(a.class[b])
			if a.next[e] == 0 {
				a.next = append(a.next, make([]int32, a.width)...)
				a.out = append(a.out, nil)
				a.next[e] = int32(len(a.out) - 1)
			}
			cur = int(a.next[e])
		}
		a.out[cur] = append(a.out[cur], i)
	}

	// 2) BFS: failure links, outputs and the missing edges.
	fail := make([]int32, len(a.out))
	queue := make([]int32, 0, len(a.out))
	for c := 1; c < a.width; c++ {
		if s := a.next[c]; s != 0 {
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		r := int(queue[0])
		queue = queue[1:]
		f := int(fail[r])
		for c := 1; c < a.width; c++ {
			e := r*a.width + c
			s := a.next[e]
			if s == 0 {
				a.next[e] = a.next[f*a.width+c]
				continue
			}
			fail[s] = a.next[f*a.width+c]
			if fo := a.out[fail[s]]; len(fo) > 0 {
				a.out[s] = append(a.out[s], fo...)
			}
			queue = append(queue, s)
		}
	}
	return a, nil
}

// ScanAll returns, for each pattern in compile order, its ascending
// occurrence offsets in data. Patterns that never occur get an empty slice.
func (a *Automaton) ScanAll(ctx context.Context, data []byte) ([][]int, error) {
	res := make([][]int, len(a.patterns))
	for i := range res {
		res[i] = []int{}
	}
	state := 0
	for i, b := range data {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		state = int(a.next[state*a.width+int(a.class[b])])
		for _, p := range a.out[state] {
			res[p] = append(res[p], i-len(a.patterns[p])+1)
		}
	}
	return res, nil
}
