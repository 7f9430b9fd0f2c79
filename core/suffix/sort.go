package suffix

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// Below this many offsets a parallel sort costs more than it saves.
const minParallel = 1 << 14

// sortOffsets sorts s by cmp. With workers > 1 it sorts equal-sized runs in
// parallel and merges neighbouring runs level by level, at most workers
// goroutines at a time. cmp must only read shared state.
func sortOffsets(s []int, cmp func(a, b int) int, workers int) error {
	if workers < 2 || len(s) < minParallel {
		slices.SortFunc(s, cmp)
		return nil
	}
	if workers > len(s)/minParallel {
		workers = len(s) / minParallel
	}

	bounds := make([]int, 0, workers+1)
	for w := 0; w <= workers; w++ {
		bounds = append(bounds, w*len(s)/workers)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i+1 < len(bounds); i++ {
		run := s[bounds[i]:bounds[i+1]]
		g.Go(func() error {
			slices.SortFunc(run, cmp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	src, dst := s, make([]int, len(s))
	for len(bounds) > 2 {
		merged := []int{0}
		for i := 0; i+1 < len(bounds); i += 2 {
			lo := bounds[i]
			if i+2 >= len(bounds) {
				hi := bounds[i+1]
				copy(dst[lo:hi], src[lo:hi])
				merged = append(merged, hi)
				continue
			}
			mid, hi := bounds[i+1], bounds[i+2]
			g.Go(func() error {
				mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
				return nil
			})
			merged = append(merged, hi)
		}
		if err := g.Wait(); err != nil {
			return err
		}
		src, dst = dst, src
		bounds = merged
	}
	if &src[0] != &s[0] {
		copy(s, src)
	}
	return nil
}

// mergeRuns merges sorted a and b into dst, preferring a on ties.
func mergeRuns(dst, a, b []int, cmp func(a, b int) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
