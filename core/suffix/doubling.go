package suffix

// buildDoubling ranks suffixes by their first k bytes for k = 1, 2, 4, ...
// The rank of a suffix that runs off the end at i+k is -1, so a shorter
// suffix sorts before a longer one sharing its prefix.
func buildDoubling(data []byte, workers int) ([]int, error) {
	n := len(data)
	sa := identity(n)
	if n == 0 {
		return sa, nil
	}
	rank := make([]int, n)
	next := make([]int, n)
	for i, b := range data {
		rank[i] = int(b)
	}

	for k := 1; ; k <<= 1 {
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		cmp := func(a, b int) int {
			if rank[a] != rank[b] {
				return rank[a] - rank[b]
			}
			return second(a) - second(b)
		}
		if err := sortOffsets(sa, cmp, workers); err != nil {
			return nil, err
		}

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if cmp(sa[i-1], sa[i]) < 0 {
				next[sa[i]]++
			}
		}
		rank, next = next, rank
		if rank[sa[n-1]] == n-1 || k >= n {
			return sa, nil
		}
	}
}
