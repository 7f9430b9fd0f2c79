// internal/runutil/runutil.go
package runutil

import "runtime"

// Workers resolves the --threads value: 0 (or less) means all CPUs.
func Workers(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// Dedupe drops repeated patterns while keeping first-seen order. onDup is
// called once per dropped entry.
func Dedupe(patterns []string, onDup func(string)) []string {
	seen := make(map[string]struct{}, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if _, dup := seen[p]; dup {
			if onDup != nil {
				onDup(p)
			}
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
