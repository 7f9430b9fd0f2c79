package suffix

import (
	"bytes"
	"fmt"
)

// Index is an immutable suffix array over data. Safe for concurrent reads.
type Index struct {
	data []byte
	sa   []int
}

// Build sorts every suffix of buf[:validBytes]. buf is borrowed, not copied.
func Build(buf []byte, validBytes int, opts ...Option) (*Index, error) {
	if validBytes < 0 || validBytes > len(buf) {
		return nil, &ValidBytesError{Valid: validBytes, Cap: len(buf)}
	}
	o := options{algorithm: Doubling}
	for _, fn := range opts {
		fn(&o)
	}

	data := buf[:validBytes:validBytes]
	var (
		sa  []int
		err error
	)
	switch o.algorithm {
	case Naive:
		sa, err = buildNaive(data, o.workers)
	case Doubling:
		sa, err = buildDoubling(data, o.workers)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %v", ErrInvalidArgument, o.algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("suffix sort: %w", err)
	}
	return &Index{data: data, sa: sa}, nil
}

// Compare orders the suffixes of data starting at a and b. A suffix that runs
// out first is the smaller one.
func Compare(data []byte, a, b int) int {
	return bytes.Compare(data[a:], data[b:])
}

func buildNaive(data []byte, workers int) ([]int, error) {
	sa := identity(len(data))
	if err := sortOffsets(sa, func(a, b int) int { return Compare(data, a, b) }, workers); err != nil {
		return nil, err
	}
	return sa, nil
}

func identity(n int) []int {
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	return sa
}

// Len is the number of suffixes, i.e. the valid length of the buffer.
func (x *Index) Len() int { return len(x.sa) }

// Offset returns the starting offset of the i-th smallest suffix.
func (x *Index) Offset(i int) int { return x.sa[i] }

// Offsets returns a copy of the sorted offsets.
func (x *Index) Offsets() []int {
	out := make([]int, len(x.sa))
	copy(out, x.sa)
	return out
}

// Data returns the indexed bytes. Callers must not modify them.
func (x *Index) Data() []byte { return x.data }

// Suffix returns the bytes of the i-th smallest suffix, aliasing Data.
func (x *Index) Suffix(i int) []byte { return x.data[x.sa[i]:] }
