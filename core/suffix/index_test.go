package suffix

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteSA sorts offsets by materialized suffix strings.
func bruteSA(data []byte) []int {
	sa := identity(len(data))
	slices.SortFunc(sa, func(a, b int) int { return strings.Compare(string(data[a:]), string(data[b:])) })
	return sa
}

func randomSeq(r *rand.Rand, n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return out
}

func TestBuildKnownOrder(t *testing.T) {
	idx, err := Build([]byte("banana"), 6)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1, 0, 4, 2}, idx.Offsets())
	assert.Equal(t, 6, idx.Len())
	assert.Equal(t, []byte("a"), idx.Suffix(0))
}

func TestBuildRespectsValidBytes(t *testing.T) {
	buf := []byte("ACGTxxxxxxxx") // over-allocated tail must be ignored
	idx, err := Build(buf, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, idx.Offsets())
	assert.Equal(t, []byte("ACGT"), idx.Data())
}

func TestBuildInvalidValidBytes(t *testing.T) {
	for _, valid := range []int{-1, 5} {
		_, err := Build([]byte("ACGT"), valid)
		require.Error(t, err, "valid=%d", valid)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		var vb *ValidBytesError
		require.True(t, errors.As(err, &vb))
		assert.Equal(t, valid, vb.Valid)
		assert.Equal(t, 4, vb.Cap)
	}
}

func TestBuildUnknownAlgorithm(t *testing.T) {
	_, err := Build([]byte("ACGT"), 4, WithAlgorithm(Algorithm(42)))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBuildEmptyAndSingle(t *testing.T) {
	for _, alg := range []Algorithm{Naive, Doubling} {
		idx, err := Build(nil, 0, WithAlgorithm(alg))
		require.NoError(t, err)
		assert.Equal(t, 0, idx.Len())

		idx, err = Build([]byte("G"), 1, WithAlgorithm(alg))
		require.NoError(t, err)
		assert.Equal(t, []int{0}, idx.Offsets())
	}
}

func TestBuildDoesNotMutateBuffer(t *testing.T) {
	buf := []byte("GATTACAGATTACA")
	orig := bytes.Clone(buf)
	_, err := Build(buf, len(buf))
	require.NoError(t, err)
	assert.Equal(t, orig, buf)
}

func TestShorterSuffixSortsFirst(t *testing.T) {
	data := []byte("AAAA")
	assert.Negative(t, Compare(data, 3, 2))
	assert.Positive(t, Compare(data, 0, 1))
	assert.Zero(t, Compare(data, 2, 2))

	idx, err := Build(data, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, idx.Offsets())
}

func TestCompareUnsignedBytes(t *testing.T) {
	data := []byte{0x01, 0xff}
	assert.Negative(t, Compare(data, 0, 1))
}

func TestBuildMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cases := map[string][]byte{
		"homopolymer":  bytes.Repeat([]byte("A"), 300),
		"dinucleotide": bytes.Repeat([]byte("AT"), 150),
		"binary":       {0, 255, 0, 255, 1, 0},
		"gattaca":      []byte("GATTACAGATTACA"),
	}
	for i := 0; i < 20; i++ {
		cases["random"+string(rune('a'+i))] = randomSeq(r, 1+r.Intn(400), "ACGT")
	}
	for name, data := range cases {
		want := bruteSA(data)
		for _, alg := range []Algorithm{Naive, Doubling} {
			idx, err := Build(data, len(data), WithAlgorithm(alg))
			require.NoError(t, err)
			assert.Equal(t, want, idx.Offsets(), "%s/%s", name, alg)
		}
	}
}

func TestSortedAndComplete(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	data := randomSeq(r, 2000, "ACGTN")
	idx, err := Build(data, len(data))
	require.NoError(t, err)

	seen := make([]bool, len(data))
	for i := 0; i < idx.Len(); i++ {
		off := idx.Offset(i)
		require.False(t, seen[off], "offset %d appears twice", off)
		seen[off] = true
		if i > 0 {
			require.LessOrEqual(t, Compare(data, idx.Offset(i-1), off), 0)
		}
	}
	assert.NotContains(t, seen, false)
}

func TestParallelBuildEqualsSerial(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	data := randomSeq(r, 5*minParallel+123, "ACGT")
	for _, alg := range []Algorithm{Naive, Doubling} {
		serial, err := Build(data, len(data), WithAlgorithm(alg))
		require.NoError(t, err)
		for _, w := range []int{2, 3, 5, 8} {
			par, err := Build(data, len(data), WithAlgorithm(alg), WithWorkers(w))
			require.NoError(t, err)
			require.Equal(t, serial.Offsets(), par.Offsets(), "%s workers=%d", alg, w)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("naive")
	require.NoError(t, err)
	assert.Equal(t, Naive, a)
	a, err = ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, Doubling, a)
	_, err = ParseAlgorithm("sais")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
}

func TestMergeRuns(t *testing.T) {
	dst := make([]int, 6)
	mergeRuns(dst, []int{1, 4, 9}, []int{2, 3, 10}, func(a, b int) int { return a - b })
	assert.Equal(t, []int{1, 2, 3, 4, 9, 10}, dst)
}

func TestSortOffsetsBoundedWorkers(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	n := 3*minParallel + 7
	want := make([]int, n)
	for i := range want {
		want[i] = r.Intn(1000)
	}
	cmp := func(a, b int) int { return a - b }
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	for _, w := range []int{1, 2, 3, 64} {
		got := slices.Clone(want)
		require.NoError(t, sortOffsets(got, cmp, w), "workers=%d", w)
		assert.Equal(t, sorted, got, "workers=%d", w)
	}
}
