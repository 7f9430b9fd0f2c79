package search

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patterns(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestSearchAllKeepsOrder(t *testing.T) {
	s := newSearcher(t, "ACGTACGTA")
	ps := patterns("ACGT", "TTT", "A", "GTA")

	var calls atomic.Int32
	got, err := SearchAll(context.Background(), s, ps,
		WithConcurrency(2),
		WithProgress(func(done, total int) {
			calls.Add(1)
			assert.Equal(t, 4, total)
			assert.LessOrEqual(t, done, total)
		}),
	)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, r := range got {
		assert.Equal(t, ps[i], r.Pattern)
		want, err := s.Search(ps[i])
		require.NoError(t, err)
		assert.Equal(t, want, r.Offsets)
	}
	assert.Equal(t, int32(4), calls.Load())
}

func TestSearchAllLinearEqualsIndexed(t *testing.T) {
	seq := "GATTACAGATTACACATTAG"
	ps := patterns("GATTACA", "CA", "TTA", "GGG")
	indexed, err := SearchAll(context.Background(), newSearcher(t, seq), ps)
	require.NoError(t, err)
	linear, err := SearchAll(context.Background(), Linear(seq), ps)
	require.NoError(t, err)
	assert.Equal(t, indexed, linear)
}

func TestSearchAllBatchEqualsPerPattern(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	seq := randomSeq(r, 5000, "ACGT")
	ps := make([][]byte, 64)
	for i := range ps {
		ps[i] = randomSeq(r, 1+i%9, "ACGT")
	}
	ps = append(ps, ps[3]) // repeated query

	var progress [][2]int
	batch, err := SearchAll(context.Background(), Linear(seq), ps,
		WithProgress(func(done, total int) { progress = append(progress, [2]int{done, total}) }))
	require.NoError(t, err)
	indexed, err := SearchAll(context.Background(), newSearcher(t, string(seq)), ps, WithConcurrency(4))
	require.NoError(t, err)
	require.Equal(t, indexed, batch)
	for i, p := range ps {
		want, err := Scan(seq, p)
		require.NoError(t, err)
		assert.Equal(t, want, batch[i].Offsets, "pattern %q", p)
	}
	assert.Equal(t, [][2]int{{len(ps), len(ps)}}, progress)
}

func TestSearchAllLinearCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SearchAll(ctx, Linear("ACGT"), patterns("A", "C"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchAllRejectsEmptyBeforeWork(t *testing.T) {
	var calls atomic.Int32
	_, err := SearchAll(context.Background(), newSearcher(t, "ACGT"), patterns("A", "", "C"),
		WithProgress(func(int, int) { calls.Add(1) }))
	require.ErrorIs(t, err, ErrEmptyPattern)
	assert.Contains(t, err.Error(), "pattern #2")
	assert.Zero(t, calls.Load())
}

func TestSearchAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SearchAll(ctx, newSearcher(t, "ACGT"), patterns("A", "C"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchAllEmptyInput(t *testing.T) {
	got, err := SearchAll(context.Background(), newSearcher(t, "ACGT"), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
