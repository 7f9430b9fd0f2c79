package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomatonOverlapsAndNesting(t *testing.T) {
	a, err := NewAutomaton(patterns("AA", "A", "AAA", "CAT", "AT", "GG"))
	require.NoError(t, err)
	got, err := a.ScanAll(context.Background(), []byte("AAAACATX"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, 2},
		{0, 1, 2, 3, 5},
		{0, 1},
		{4},
		{5},
		{},
	}, got)
}

func TestAutomatonDuplicatesAndForeignBytes(t *testing.T) {
	a, err := NewAutomaton(patterns("AC", "AC"))
	require.NoError(t, err)
	got, err := a.ScanAll(context.Background(), []byte("ANACnAC"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 5}, {2, 5}}, got)
}

func TestAutomatonRejectsEmpty(t *testing.T) {
	_, err := NewAutomaton(patterns("A", ""))
	require.ErrorIs(t, err, ErrEmptyPattern)
	assert.Contains(t, err.Error(), "pattern #2")
}

func TestAutomatonCanceled(t *testing.T) {
	a, err := NewAutomaton(patterns("A"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.ScanAll(ctx, []byte("AAAA"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAutomatonMatchesScanAndIndex(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		alphabet := "ACGT"
		if round%3 == 0 {
			alphabet = "AC"
		}
		seq := randomSeq(r, 1+r.Intn(400), alphabet)
		ps := make([][]byte, 1+r.Intn(12))
		for i := range ps {
			if r.Intn(2) == 0 && len(seq) > 1 {
				off := r.Intn(len(seq))
				end := off + 1 + r.Intn(min(8, len(seq)-off))
				ps[i] = append([]byte(nil), seq[off:end]...)
			} else {
				ps[i] = randomSeq(r, 1+r.Intn(6), "ACGTN")
			}
		}

		a, err := NewAutomaton(ps)
		require.NoError(t, err)
		got, err := a.ScanAll(context.Background(), seq)
		require.NoError(t, err)

		s := newSearcher(t, string(seq))
		for i, p := range ps {
			want, err := Scan(seq, p)
			require.NoError(t, err)
			require.Equal(t, want, got[i], "round %d pattern %q in %q", round, p, seq)
			indexed, err := s.Search(p)
			require.NoError(t, err)
			require.Equal(t, indexed, got[i], "round %d pattern %q", round, p)
		}
	}
}
