package search

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Finder is anything that can answer a single exact-match query.
type Finder interface {
	Search(pattern []byte) ([]int, error)
}

// BatchFinder answers a whole set of queries at once. SearchAll uses
// SearchBatch instead of per-pattern Search when f implements it.
type BatchFinder interface {
	Finder
	SearchBatch(ctx context.Context, patterns [][]byte) ([][]int, error)
}

// Linear adapts a raw buffer to Finder using Scan. Batches go through one
// Automaton pass.
type Linear []byte

func (l Linear) Search(pattern []byte) ([]int, error) { return Scan(l, pattern) }

func (l Linear) SearchBatch(ctx context.Context, patterns [][]byte) ([][]int, error) {
	a, err := NewAutomaton(patterns)
	if err != nil {
		return nil, err
	}
	return a.ScanAll(ctx, l)
}

// Result pairs a query with its ascending occurrence offsets.
type Result struct {
	Pattern []byte
	Offsets []int
}

type batchOptions struct {
	concurrency int
	progress    func(done, total int)
}

// Option configures SearchAll.
type Option func(*batchOptions)

// WithConcurrency bounds how many queries run at once (0 = GOMAXPROCS).
// A BatchFinder runs the whole batch as one call.
func WithConcurrency(n int) Option {
	return func(o *batchOptions) { o.concurrency = n }
}

// WithProgress registers fn to be called after each finished query.
// fn may be called from several goroutines at once.
func WithProgress(fn func(done, total int)) Option {
	return func(o *batchOptions) { o.progress = fn }
}

// SearchAll runs every pattern against f concurrently. Results keep the
// order of patterns. All patterns are validated before any query runs.
func SearchAll(ctx context.Context, f Finder, patterns [][]byte, opts ...Option) ([]Result, error) {
	o := batchOptions{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, fmt.Errorf("pattern #%d: %w", i+1, ErrEmptyPattern)
		}
	}

	if bf, ok := f.(BatchFinder); ok {
		return searchBatch(ctx, bf, patterns, o)
	}

	results := make([]Result, len(patterns))
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, p := range patterns {
		if gctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			offs, err := f.Search(p)
			if err != nil {
				return fmt.Errorf("pattern %q: %w", p, err)
			}
			results[i] = Result{Pattern: p, Offsets: offs}
			if o.progress != nil {
				o.progress(int(done.Add(1)), len(patterns))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func searchBatch(ctx context.Context, bf BatchFinder, patterns [][]byte, o batchOptions) ([]Result, error) {
	offs, err := bf.SearchBatch(ctx, patterns)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]Result, len(patterns))
	for i, p := range patterns {
		results[i] = Result{Pattern: p, Offsets: offs[i]}
	}
	if o.progress != nil && len(patterns) > 0 {
		o.progress(len(patterns), len(patterns))
	}
	return results, nil
}
