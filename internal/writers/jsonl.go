// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"seqsa/pkg/api"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

func init() {
	Register(FormatJSONL, func(w io.Writer, p Payload) error {
		pipe, done := StartMatchJSONLWriter(w, 64)
		results := p.Report.Results
		if !p.Records {
			results = stripHits(results)
		}
		for _, m := range results {
			pipe <- m
		}
		close(pipe)
		return <-done
	})
}

// StartMatchJSONLWriter spins up an encoder goroutine that writes each
// api.MatchSetV1 sent on the returned channel as one JSON line. Close the
// channel, then read the error channel once. Broken pipes are not errors.
func StartMatchJSONLWriter(out io.Writer, bufSize int) (chan<- api.MatchSetV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.MatchSetV1, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for m := range in {
			if err != nil {
				continue // drain so the sender never blocks
			}
			err = enc.Encode(m)
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}

func stripHits(in []api.MatchSetV1) []api.MatchSetV1 {
	out := make([]api.MatchSetV1, len(in))
	for i, m := range in {
		m.Hits = nil
		out[i] = m
	}
	return out
}
