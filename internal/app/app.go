// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"seqsa-core/fasta"
	"seqsa-core/search"
	"seqsa-core/suffix"
	"seqsa/internal/cli"
	"seqsa/internal/clibase"
	"seqsa/internal/cmdutil"
	"seqsa/internal/input"
	"seqsa/internal/logging"
	"seqsa/internal/query"
	"seqsa/internal/runutil"
	"seqsa/internal/version"
	"seqsa/internal/writers"
	"seqsa/pkg/api"
)

// Exit codes besides 0 and --no-match-exit-code.
const (
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

// progressInterval throttles "search progress" log lines.
const progressInterval = time.Second

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := cli.NewFlagSet("seqsa")
	fs.SetOutput(io.Discard) // silence default flag pkg

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flush(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqsa version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	level, _ := logging.ParseLevel(opts.LogLevel) // validated by cli
	if opts.Timings && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	log, err := logging.New(stderr, opts.LogFormat, level)
	if err != nil {
		return cmdutil.Errorf(stderr, ExitUsage, "%v", err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	r := &runner{opts: opts, log: log.WithSource(opts.Sequence), stderr: stderr}
	code := r.run(ctx, outw)
	if code == ExitInterrupted {
		return code
	}
	return flush(outw, stderr, code)
}

type runner struct {
	opts   cli.Options
	log    *logging.Logger
	stderr io.Writer
}

func (r *runner) run(ctx context.Context, out io.Writer) int {
	start := time.Now()
	opts := r.opts

	patterns, err := r.patterns()
	if err != nil {
		return cmdutil.Errorf(r.stderr, ExitUsage, "%v", err)
	}

	t0 := time.Now()
	seq, err := input.Open(ctx, opts.Sequence, input.Config{
		S3Endpoint: opts.S3Endpoint,
		S3Region:   opts.S3Region,
		S3Insecure: opts.S3Insecure,
	})
	if err != nil {
		if ctx.Err() != nil {
			return ExitInterrupted
		}
		r.log.LogLoad(ctx, 0, 0, time.Since(t0), err)
		return cmdutil.Errorf(r.stderr, ExitUsage, "%v", err)
	}
	r.log.LogLoad(ctx, seq.Valid, len(seq.Records), time.Since(t0), nil)
	if seq.Valid == 0 {
		cmdutil.Warnf(r.stderr, opts.Quiet, "%s: no sequence data", opts.Sequence)
	}

	workers := runutil.Workers(opts.Threads)
	var finder search.Finder = search.Linear(seq.Bytes())
	if opts.Method == cli.MethodIndex {
		idx, err := r.build(ctx, seq, workers)
		if err != nil {
			return cmdutil.Errorf(r.stderr, ExitUsage, "%v", err)
		}
		if opts.Dump {
			if err := idx.WriteListing(out, opts.Preview); err != nil {
				return r.writeFailed(err)
			}
		}
		finder = search.New(idx)
	}
	if len(patterns) == 0 {
		return 0
	}

	t0 = time.Now()
	queries := make([][]byte, len(patterns))
	for i, p := range patterns {
		queries[i] = []byte(p)
	}
	progress := rate.Sometimes{Interval: progressInterval}
	results, err := search.SearchAll(ctx, finder, queries,
		search.WithConcurrency(workers),
		search.WithProgress(func(done, total int) {
			progress.Do(func() {
				r.log.InfoContext(ctx, "search progress", "done", done, "total", total)
			})
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return ExitInterrupted
		}
		return cmdutil.Errorf(r.stderr, ExitUsage, "%v", err)
	}

	rep, hits, matched := r.report(seq, results)
	r.log.LogSearch(ctx, opts.Method, len(queries), hits, time.Since(t0))

	err = writers.Write(opts.Output, out, writers.Payload{
		Report:  rep,
		Header:  opts.Header,
		Records: opts.Records,
	})
	if err != nil {
		return r.writeFailed(err)
	}
	r.log.InfoContext(ctx, "run finished", "run_id", rep.RunID, "elapsed", time.Since(start))

	if matched == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// patterns merges positional/--pattern values with --patterns, then drops
// repeats with a warning.
func (r *runner) patterns() ([]string, error) {
	list := append([]string(nil), r.opts.Patterns...)
	if r.opts.PatternFile != "" {
		more, err := query.LoadFile(r.opts.PatternFile)
		if err != nil {
			return nil, err
		}
		list = append(list, more...)
	}
	return runutil.Dedupe(list, func(p string) {
		cmdutil.Warnf(r.stderr, r.opts.Quiet, "duplicate pattern %q searched once", p)
	}), nil
}

func (r *runner) build(ctx context.Context, seq *fasta.Sequence, workers int) (*suffix.Index, error) {
	alg, err := suffix.ParseAlgorithm(r.opts.Algorithm)
	if err != nil {
		return nil, err
	}
	t0 := time.Now()
	idx, err := suffix.Build(seq.Buf, seq.Valid, suffix.WithAlgorithm(alg), suffix.WithWorkers(workers))
	if err != nil {
		return nil, err
	}
	r.log.LogBuild(ctx, alg.String(), idx.Len(), time.Since(t0))
	return idx, nil
}

func (r *runner) report(seq *fasta.Sequence, results []search.Result) (api.ReportV1, int, int) {
	rep := api.ReportV1{
		RunID:      uuid.NewString(),
		Source:     r.opts.Sequence,
		ValidBytes: seq.Valid,
		Method:     r.opts.Method,
		Results:    make([]api.MatchSetV1, len(results)),
	}
	hits, matched := 0, 0
	for i, res := range results {
		m := api.MatchSetV1{
			Pattern: string(res.Pattern),
			Count:   len(res.Offsets),
			Offsets: res.Offsets,
		}
		if r.opts.Records {
			m.Hits = locate(seq, res.Offsets)
		}
		hits += m.Count
		if m.Count > 0 {
			matched++
		}
		rep.Results[i] = m
	}
	if r.opts.Coverage {
		n := search.Coverage(results).GetCardinality()
		rep.CoveredBases = &n
	}
	return rep, hits, matched
}

func locate(seq *fasta.Sequence, offsets []int) []api.HitV1 {
	out := make([]api.HitV1, len(offsets))
	for i, off := range offsets {
		id, pos, _ := seq.Locate(off)
		out[i] = api.HitV1{Offset: off, Record: id, Pos: pos}
	}
	return out
}

func (r *runner) writeFailed(err error) int {
	if writers.IsBrokenPipe(err) {
		return 0
	}
	return cmdutil.Errorf(r.stderr, ExitWrite, "%v", err)
}

// flush writes out buffered stdout; a broken pipe counts as success.
// A write error already reported (code == ExitWrite) is not repeated.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		if code != ExitWrite {
			_, _ = fmt.Fprintln(stderr, err)
		}
		return ExitWrite
	}
	return code
}
