// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqsa/internal/clibase"
	"seqsa/internal/cliutil"
	"seqsa/internal/logging"
)

// Search methods
const (
	MethodIndex = "index"
	MethodScan  = "scan"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Sequence    string
	Patterns    []string
	PatternFile string

	// Index
	Method    string
	Algorithm string
	Threads   int

	// Diagnostics
	Dump    bool
	Preview int

	// Output
	Output          string // text|json|jsonl
	Header          bool   // true unless --no-header
	Coverage        bool
	Records         bool
	NoMatchExitCode int

	// Logging
	Timings   bool
	LogLevel  string
	LogFormat string

	// Object store
	S3Endpoint string
	S3Region   string
	S3Insecure bool

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --pattern/-p)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// NewFlagSet returns a FlagSet with ContinueOnError and the seqsa usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] SEQUENCE [PATTERN...]\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -s, --sequence string       FASTA file, '-' for STDIN, or s3://bucket/key")
		_, _ = fmt.Fprintln(out, "  -p, --pattern string        Pattern to search for (repeatable)")
		_, _ = fmt.Fprintln(out, "  -P, --patterns file         File with one pattern per line ('#' comments)")
		_, _ = fmt.Fprintf(out, "      --s3-endpoint string    Object store endpoint [%s]\n", def("s3-endpoint"))
		_, _ = fmt.Fprintf(out, "      --s3-region string      Object store region [%s]\n", def("s3-region"))
		_, _ = fmt.Fprintf(out, "      --s3-insecure           Use plain HTTP for the object store [%s]\n", def("s3-insecure"))

		_, _ = fmt.Fprintln(out, "\nSearch:")
		_, _ = fmt.Fprintf(out, "      --method string         index | scan [%s]\n", def("method"))
		_, _ = fmt.Fprintf(out, "      --algorithm string      Suffix sort: doubling | naive [%s]\n", def("algorithm"))
		_, _ = fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		_, _ = fmt.Fprintf(out, "      --coverage              Report positions covered by any hit [%s]\n", def("coverage"))
		_, _ = fmt.Fprintf(out, "      --records               Annotate hits with FASTA record and position [%s]\n", def("records"))

		_, _ = fmt.Fprintln(out, "\nDiagnostics:")
		_, _ = fmt.Fprintf(out, "      --dump                  Print the sorted suffix listing [%s]\n", def("dump"))
		_, _ = fmt.Fprintf(out, "      --preview int           Listing preview width [%s]\n", def("preview"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for seqsa.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "seqsa", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Exact search: every offset where a pattern occurs.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  seqsa ref.fa GATTACA")
		_, _ = fmt.Fprintln(w, "  seqsa --output json --coverage -P primers.txt ref.fa.gz")
		_, _ = fmt.Fprintln(w, "  seqsa --dump --preview 20 small.fa")
		_, _ = fmt.Fprintln(w, "  zcat ref.fa.gz | seqsa - ACGT TTTT")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples, noHeader bool

	// Input
	fs.StringVar(&o.Sequence, "sequence", "", "FASTA file, '-' or s3://bucket/key")
	fs.StringVar(&o.Sequence, "s", "", "alias of --sequence")
	pv := &sliceValue{dst: &o.Patterns}
	fs.Var(pv, "pattern", "pattern (repeatable)")
	fs.Var(pv, "p", "alias of --pattern")
	fs.StringVar(&o.PatternFile, "patterns", "", "file with one pattern per line")
	fs.StringVar(&o.PatternFile, "P", "", "alias of --patterns")
	fs.StringVar(&o.S3Endpoint, "s3-endpoint", "s3.amazonaws.com", "object store endpoint")
	fs.StringVar(&o.S3Region, "s3-region", "", "object store region")
	fs.BoolVar(&o.S3Insecure, "s3-insecure", false, "plain HTTP for the object store [false]")

	// Search
	fs.StringVar(&o.Method, "method", MethodIndex, "index | scan [index]")
	fs.StringVar(&o.Algorithm, "algorithm", "doubling", "doubling | naive [doubling]")
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")
	fs.BoolVar(&o.Coverage, "coverage", false, "report covered positions [false]")
	fs.BoolVar(&o.Records, "records", false, "annotate hits with record/position [false]")

	// Diagnostics
	fs.BoolVar(&o.Dump, "dump", false, "print the sorted suffix listing [false]")
	fs.IntVar(&o.Preview, "preview", 50, "listing preview width [50]")

	// Output
	fs.StringVar(&o.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no pattern matched [1]")

	// Logging
	fs.BoolVar(&o.Timings, "timings", false, "log durations [false]")
	fs.StringVar(&o.LogLevel, "log-level", "warn", "debug | info | warn | error [warn]")
	fs.StringVar(&o.LogFormat, "log-format", "text", "text | json [text]")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !noHeader

	if o.Sequence == "" && len(posArgs) > 0 {
		o.Sequence, posArgs = posArgs[0], posArgs[1:]
	}
	o.Patterns = append(o.Patterns, posArgs...)
	if o.Sequence != "" {
		src, err := cliutil.ExpandSource(o.Sequence)
		if err != nil {
			return o, err
		}
		o.Sequence = src
	}
	return o, Validate(&o)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Sequence == "" {
		return errors.New("a sequence source is required")
	}
	if len(o.Patterns) == 0 && o.PatternFile == "" && !o.Dump {
		return errors.New("provide at least one pattern (positional, --pattern or --patterns)")
	}
	switch o.Method {
	case MethodIndex, MethodScan:
	default:
		return fmt.Errorf("invalid --method %q", o.Method)
	}
	switch o.Algorithm {
	case "doubling", "naive":
	default:
		return fmt.Errorf("invalid --algorithm %q", o.Algorithm)
	}
	if o.Dump && o.Method == MethodScan {
		return errors.New("--dump needs --method index")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Preview < 0 {
		return errors.New("--preview must be ≥ 0")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Coverage && o.Output == "jsonl" {
		return errors.New("--coverage is reported by --output text or json, not jsonl")
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	switch o.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
