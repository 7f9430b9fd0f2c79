// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"seqsa/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections between the header and the shared
// Output/Logging/Miscellaneous blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s - suffix-array exact search for nucleotide sequences\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no pattern matched [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nLogging:")
		fmt.Fprintf(out, "      --timings               Log load/build/search durations [%s]\n", def("timings"))
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
