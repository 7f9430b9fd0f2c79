// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf prints an "error: " line to dst and returns code.
func Errorf(dst io.Writer, code int, format string, a ...any) int {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
	return code
}
