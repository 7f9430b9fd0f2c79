// Package appshell runs a RunContext-style entry point as a process.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by app entry points.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires SIGINT/SIGTERM to ctx, runs run with the process arguments and
// exits with its code. An interrupted run exits 130 even if run returned 0.
func Main(run RunFunc) {
	os.Exit(exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
