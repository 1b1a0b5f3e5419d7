// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the entry point shared by the faseek tools.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires a tool's RunContext to the process: a signal-aware
// context, empty argv rewritten to -h, and exit code 130 when a
// signal ended the run without the tool reporting its own failure.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
