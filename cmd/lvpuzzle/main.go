// Command lvpuzzle runs the puzzle solvers against their input files and
// prints the answers on stdout. Diagnostics go to stderr; the exit status
// is 0 on success, 1 for I/O and usage failures, 2 for malformed input
// and 3 when an input has no solution.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, err := newRootCmd(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "lvpuzzle: %v\n", err)
		return puzzle.ExitFailure
	}
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "lvpuzzle: %v\n", err)
		return puzzle.ExitCode(err)
	}

	return puzzle.ExitOK
}
