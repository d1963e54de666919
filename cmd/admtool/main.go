// Command admtool validates, inspects, converts and catalogs ADM metadata.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx := newCommandContext()
	cmd := newRootCommand(ctx)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(signalCtx)
	if closeErr := ctx.close(); closeErr != nil {
		fmt.Fprintln(stderr, closeErr)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}
