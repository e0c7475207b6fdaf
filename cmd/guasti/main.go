// SPDX-License-Identifier: MIT

// Command guasti explores the Guasti divisibility grid from the terminal.
//
//	guasti analyze 20
//	guasti grid multiplicative -n 8
//	guasti signature 12 16 --unit radians
//	guasti twins 1000 -o json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/guasti/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "guasti:", err)
		stop()
		os.Exit(1)
	}
}
