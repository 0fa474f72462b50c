// SPDX-License-Identifier: MIT

// Command arcalc evaluates expressions, runs calculation scripts and prints
// Cayley tables for a configurable 16-blade algebra.
//
//	arcalc eval 'a1 ^ a2' 'd F'
//	arcalc run calc.arp --simplified
//	arcalc cayley --op by --signs
//	arcalc decompose B
//	arcalc info --metric -+++
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
