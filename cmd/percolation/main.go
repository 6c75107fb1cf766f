// Command percolation estimates the site percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
//	percolation <n> <trials> [--seed S] [--workers W] [--json]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
