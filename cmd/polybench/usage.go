package main

import (
	"fmt"
	"io"
	"strconv"

	benchErrors "polybench/internal/errors"
	"polybench/internal/registry"
	"polybench/internal/workload"
)

// printUsage writes the invocation synopsis and every valid argument.
func printUsage(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, "Usage: polybench [category] [workload] [-n iterations] [-s]")
	fmt.Fprintln(w, "       polybench <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runs every test when no category and workload are given.")
	fmt.Fprintln(w)
	printValidArguments(w, reg)
}

func printValidArguments(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, "Valid arguments:")
	fmt.Fprintln(w, "  Polymorphism categories:")
	for _, c := range reg.Categories() {
		fmt.Fprintf(w, "    %s\n", c)
	}
	fmt.Fprintln(w, "  Computations:")
	for _, name := range workload.Names() {
		fmt.Fprintf(w, "    %s\n", name)
	}
}

// ParseIterations parses a strictly positive decimal iteration count. The
// whole input must be a number, so "100abc" is rejected.
func ParseIterations(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &benchErrors.IterationError{Input: s, Err: err}
	}
	if n == 0 {
		return 0, &benchErrors.IterationError{Input: s}
	}
	return n, nil
}
