// Command weftc is a small CLI front end for the weft engine: it runs
// one of a fixed catalog of built-in example kernels (never a
// user-supplied textual kernel language — weft has no source language
// to parse), benchmarks concurrent Run throughput, and reports what
// the jit interface would need to compile a kernel.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "weftc",
		Short: "weft demo/bench/jit CLI",
	}
	root.AddCommand(newDemoCmd(), newBenchCmd(), newJitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "weftc"))
		os.Exit(1)
	}
}

func humanizeBytes(n int) string {
	return humanize.Bytes(uint64(n))
}
