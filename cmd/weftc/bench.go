package main

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBenchCmd() *cobra.Command {
	var n, shards int
	cmd := &cobra.Command{
		Use:   "bench <kernel>",
		Short: "shard n across goroutines and measure concurrent Run throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := findKernel(args[0])
			if !ok {
				return errors.Errorf("unknown kernel %q (see weftc demo --help)", args[0])
			}
			if k.name != "memcpy32" && k.name != "parity_flip32" {
				return errors.Errorf("weftc: bench only shards single-input/single-output kernels; got %q", k.name)
			}
			prog := k.build()

			out := make([]int32, n)
			in := make([]int32, n)
			for i := range in {
				in[i] = int32(i)
			}

			shardLen := (n + shards - 1) / shards
			start := time.Now()

			g, _ := errgroup.WithContext(context.Background())
			for s := 0; s < shards; s++ {
				lo := s * shardLen
				hi := lo + shardLen
				if hi > n {
					hi = n
				}
				if lo >= hi {
					continue
				}
				lo, hi := lo, hi
				g.Go(func() error {
					// Every shard's ptr[] points into disjoint slices of
					// the same backing arrays, so concurrent Run calls
					// never touch the same byte — the non-overlap the
					// caller must guarantee, per spec section 5.
					ptr := []unsafe.Pointer{ptr32(out[lo:hi]), ptr32(in[lo:hi])}
					prog.Run(hi-lo, ptr)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			elapsed := time.Since(start)
			fmt.Printf("%s: %s lanes across %d shards in %s (%s/s)\n",
				k.name, humanize.Comma(int64(n)), shards, elapsed,
				humanize.Comma(int64(float64(n)/elapsed.Seconds())))
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 1_000_000, "total lanes to process")
	cmd.Flags().IntVar(&shards, "shards", 8, "number of concurrent Run calls")
	return cmd
}
