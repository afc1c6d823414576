package main

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "demo <kernel>",
		Short: "run a built-in demo kernel over n elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := findKernel(args[0])
			if !ok {
				return errors.Errorf("unknown kernel %q (see weftc demo --help)", args[0])
			}
			prog := k.build()
			fmt.Printf("%s: %s\n", k.name, k.desc)
			fmt.Printf("  live instructions after DCE: %d\n", prog.NumInsts())

			out := make([]int32, n)
			in := make([]int32, n)
			for i := range in {
				in[i] = int32(i)
			}
			a := int32(3)
			bias := int32(7)

			var ptr []unsafe.Pointer
			switch k.name {
			case "memset32":
				ptr = []unsafe.Pointer{ptr32(out)}
			case "memcpy32", "parity_flip32":
				ptr = []unsafe.Pointer{ptr32(out), ptr32(in)}
			case "axpy32":
				ptr = []unsafe.Pointer{ptr32(out), unsafe.Pointer(&a), ptr32(in), unsafe.Pointer(&bias)}
			default:
				return errors.Errorf("weftc: demo kernel %q has no pointer-array wiring", k.name)
			}

			prog.Run(n, ptr)

			limit := n
			if limit > 16 {
				limit = 16
			}
			fmt.Printf("  out[:%d] = %v\n", limit, out[:limit])
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 32, "number of lanes to process")
	return cmd
}

func ptr32(s []int32) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}
