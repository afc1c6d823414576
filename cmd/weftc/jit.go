package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newJitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jit <kernel>",
		Short: "report what the jit interface would need to compile a kernel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := findKernel(args[0])
			if !ok {
				return errors.Errorf("unknown kernel %q (see weftc demo --help)", args[0])
			}
			prog := k.build()

			buf := make([]byte, 64*1024)
			n := prog.Jit(buf)
			if n == 0 {
				fmt.Printf("%s: jit declined (no emitter registered for one or more of its %d instructions)\n",
					k.name, prog.NumInsts())
				return nil
			}
			fmt.Printf("%s: jit emitted %s of machine code\n", k.name, humanizeBytes(n))
			return nil
		},
	}
	return cmd
}
