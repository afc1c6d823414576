package main

import "weft"

// kernel is one entry in weftc's fixed demo catalog: build a Program
// (ptr[0] is always the output) and describe its shape for humans.
type kernel struct {
	name  string
	desc  string
	build func() *weft.Program
}

var kernels = []kernel{
	{
		name: "memset32",
		desc: "out[i] = 0x2a for every i",
		build: func() *weft.Program {
			b := weft.NewBuilder()
			v := b.Splat32(0x2a)
			b.Store32(0, v)
			return weft.Compile(b)
		},
	},
	{
		name: "memcpy32",
		desc: "out[i] = in[i]",
		build: func() *weft.Program {
			b := weft.NewBuilder()
			v := b.Load32(1)
			b.Store32(0, v)
			return weft.Compile(b)
		},
	},
	{
		name: "axpy32",
		desc: "out[i] = a*in[i] + bias, a and bias are uniform scalars",
		build: func() *weft.Program {
			b := weft.NewBuilder()
			a := b.Uniform32(1)
			x := b.Load32(2)
			bias := b.Uniform32(3)
			b.Store32(0, b.AddI32(b.MulI32(a, x), bias))
			return weft.Compile(b)
		},
	},
	{
		name: "parity_flip32",
		desc: "out[i] = ^in[i] where in[i] is odd, else in[i]",
		build: func() *weft.Program {
			b := weft.NewBuilder()
			x := b.Load32(1)
			one := b.Splat32(1)
			isOdd := b.EqI32(b.And32(x, one), one)
			b.Store32(0, b.Sel32(isOdd, b.Not32(x), x))
			return weft.Compile(b)
		},
	},
}

func findKernel(name string) (kernel, bool) {
	for _, k := range kernels {
		if k.name == name {
			return k, true
		}
	}
	return kernel{}, false
}
