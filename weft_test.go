package weft

import (
	"math"
	"testing"
	"unsafe"
)

func runMemset32(t *testing.T, n int, val int32) []int32 {
	t.Helper()
	b := NewBuilder()
	v := b.Splat32(val)
	b.Store32(0, v)
	prog := Compile(b)

	out := make([]int32, n)
	prog.Run(n, []unsafe.Pointer{p32(out)})
	return out
}

func p32(s []int32) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func p8(s []int8) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func p16(s []int16) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func p64(s []int64) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func TestMemset(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"one lane", 1},
		{"exact chunk", 8},
		{"one over a chunk", 9},
		{"several chunks plus tail", 19},
	}
	for _, tt := range tests {
		out := runMemset32(t, tt.n, 7)
		for i, v := range out {
			if v != 7 {
				t.Errorf("test[%s] - out[%d] = %d, want 7", tt.name, i, v)
			}
		}
	}
}

func TestMemsetAllWidths(t *testing.T) {
	// memset8
	{
		b := NewBuilder()
		b.Store8(0, b.Splat8(0x2a))
		prog := Compile(b)
		out := make([]int8, 17)
		prog.Run(len(out), []unsafe.Pointer{p8(out)})
		for i, v := range out {
			if v != 0x2a {
				t.Errorf("memset8: out[%d] = %d, want 42", i, v)
			}
		}
	}
	// memset16
	{
		b := NewBuilder()
		b.Store16(0, b.Splat16(0x1234))
		prog := Compile(b)
		out := make([]int16, 17)
		prog.Run(len(out), []unsafe.Pointer{p16(out)})
		for i, v := range out {
			if v != 0x1234 {
				t.Errorf("memset16: out[%d] = %d, want 4660", i, v)
			}
		}
	}
	// memset64
	{
		b := NewBuilder()
		b.Store64(0, b.Splat64(-1))
		prog := Compile(b)
		out := make([]int64, 17)
		prog.Run(len(out), []unsafe.Pointer{p64(out)})
		for i, v := range out {
			if v != -1 {
				t.Errorf("memset64: out[%d] = %d, want -1", i, v)
			}
		}
	}
}

func TestMemcpy32(t *testing.T) {
	b := NewBuilder()
	b.Store32(0, b.Load32(1))
	prog := Compile(b)

	n := 23
	in := make([]int32, n)
	for i := range in {
		in[i] = int32(i * i)
	}
	out := make([]int32, n)
	prog.Run(n, []unsafe.Pointer{p32(out), p32(in)})

	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestUniform(t *testing.T) {
	b := NewBuilder()
	a := b.Uniform32(1)
	x := b.Load32(2)
	c := b.Uniform32(3)
	b.Store32(0, b.AddI32(b.MulI32(a, x), c))
	prog := Compile(b)

	n := 20
	in := make([]int32, n)
	for i := range in {
		in[i] = int32(i)
	}
	out := make([]int32, n)
	scale := int32(3)
	bias := int32(7)
	prog.Run(n, []unsafe.Pointer{p32(out), unsafe.Pointer(&scale), p32(in), unsafe.Pointer(&bias)})

	for i := range in {
		want := scale*in[i] + bias
		if out[i] != want {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want)
		}
	}
}

func TestNotNot(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	y := b.Not32(b.Not32(x))
	b.Store32(0, y)
	prog := Compile(b)

	// not(not(x)) isn't one of the listed peephole identities, so both
	// nots should survive DCE as live instructions (load, not, not,
	// store, plus the synthetic terminator).
	if prog.NumInsts() != 5 {
		t.Errorf("NumInsts() = %d, want 5 (load, not, not, store, noop)", prog.NumInsts())
	}

	n := 9
	in := make([]int32, n)
	for i := range in {
		in[i] = int32(i * 1000003)
	}
	out := make([]int32, n)
	prog.Run(n, []unsafe.Pointer{p32(out), p32(in)})
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestStoreTwice(t *testing.T) {
	b := NewBuilder()
	b.Store32(0, b.Splat32(1))
	b.Store32(0, b.Splat32(2))
	prog := Compile(b)

	out := make([]int32, 5)
	prog.Run(len(out), []unsafe.Pointer{p32(out)})
	for i, v := range out {
		if v != 2 {
			t.Errorf("out[%d] = %d, want 2 (second store wins)", i, v)
		}
	}
}

func TestCSEDeduplicatesIdenticalMath(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	a := b.AddI32(x, x)
	c := b.AddI32(x, x)
	if a != c {
		t.Errorf("AddI32(x, x) twice produced distinct handles %d and %d, want equal (CSE hit)", a, c)
	}
}

func TestCommutativeSortingDedupes(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	y := b.Load32(2)
	a := b.AddI32(x, y)
	c := b.AddI32(y, x)
	if a != c {
		t.Errorf("AddI32(x, y) and AddI32(y, x) produced distinct handles %d and %d, want equal", a, c)
	}
}

func TestUniformCSE(t *testing.T) {
	b := NewBuilder()
	a := b.Uniform32(1)
	c := b.Uniform32(1)
	if a != c {
		t.Errorf("Uniform32(1) twice produced distinct handles %d and %d, want equal (CSE hit)", a, c)
	}
}

func TestLoadNeverCSEs(t *testing.T) {
	b := NewBuilder()
	a := b.Load32(1)
	c := b.Load32(1)
	if a == c {
		t.Errorf("Load32(1) twice produced the same handle %d, want distinct (LOAD never CSEs)", a)
	}
}

func TestConstantPropagation(t *testing.T) {
	b := NewBuilder()
	x := b.Splat32(3)
	y := b.Splat32(4)
	sum := b.AddI32(x, y)
	b.Store32(0, sum)
	prog := Compile(b)

	// The fold should have collapsed splat+splat+add_i into a single
	// splat, so only [splat, store, noop] survive.
	if prog.NumInsts() != 3 {
		t.Errorf("NumInsts() = %d, want 3 (folded splat, store, noop)", prog.NumInsts())
	}

	out := make([]int32, 4)
	prog.Run(len(out), []unsafe.Pointer{p32(out)})
	for i, v := range out {
		if v != 7 {
			t.Errorf("out[%d] = %d, want 7", i, v)
		}
	}
}

func TestConstantPropagationWidenS8(t *testing.T) {
	// widen_s8: -1 (all bits) sign-extends to -1 at width 16.
	b := NewBuilder()
	narrow := b.Splat8(-1)
	wide := b.WidenS8(narrow)
	b.Store16(0, wide)
	prog := Compile(b)
	if prog.NumInsts() != 3 {
		t.Errorf("NumInsts() = %d, want 3 (folded splat, store, noop)", prog.NumInsts())
	}
	out := make([]int16, 3)
	prog.Run(len(out), []unsafe.Pointer{p16(out)})
	for i, v := range out {
		if v != -1 {
			t.Errorf("out[%d] = %d, want -1", i, v)
		}
	}
}

func TestSelAllWidths(t *testing.T) {
	// sel(mask, a, z) where mask = eq_i(x, 0): a where x==0, else z.
	widths := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"sel8", func(t *testing.T) {
			b := NewBuilder()
			x := b.Load8(1)
			mask := b.EqI8(x, b.Splat8(0))
			b.Store8(0, b.Sel8(mask, b.Splat8(9), b.Splat8(5)))
			prog := Compile(b)
			in := []int8{0, 1, 0, 2}
			out := make([]int8, len(in))
			prog.Run(len(in), []unsafe.Pointer{p8(out), p8(in)})
			want := []int8{9, 5, 9, 5}
			for i := range want {
				if out[i] != want[i] {
					t.Errorf("sel8: out[%d] = %d, want %d", i, out[i], want[i])
				}
			}
		}},
		{"sel16", func(t *testing.T) {
			b := NewBuilder()
			x := b.Load16(1)
			mask := b.EqI16(x, b.Splat16(0))
			b.Store16(0, b.Sel16(mask, b.Splat16(9), b.Splat16(5)))
			prog := Compile(b)
			in := []int16{0, 1, 0, 2}
			out := make([]int16, len(in))
			prog.Run(len(in), []unsafe.Pointer{p16(out), p16(in)})
			want := []int16{9, 5, 9, 5}
			for i := range want {
				if out[i] != want[i] {
					t.Errorf("sel16: out[%d] = %d, want %d", i, out[i], want[i])
				}
			}
		}},
		{"sel32", func(t *testing.T) {
			b := NewBuilder()
			x := b.Load32(1)
			mask := b.EqI32(x, b.Splat32(0))
			b.Store32(0, b.Sel32(mask, b.Splat32(9), b.Splat32(5)))
			prog := Compile(b)
			in := []int32{0, 1, 0, 2}
			out := make([]int32, len(in))
			prog.Run(len(in), []unsafe.Pointer{p32(out), p32(in)})
			want := []int32{9, 5, 9, 5}
			for i := range want {
				if out[i] != want[i] {
					t.Errorf("sel32: out[%d] = %d, want %d", i, out[i], want[i])
				}
			}
		}},
		{"sel64", func(t *testing.T) {
			b := NewBuilder()
			x := b.Load64(1)
			mask := b.EqI64(x, b.Splat64(0))
			b.Store64(0, b.Sel64(mask, b.Splat64(9), b.Splat64(5)))
			prog := Compile(b)
			in := []int64{0, 1, 0, 2}
			out := make([]int64, len(in))
			prog.Run(len(in), []unsafe.Pointer{p64(out), p64(in)})
			want := []int64{9, 5, 9, 5}
			for i := range want {
				if out[i] != want[i] {
					t.Errorf("sel64: out[%d] = %d, want %d", i, out[i], want[i])
				}
			}
		}},
	}
	for _, tt := range widths {
		t.Run(tt.name, tt.run)
	}
}

func TestArithmeticFloat32(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	y := b.Load32(2)
	b.Store32(0, b.AddF32(x, y))
	b.Store32(3, b.MulF32(x, y))
	prog := Compile(b)

	xs := []float32{1.5, 2.5, -3.0}
	ys := []float32{0.5, 0.5, 1.0}
	outAdd := make([]float32, len(xs))
	outMul := make([]float32, len(xs))
	prog.Run(len(xs), []unsafe.Pointer{
		unsafe.Pointer(&outAdd[0]),
		unsafe.Pointer(&xs[0]),
		unsafe.Pointer(&ys[0]),
		unsafe.Pointer(&outMul[0]),
	})
	for i := range xs {
		if outAdd[i] != xs[i]+ys[i] {
			t.Errorf("add_f32: out[%d] = %v, want %v", i, outAdd[i], xs[i]+ys[i])
		}
		if outMul[i] != xs[i]*ys[i] {
			t.Errorf("mul_f32: out[%d] = %v, want %v", i, outMul[i], xs[i]*ys[i])
		}
	}
}

func TestSpecialCasesFloat32(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	b.Store32(0, b.AddF32(x, b.Splat32(int32(math.Float32bits(0)))))
	prog := Compile(b)

	xs := []float32{float32(math.Inf(1)), float32(math.Inf(-1)), 0}
	out := make([]float32, len(xs))
	prog.Run(len(xs), []unsafe.Pointer{unsafe.Pointer(&out[0]), unsafe.Pointer(&xs[0])})
	for i := range xs {
		if out[i] != xs[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], xs[i])
		}
	}
}

func TestCeilFloorFloat32(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	b.Store32(0, b.CeilF32(x))
	b.Store32(2, b.FloorF32(x))
	prog := Compile(b)

	xs := []float32{1.2, -1.2, 2.0}
	outCeil := make([]float32, len(xs))
	outFloor := make([]float32, len(xs))
	prog.Run(len(xs), []unsafe.Pointer{
		unsafe.Pointer(&outCeil[0]),
		unsafe.Pointer(&xs[0]),
		unsafe.Pointer(&outFloor[0]),
	})
	wantCeil := []float32{2, -1, 2}
	wantFloor := []float32{1, -2, 2}
	for i := range xs {
		if outCeil[i] != wantCeil[i] {
			t.Errorf("ceil_f32: out[%d] = %v, want %v", i, outCeil[i], wantCeil[i])
		}
		if outFloor[i] != wantFloor[i] {
			t.Errorf("floor_f32: out[%d] = %v, want %v", i, outFloor[i], wantFloor[i])
		}
	}
}

func TestFloatCompareNaNNeverFoldsEqX(t *testing.T) {
	// eq_f(x, x) must NOT fold to all-ones the way eq_i(x, x) does,
	// since x could be NaN.
	b := NewBuilder()
	x := b.Load32(1)
	b.Store32(0, b.EqF32(x, x))
	prog := Compile(b)

	xs := []float32{float32(math.NaN()), 1.0}
	out := make([]int32, len(xs))
	prog.Run(len(xs), []unsafe.Pointer{p32(out), unsafe.Pointer(&xs[0])})
	if out[0] != 0 {
		t.Errorf("eq_f(NaN, NaN) produced all-ones mask %d, want 0 (NaN is never equal to itself)", out[0])
	}
	if out[1] == 0 {
		t.Errorf("eq_f(1.0, 1.0) produced 0, want all-ones")
	}
}

func TestLoopInvariantSkippedWhenNIsZero(t *testing.T) {
	// A kernel whose only work is loop-invariant (no LOAD) must still
	// perform zero work when n == 0.
	b := NewBuilder()
	u := b.Uniform32(1)
	b.Store32(0, u)
	prog := Compile(b)

	src := int32(42)
	out := []int32{99}
	prog.Run(0, []unsafe.Pointer{p32(out), unsafe.Pointer(&src)})
	if out[0] != 99 {
		t.Errorf("Run(0, ...) mutated out to %d, want untouched 99", out[0])
	}
}

func TestAssertPanicsOnZeroLane(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	b.Assert32(x)
	prog := Compile(b)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Run did not panic on an assert with a zero lane")
		}
	}()
	in := []int32{1, 1, 0, 1}
	prog.Run(len(in), []unsafe.Pointer{nil, p32(in)})
}

func TestRunConcurrent(t *testing.T) {
	b := NewBuilder()
	b.Store32(0, b.Load32(1))
	prog := Compile(b)

	const shards = 16
	const perShard = 37
	n := shards * perShard
	in := make([]int32, n)
	out := make([]int32, n)
	for i := range in {
		in[i] = int32(i)
	}

	errs := make(chan error, shards)
	for s := 0; s < shards; s++ {
		lo, hi := s*perShard, (s+1)*perShard
		go func(lo, hi int) {
			prog.Run(hi-lo, []unsafe.Pointer{p32(out[lo:hi]), p32(in[lo:hi])})
			errs <- nil
		}(lo, hi)
	}
	for i := 0; i < shards; i++ {
		<-errs
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d (concurrent Run against disjoint shards)", i, out[i], in[i])
		}
	}
}
