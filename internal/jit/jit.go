// Package jit is Weft's optional ahead-of-time code-emitter interface,
// per spec section 4.5: a per-op Emitter registry, a first-fit register
// allocator, and Jit itself, which measures (or emits) native code for
// a compiled Program and returns 0 to signal "cannot compile, fall back
// to the interpreter". Per-target instruction encodings are explicitly
// out of scope (spec section 1); emitters is empty and Jit therefore
// always declines today. What's implemented is the scaffolding a real
// backend would plug Emitters into.
//
// Grounded on sentra's own internal/jit/jit.go, whose Compile/AnalyzeLoop/
// ExecuteJITUnsafe stubs already model "always decline, caller falls
// back to the interpreter" — generalized here from a loop-template
// matcher to a per-instruction emitter table. The Emitter signature and
// register/fragment accounting follow original_source/weft_jit_arm64.c's
// shape (output/operand registers plus an immediate), without adopting
// any of its AArch64 encodings.
package jit

import (
	"weft/internal/compile"
	"weft/internal/ops"
)

// Emitter writes the native-code sequence for one instruction into buf
// at the given cursor, using dst/x/y/z as register indices (x, y, or z
// is -1 when the instruction's arity doesn't use that operand), and
// returns the advanced cursor. A nil buf means "measure only": the
// emitter must still return the correct advanced cursor without
// writing past len(buf).
type Emitter func(buf []byte, cursor, dst, x, y, z int, imm int64) int

// emitters is the per-op code-emitter registry. It is intentionally
// empty: Weft's core ships no per-architecture instruction encodings
// (spec section 1's non-goal). A concrete backend registers into this
// table; until one does, every Jit call declines on its first
// instruction.
var emitters = map[ops.Op]Emitter{}

// Register registers (or replaces) the emitter for op. Backends call
// this from an init function in their own package.
func Register(op ops.Op, e Emitter) { emitters[op] = e }

const numRegisters = 32

// reserved is the callee-saved set excluded from allocation, per spec
// section 4.5. The specific indices are an AArch64-flavored choice
// (x19-x28 in AAPCS64) but the allocator treats them as opaque.
var reserved = [numRegisters]bool{19: true, 20: true, 21: true, 22: true,
	23: true, 24: true, 25: true, 26: true, 27: true, 28: true}

// Fragments returns the number of registers a value of width w bytes
// occupies per chunk: widths <= 16 bits take one register, 32 bits
// two, 64 bits four — max(1, bits/16), per spec section 4.5.
func Fragments(w int) int {
	bits := w * 8
	f := bits / 16
	if f < 1 {
		f = 1
	}
	return f
}

// allocator is a first-fit register allocator over the non-reserved
// register file. Spill is a non-goal (spec section 4.5): Alloc fails
// outright once the free set can't satisfy a request.
type allocator struct {
	free [numRegisters]bool
}

func newAllocator() *allocator {
	a := &allocator{}
	for i := range a.free {
		a.free[i] = !reserved[i]
	}
	return a
}

func (a *allocator) alloc(n int) ([]int, bool) {
	regs := make([]int, 0, n)
	for i := 0; i < numRegisters && len(regs) < n; i++ {
		if a.free[i] {
			regs = append(regs, i)
		}
	}
	if len(regs) < n {
		return nil, false
	}
	for _, r := range regs {
		a.free[r] = false
	}
	return regs, true
}

func (a *allocator) release(regs []int) {
	for _, r := range regs {
		a.free[r] = true
	}
}

// Jit measures (buf == nil) or emits (buf != nil) native code for p.
// It returns the required byte length, or 0 if any instruction lacks a
// registered Emitter or register allocation fails — the spec's single
// failure signal for "cannot compile; fall back to interpreter". The
// interpreter remains the correctness reference regardless of Jit's
// answer (spec section 9, "Jit as a parallel code path").
func Jit(p *compile.Program, buf []byte) int {
	if len(p.Insts) == 0 {
		return 0
	}

	producer := make(map[int]int, len(p.Insts)) // Dst byte offset -> instruction index
	for i, inst := range p.Insts {
		producer[inst.Dst] = i
	}

	lastUse := make([]int, len(p.Insts))
	for i := range lastUse {
		lastUse[i] = i
	}
	markUse := func(useIdx, offset int) {
		if prod, ok := producer[offset]; ok && prod < useIdx {
			if useIdx > lastUse[prod] {
				lastUse[prod] = useIdx
			}
		}
	}
	for i, inst := range p.Insts {
		markUse(i, inst.X)
		markUse(i, inst.Y)
		markUse(i, inst.Z)
	}

	a := newAllocator()
	regsOf := make([][]int, len(p.Insts))
	cursor := 0
	for i, inst := range p.Insts {
		emitter, ok := emitters[inst.Op.Op]
		if !ok {
			return 0
		}
		w := int(inst.Op.Width)
		dst, ok := a.alloc(Fragments(w))
		if !ok {
			return 0
		}
		regsOf[i] = dst

		// Only consult as many operand fields as this op's arity uses:
		// byte offset 0 is a legitimate offset for whatever instruction
		// was scheduled first, so "offset == 0" can never mean
		// "unused" here (spec section 4.3's 1-origin handle note,
		// carried through to byte offsets).
		arity := ops.Describe(inst.Op.Op).Arity
		x, y, z := -1, -1, -1
		if arity >= 1 {
			x = regsOf0(regsOf, producer, inst.X)
		}
		if arity >= 2 {
			y = regsOf0(regsOf, producer, inst.Y)
		}
		if arity >= 3 {
			z = regsOf0(regsOf, producer, inst.Z)
		}

		cursor = emitter(buf, cursor, dst[0], x, y, z, inst.Op.Imm)

		for prod, last := range lastUse {
			if last == i && prod < i {
				a.release(regsOf[prod])
			}
		}
	}
	return cursor
}

func regsOf0(regsOf [][]int, producer map[int]int, offset int) int {
	i, ok := producer[offset]
	if !ok {
		return -1
	}
	return regsOf[i][0]
}
