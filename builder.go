// Package weft is an embeddable library for building, optimizing, and
// executing small data-parallel kernels over arrays of primitive
// scalars: a caller describes a computation as a DAG of typed vector
// operations, compiles it into an optimized Program, then runs that
// Program against concrete pointer arrays to process n elements.
//
// A Builder accumulates instructions with on-the-fly common
// subexpression elimination, algebraic simplification, and constant
// folding. Compile lowers a Builder into an immutable Program: dead
// code elimination, loop-invariant hoisting, and slot allocation.
// Program.Run executes that schedule through a chunked interpreter
// with scalar-tail handling; Program.Jit is an optional, incomplete
// ahead-of-time path that returns 0 whenever it can't help, leaving
// Run as the way to execute the program.
//
// This package promotes what would be an internal/ package in a
// typical binary: Weft is a library other programs import, so its
// surface — Builder, the V8/V16/V32/V64 handles, and Program — lives
// at the module root the way an importable API must.
package weft

import (
	"unsafe"

	"weft/internal/compile"
	"weft/internal/cse"
	"weft/internal/exec"
	"weft/internal/ir"
	"weft/internal/jit"
	"weft/internal/ops"
)

// Builder accumulates a kernel's instruction graph. It is not safe for
// concurrent use: a single producer constructs it on one goroutine and
// hands ownership to Compile, after which the Builder should not be
// touched again, per spec section 5.
type Builder struct {
	insts []ir.Instr
	table *cse.Table
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{table: cse.NewTable()}
}

// Len reports the number of live (not-yet-DCE'd) instructions recorded
// so far — useful mainly for tests asserting CSE/DCE behavior.
func (b *Builder) Len() int { return len(b.insts) }

// at returns the instruction a 1-origin handle refers to.
func (b *Builder) at(h uint32) ir.Instr { return b.insts[h-1] }

// emit is the builder's single append path: look up the candidate in
// the CSE table (operands already in canonical order, see canon), and either
// return the existing handle or append a fresh instruction and insert
// it, per spec section 4.2 steps 1 and 4. LOAD and SIDE_EFFECT kinds
// never participate in CSE (spec section 4.1) and always append.
//
// Callers that need constant folding or peephole identities (spec
// section 4.2 steps 2-3) run those checks themselves before calling
// emit, since an identity hit or a folded constant must return without
// ever constructing the candidate instruction at all.
func (b *Builder) emit(inst ir.Instr) uint32 {
	x, y, z, ok := inst.CSEKey()
	if !ok {
		b.insts = append(b.insts, inst)
		return uint32(len(b.insts))
	}
	key := cse.Key{Op: inst.Op, Width: inst.Width, X: x, Y: y, Z: z, Imm: inst.Imm}
	if h, found := b.table.Lookup(key); found {
		return h
	}
	b.insts = append(b.insts, inst)
	h := uint32(len(b.insts))
	b.table.Insert(key, h)
	return h
}

// canon sorts a commutative binop's operands by handle value, so that
// x+y and y+x hash and compare identically in the CSE table, per the
// "commutative ordering" peephole rule.
func canon(op ops.Op, x, y uint32) (uint32, uint32) {
	if ops.Describe(op).Commutative && x > y {
		return y, x
	}
	return x, y
}

// binMath builds a binary MATH instruction, applying canonicalization,
// identities, and constant folding in that order before ever calling
// emit, per spec section 4.2.
func (b *Builder) binMath(op ops.Op, w ops.Width, x, y uint32) uint32 {
	x, y = canon(op, x, y)
	if h, ok := b.identity2(op, w, x, y); ok {
		return h
	}
	if h, ok := b.fold(op, w, x, y, 0, 0); ok {
		return h
	}
	return b.emit(ir.Instr{Op: op, Width: w, X: x, Y: y})
}

// unMath builds a unary MATH instruction.
func (b *Builder) unMath(op ops.Op, w ops.Width, x uint32) uint32 {
	if h, ok := b.fold(op, w, x, 0, 0, 0); ok {
		return h
	}
	return b.emit(ir.Instr{Op: op, Width: w, X: x})
}

// terMath builds a ternary MATH instruction (sel only).
func (b *Builder) terMath(op ops.Op, w ops.Width, m, a, z uint32) uint32 {
	if h, ok := b.identity3(op, w, m, a, z); ok {
		return h
	}
	if h, ok := b.fold(op, w, m, a, z, 0); ok {
		return h
	}
	return b.emit(ir.Instr{Op: op, Width: w, X: m, Y: a, Z: z})
}

// shiftMath builds a shift: if the count operand is a splat, the shift
// lowers to its immediate-count variant instead of the vector form,
// per the "shift by any splat lowers to the immediate form" rule. If
// the shifted operand x is itself a splat, the immediate shift folds
// all the way down to a single splat of the result, the same as any
// other constant MATH instruction — this is what lets shr_sB(big,
// splat(6)) collapse back to the same handle as one after
// add_iB(one, splat(63)) already folded big to splat(64).
func (b *Builder) shiftMath(vecOp, immOp ops.Op, w ops.Width, x, count uint32) uint32 {
	if imm, ok := b.splatValue(count); ok {
		if imm == 0 {
			return x // shift by zero -> x, regardless of vector/imm form
		}
		if h, ok := b.fold(immOp, w, x, 0, 0, imm); ok {
			return h
		}
		return b.emit(ir.Instr{Op: immOp, Width: w, X: x, Imm: imm})
	}
	return b.binMath(vecOp, w, x, count)
}

// Compile lowers b into an immutable Program, per spec section 4.3.
// The Builder should not be used again afterward.
func Compile(b *Builder) *Program {
	return &Program{p: compile.Compile(b.insts)}
}

// Program is a compiled, immutable kernel. It is safe to Run
// concurrently from multiple goroutines against distinct scratch
// buffers and pointer arrays, per spec section 5.
type Program struct {
	p *compile.Program
}

// NumInsts reports the number of live instructions in the compiled
// program, after dead-code elimination — mainly useful for tests
// asserting DCE behavior.
func (pr *Program) NumInsts() int { return len(pr.p.Insts) }

// Run executes the program for n elements, per spec section 4.4. ptr
// is the caller-owned pointer array; by convention ptr[0] is the
// output and ptr[i>0] are inputs, with indices fixed at construction
// time via the ptr_idx immediates baked into uniform/load/store.
func (pr *Program) Run(n int, ptr []unsafe.Pointer) {
	exec.Run(pr.p, n, ptr)
}

// Jit measures (buf == nil) or emits (buf != nil) native code for the
// program and returns the required byte length, or 0 if it declines —
// see internal/jit's doc comment for why it always declines today.
func (pr *Program) Jit(buf []byte) int {
	return jit.Jit(pr.p, buf)
}
