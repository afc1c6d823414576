// Package ir defines the builder-level instruction record shared by the
// builder (package weft) and the compiler (internal/compile). It is the
// Go analogue of the original's BInst: a record of an operation, its
// result width, up to three 1-origin operand handles (0 = unused), and
// an immediate payload.
package ir

import "weft/internal/ops"

// N is the interpreter's fixed SIMD-style chunk width, in lanes. It is
// shared between the compiler (which bakes slot offsets in units of
// N*width bytes) and the interpreter (which strides the main loop by N
// lanes per chunk), per spec sections 3 and 4.4.
const N = 8

// Instr is one builder-level instruction. Operand handles are 1-origin
// indices into the owning Builder's instruction slice (handle h refers
// to Insts[h-1]); 0 means "argument unused". Every operand handle must
// reference an earlier instruction (single-pass topological order).
type Instr struct {
	Op      ops.Op
	Width   ops.Width
	X, Y, Z uint32
	Imm     int64
}

// Kind is shorthand for ops.KindOf(i.Op).
func (i Instr) Kind() ops.Kind { return ops.KindOf(i.Op) }

// CSEKey reports whether i participates in CSE, and if so, the operand
// triple to hash/compare on (LOAD and SIDE_EFFECT instructions never
// participate, per spec section 4.1).
func (i Instr) CSEKey() (x, y, z uint32, ok bool) {
	switch i.Kind() {
	case ops.KindLoad, ops.KindSideEffect:
		return 0, 0, 0, false
	default:
		return i.X, i.Y, i.Z, true
	}
}
