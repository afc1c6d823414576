package weft

import (
	"unsafe"

	"weft/internal/compile"
	"weft/internal/exec"
	"weft/internal/ir"
	"weft/internal/ops"
)

// fold implements spec section 4.1's constant folding: if every
// operand of a candidate MATH instruction is a SPLAT, it builds a
// throwaway Builder containing just those splats followed by the
// candidate op and a store, compiles and runs it for a single lane
// through the real interpreter, and replaces the whole instruction
// with a SPLAT of the one output lane. Reusing internal/exec rather
// than a second scalar evaluator keeps a single source of truth for
// every op's semantics, per the design note this is grounded on. imm
// is threaded straight onto the candidate instruction unchanged, for
// the immediate-shift ops whose shift count lives in Imm rather than
// in an operand splat.
func (b *Builder) fold(op ops.Op, w ops.Width, x, y, z uint32, imm int64) (uint32, bool) {
	arity := ops.Describe(op).Arity
	var operands [3]uint32
	switch arity {
	case 1:
		operands[0] = x
	case 2:
		operands[0], operands[1] = x, y
	case 3:
		operands[0], operands[1], operands[2] = x, y, z
	default:
		return 0, false
	}

	var imms [3]int64
	for i := 0; i < arity; i++ {
		v, ok := b.splatValue(operands[i])
		if !ok {
			return 0, false
		}
		imms[i] = v
	}

	// widen_*/narrow_* are the only ops whose operand width differs
	// from their own (result) width w; every other MATH op's operands
	// share w.
	operandWidth := w
	switch op {
	case ops.OpWidenS, ops.OpWidenU, ops.OpWidenF:
		operandWidth = w / 2
	case ops.OpNarrowI, ops.OpNarrowF:
		operandWidth = w * 2
	}

	sub := NewBuilder()
	var handles [3]uint32
	for i := 0; i < arity; i++ {
		handles[i] = sub.splatRaw(operandWidth, imms[i])
	}

	var res uint32
	switch arity {
	case 1:
		res = sub.emit(ir.Instr{Op: op, Width: w, X: handles[0], Imm: imm})
	case 2:
		res = sub.emit(ir.Instr{Op: op, Width: w, X: handles[0], Y: handles[1], Imm: imm})
	case 3:
		res = sub.emit(ir.Instr{Op: op, Width: w, X: handles[0], Y: handles[1], Z: handles[2], Imm: imm})
	}
	sub.storeRaw(w, res, 0)

	prog := compile.Compile(sub.insts)
	out := make([]byte, w)
	ptr := []unsafe.Pointer{unsafe.Pointer(&out[0])}
	exec.Run(prog, 1, ptr)

	return b.splatRaw(w, decodeLaneImm(out, w)), true
}

// decodeLaneImm reads a width-w little-endian lane out of out and
// sign-extends it to int64, the representation every SPLAT's Imm
// field carries regardless of whether the lane holds an integer or a
// float bit pattern (bit-punning is free between equal widths, per
// spec section 3).
func decodeLaneImm(out []byte, w ops.Width) int64 {
	var u uint64
	for i := 0; i < int(w); i++ {
		u |= uint64(out[i]) << uint(8*i)
	}
	bits := uint(8 * int(w))
	if bits < 64 && u&(1<<(bits-1)) != 0 {
		u |= ^uint64(0) << bits
	}
	return int64(u)
}
