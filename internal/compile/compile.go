// Package compile lowers a builder's instruction list into an immutable,
// linear Program: dead-code elimination, loop-invariant hoisting, and
// slot allocation, per spec section 4.3.
//
// Grounded on internal/compiler/compiler.go's "walk a record list, emit a
// linear form" shape, and specifically on internal/compiler/
// hoisting_compiler.go's two-pass (collect, then schedule) structure for
// the loop-dependence / scheduling steps.
package compile

import (
	"weft/internal/ir"
	"weft/internal/ops"
)

// PInst is the lowered, executable form of a builder instruction: the
// original op/width record, plus three byte offsets into the scratch
// buffer (0 if unused) in place of operand handles.
type PInst struct {
	Op      ir.Instr
	X, Y, Z int // byte offsets into the scratch buffer; 0 if unused
	Dst     int // byte offset this instruction's own result is written to
}

// Program is the compiler's output: a flat instruction list preceded by
// the total slot count and the loop-invariant/loop-dependent boundary,
// per spec section 3.
type Program struct {
	Insts []PInst

	// Slots is the total scratch footprint per lane, in bytes. The
	// scratch buffer Run allocates is Slots*ir.N bytes.
	Slots int

	// LoopInst is the index into Insts where the loop-dependent group
	// begins; Insts[:LoopInst] are loop-invariant and execute only on
	// the first chunk.
	LoopInst int

	// LoopSlot is the per-lane byte offset where the loop-dependent
	// group's scratch region begins (the cumulative width of all
	// invariant instructions). Subsequent chunks resume scratch writes
	// at LoopSlot*ir.N.
	LoopSlot int
}

// Compile lowers insts (a builder's already CSE'd, folded, simplified
// instruction list) into a Program. insts is not mutated.
func Compile(insts []ir.Instr) *Program {
	insts = terminate(insts)
	live := liveness(insts)
	loopDep := loopDependence(insts)

	// Schedule: live invariants first (original order), then live
	// dependents (original order).
	var order []int
	for i := range insts {
		if live[i] && !loopDep[i] {
			order = append(order, i)
		}
	}
	loopInst := len(order)
	for i := range insts {
		if live[i] && loopDep[i] {
			order = append(order, i)
		}
	}

	// oldToNew maps a 0-based old index to its 1-origin handle in the
	// new schedule (0 if the instruction was dropped by DCE).
	oldToNew := make([]uint32, len(insts))
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = uint32(newIdx + 1)
	}

	// slot[newIdx] is the per-lane byte offset of the scheduled
	// instruction at newIdx, i.e. the running sum of prior widths.
	slot := make([]int, len(order))
	running := 0
	loopSlot := 0
	for newIdx, oldIdx := range order {
		if newIdx == loopInst {
			loopSlot = running
		}
		slot[newIdx] = running
		running += int(insts[oldIdx].Width)
	}
	if loopInst == len(order) {
		loopSlot = running // no loop-dependent instructions at all
	}

	offset := func(h uint32) int {
		if h == 0 {
			return 0
		}
		newIdx := oldToNew[h-1]
		if newIdx == 0 {
			return 0 // dead operand; only reachable for an unused field
		}
		return slot[newIdx-1] * ir.N
	}

	p := &Program{
		Insts:    make([]PInst, len(order)),
		Slots:    running,
		LoopInst: loopInst,
		LoopSlot: loopSlot,
	}
	for newIdx, oldIdx := range order {
		inst := insts[oldIdx]
		p.Insts[newIdx] = PInst{
			Op:  inst,
			X:   offset(inst.X),
			Y:   offset(inst.Y),
			Z:   offset(inst.Z),
			Dst: slot[newIdx] * ir.N,
		}
	}
	return p
}

// terminate appends a synthetic no-op side-effect instruction,
// unconditionally, guaranteeing liveness has a root and that execution
// always ends on a SIDE_EFFECT instruction. There is no per-op "done"
// variant here to check for, so — matching the original's own
// unconditional DONE append — this never skips the append.
func terminate(insts []ir.Instr) []ir.Instr {
	out := make([]ir.Instr, len(insts)+1)
	copy(out, insts)
	out[len(insts)] = ir.Instr{Op: ops.OpNoop}
	return out
}

// liveness runs backward DCE: every SIDE_EFFECT instruction is a root;
// an instruction reachable from a root through operand edges is live.
func liveness(insts []ir.Instr) []bool {
	live := make([]bool, len(insts))
	for i := len(insts) - 1; i >= 0; i-- {
		if insts[i].Kind() == ops.KindSideEffect {
			live[i] = true
		}
		if !live[i] {
			continue
		}
		markOperand(live, insts[i].X)
		markOperand(live, insts[i].Y)
		markOperand(live, insts[i].Z)
	}
	return live
}

func markOperand(live []bool, h uint32) {
	if h != 0 {
		live[h-1] = true
	}
}

// loopDependence computes, for every instruction in original order,
// whether it transitively depends on a LOAD (or is itself LOAD or
// SIDE_EFFECT). Operand handles always reference earlier instructions,
// so a single forward pass suffices.
func loopDependence(insts []ir.Instr) []bool {
	dep := make([]bool, len(insts))
	for i, inst := range insts {
		switch inst.Kind() {
		case ops.KindLoad, ops.KindSideEffect:
			dep[i] = true
		default:
			dep[i] = operandDependent(dep, inst.X) ||
				operandDependent(dep, inst.Y) ||
				operandDependent(dep, inst.Z)
		}
	}
	return dep
}

func operandDependent(dep []bool, h uint32) bool {
	return h != 0 && dep[h-1]
}
