package weft

import (
	"weft/internal/ir"
	"weft/internal/ops"
)

func instr(op ops.Op, w ops.Width, x, y, z uint32, imm int64) ir.Instr {
	return ir.Instr{Op: op, Width: w, X: x, Y: y, Z: z, Imm: imm}
}

// --- untyped helpers shared by the public constructors below ---

func (b *Builder) splatRaw(w ops.Width, imm int64) uint32 {
	return b.emit_(ops.OpSplat, w, 0, 0, 0, imm)
}

func (b *Builder) uniformRaw(w ops.Width, ptrIdx int) uint32 {
	return b.emit_(ops.OpUniform, w, 0, 0, 0, int64(ptrIdx))
}

func (b *Builder) loadRaw(w ops.Width, ptrIdx int) uint32 {
	return b.emit_(ops.OpLoad, w, 0, 0, 0, int64(ptrIdx))
}

func (b *Builder) storeRaw(w ops.Width, v uint32, ptrIdx int) {
	b.emit_(ops.OpStore, w, v, 0, 0, int64(ptrIdx))
}

func (b *Builder) assertRaw(w ops.Width, v uint32) {
	b.emit_(ops.OpAssert, w, v, 0, 0, 0)
}

// emit_ is a convenience wrapper around the ir.Instr literal used by
// the raw helpers above, to avoid repeating the struct literal import
// at every call site.
func (b *Builder) emit_(op ops.Op, w ops.Width, x, y, z uint32, imm int64) uint32 {
	return b.emit(instr(op, w, x, y, z, imm))
}

// --- splat_B ---

func (b *Builder) Splat8(imm int8) V8   { return V8(b.splatRaw(ops.W8, int64(imm))) }
func (b *Builder) Splat16(imm int16) V16 { return V16(b.splatRaw(ops.W16, int64(imm))) }
func (b *Builder) Splat32(imm int32) V32 { return V32(b.splatRaw(ops.W32, int64(imm))) }
func (b *Builder) Splat64(imm int64) V64 { return V64(b.splatRaw(ops.W64, imm)) }

// --- uniform_B ---

func (b *Builder) Uniform8(ptrIdx int) V8   { return V8(b.uniformRaw(ops.W8, ptrIdx)) }
func (b *Builder) Uniform16(ptrIdx int) V16 { return V16(b.uniformRaw(ops.W16, ptrIdx)) }
func (b *Builder) Uniform32(ptrIdx int) V32 { return V32(b.uniformRaw(ops.W32, ptrIdx)) }
func (b *Builder) Uniform64(ptrIdx int) V64 { return V64(b.uniformRaw(ops.W64, ptrIdx)) }

// --- load_B / store_B ---

func (b *Builder) Load8(ptrIdx int) V8   { return V8(b.loadRaw(ops.W8, ptrIdx)) }
func (b *Builder) Load16(ptrIdx int) V16 { return V16(b.loadRaw(ops.W16, ptrIdx)) }
func (b *Builder) Load32(ptrIdx int) V32 { return V32(b.loadRaw(ops.W32, ptrIdx)) }
func (b *Builder) Load64(ptrIdx int) V64 { return V64(b.loadRaw(ops.W64, ptrIdx)) }

func (b *Builder) Store8(ptrIdx int, v V8)   { b.storeRaw(ops.W8, uint32(v), ptrIdx) }
func (b *Builder) Store16(ptrIdx int, v V16) { b.storeRaw(ops.W16, uint32(v), ptrIdx) }
func (b *Builder) Store32(ptrIdx int, v V32) { b.storeRaw(ops.W32, uint32(v), ptrIdx) }
func (b *Builder) Store64(ptrIdx int, v V64) { b.storeRaw(ops.W64, uint32(v), ptrIdx) }

// --- assert_B ---

func (b *Builder) Assert8(v V8)   { b.assertRaw(ops.W8, uint32(v)) }
func (b *Builder) Assert16(v V16) { b.assertRaw(ops.W16, uint32(v)) }
func (b *Builder) Assert32(v V32) { b.assertRaw(ops.W32, uint32(v)) }
func (b *Builder) Assert64(v V64) { b.assertRaw(ops.W64, uint32(v)) }

// --- integer arithmetic: add_iB, sub_iB, mul_iB ---

func (b *Builder) AddI8(x, y V8) V8    { return V8(b.binMath(ops.OpAddI, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) AddI16(x, y V16) V16 { return V16(b.binMath(ops.OpAddI, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) AddI32(x, y V32) V32 { return V32(b.binMath(ops.OpAddI, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) AddI64(x, y V64) V64 { return V64(b.binMath(ops.OpAddI, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) SubI8(x, y V8) V8    { return V8(b.binMath(ops.OpSubI, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) SubI16(x, y V16) V16 { return V16(b.binMath(ops.OpSubI, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) SubI32(x, y V32) V32 { return V32(b.binMath(ops.OpSubI, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) SubI64(x, y V64) V64 { return V64(b.binMath(ops.OpSubI, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) MulI8(x, y V8) V8    { return V8(b.binMath(ops.OpMulI, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) MulI16(x, y V16) V16 { return V16(b.binMath(ops.OpMulI, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) MulI32(x, y V32) V32 { return V32(b.binMath(ops.OpMulI, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) MulI64(x, y V64) V64 { return V64(b.binMath(ops.OpMulI, ops.W64, uint32(x), uint32(y))) }

// --- shifts: shl_iB, shr_sB, shr_uB ---

func (b *Builder) ShlI8(x, count V8) V8 {
	return V8(b.shiftMath(ops.OpShlI, ops.OpShlImm, ops.W8, uint32(x), uint32(count)))
}
func (b *Builder) ShlI16(x, count V16) V16 {
	return V16(b.shiftMath(ops.OpShlI, ops.OpShlImm, ops.W16, uint32(x), uint32(count)))
}
func (b *Builder) ShlI32(x, count V32) V32 {
	return V32(b.shiftMath(ops.OpShlI, ops.OpShlImm, ops.W32, uint32(x), uint32(count)))
}
func (b *Builder) ShlI64(x, count V64) V64 {
	return V64(b.shiftMath(ops.OpShlI, ops.OpShlImm, ops.W64, uint32(x), uint32(count)))
}

func (b *Builder) ShrS8(x, count V8) V8 {
	return V8(b.shiftMath(ops.OpShrS, ops.OpShrSImm, ops.W8, uint32(x), uint32(count)))
}
func (b *Builder) ShrS16(x, count V16) V16 {
	return V16(b.shiftMath(ops.OpShrS, ops.OpShrSImm, ops.W16, uint32(x), uint32(count)))
}
func (b *Builder) ShrS32(x, count V32) V32 {
	return V32(b.shiftMath(ops.OpShrS, ops.OpShrSImm, ops.W32, uint32(x), uint32(count)))
}
func (b *Builder) ShrS64(x, count V64) V64 {
	return V64(b.shiftMath(ops.OpShrS, ops.OpShrSImm, ops.W64, uint32(x), uint32(count)))
}

func (b *Builder) ShrU8(x, count V8) V8 {
	return V8(b.shiftMath(ops.OpShrU, ops.OpShrUImm, ops.W8, uint32(x), uint32(count)))
}
func (b *Builder) ShrU16(x, count V16) V16 {
	return V16(b.shiftMath(ops.OpShrU, ops.OpShrUImm, ops.W16, uint32(x), uint32(count)))
}
func (b *Builder) ShrU32(x, count V32) V32 {
	return V32(b.shiftMath(ops.OpShrU, ops.OpShrUImm, ops.W32, uint32(x), uint32(count)))
}
func (b *Builder) ShrU64(x, count V64) V64 {
	return V64(b.shiftMath(ops.OpShrU, ops.OpShrUImm, ops.W64, uint32(x), uint32(count)))
}

// --- bitwise: and_B, or_B, xor_B, not_B, bic_B, sel_B ---

func (b *Builder) And8(x, y V8) V8    { return V8(b.binMath(ops.OpAnd, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) And16(x, y V16) V16 { return V16(b.binMath(ops.OpAnd, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) And32(x, y V32) V32 { return V32(b.binMath(ops.OpAnd, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) And64(x, y V64) V64 { return V64(b.binMath(ops.OpAnd, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) Or8(x, y V8) V8    { return V8(b.binMath(ops.OpOr, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) Or16(x, y V16) V16 { return V16(b.binMath(ops.OpOr, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) Or32(x, y V32) V32 { return V32(b.binMath(ops.OpOr, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) Or64(x, y V64) V64 { return V64(b.binMath(ops.OpOr, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) Xor8(x, y V8) V8    { return V8(b.binMath(ops.OpXor, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) Xor16(x, y V16) V16 { return V16(b.binMath(ops.OpXor, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) Xor32(x, y V32) V32 { return V32(b.binMath(ops.OpXor, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) Xor64(x, y V64) V64 { return V64(b.binMath(ops.OpXor, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) Not8(x V8) V8    { return V8(b.unMath(ops.OpNot, ops.W8, uint32(x))) }
func (b *Builder) Not16(x V16) V16 { return V16(b.unMath(ops.OpNot, ops.W16, uint32(x))) }
func (b *Builder) Not32(x V32) V32 { return V32(b.unMath(ops.OpNot, ops.W32, uint32(x))) }
func (b *Builder) Not64(x V64) V64 { return V64(b.unMath(ops.OpNot, ops.W64, uint32(x))) }

func (b *Builder) Bic8(x, y V8) V8    { return V8(b.binMath(ops.OpBic, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) Bic16(x, y V16) V16 { return V16(b.binMath(ops.OpBic, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) Bic32(x, y V32) V32 { return V32(b.binMath(ops.OpBic, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) Bic64(x, y V64) V64 { return V64(b.binMath(ops.OpBic, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) Sel8(m, x, y V8) V8 {
	return V8(b.terMath(ops.OpSel, ops.W8, uint32(m), uint32(x), uint32(y)))
}
func (b *Builder) Sel16(m, x, y V16) V16 {
	return V16(b.terMath(ops.OpSel, ops.W16, uint32(m), uint32(x), uint32(y)))
}
func (b *Builder) Sel32(m, x, y V32) V32 {
	return V32(b.terMath(ops.OpSel, ops.W32, uint32(m), uint32(x), uint32(y)))
}
func (b *Builder) Sel64(m, x, y V64) V64 {
	return V64(b.terMath(ops.OpSel, ops.W64, uint32(m), uint32(x), uint32(y)))
}

// --- integer comparisons: eq_iB, lt_sB, lt_uB, le_sB, le_uB ---

func (b *Builder) EqI8(x, y V8) V8    { return V8(b.binMath(ops.OpEqI, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) EqI16(x, y V16) V16 { return V16(b.binMath(ops.OpEqI, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) EqI32(x, y V32) V32 { return V32(b.binMath(ops.OpEqI, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) EqI64(x, y V64) V64 { return V64(b.binMath(ops.OpEqI, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) LtS8(x, y V8) V8    { return V8(b.binMath(ops.OpLtS, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) LtS16(x, y V16) V16 { return V16(b.binMath(ops.OpLtS, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) LtS32(x, y V32) V32 { return V32(b.binMath(ops.OpLtS, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) LtS64(x, y V64) V64 { return V64(b.binMath(ops.OpLtS, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) LtU8(x, y V8) V8    { return V8(b.binMath(ops.OpLtU, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) LtU16(x, y V16) V16 { return V16(b.binMath(ops.OpLtU, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) LtU32(x, y V32) V32 { return V32(b.binMath(ops.OpLtU, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) LtU64(x, y V64) V64 { return V64(b.binMath(ops.OpLtU, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) LeS8(x, y V8) V8    { return V8(b.binMath(ops.OpLeS, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) LeS16(x, y V16) V16 { return V16(b.binMath(ops.OpLeS, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) LeS32(x, y V32) V32 { return V32(b.binMath(ops.OpLeS, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) LeS64(x, y V64) V64 { return V64(b.binMath(ops.OpLeS, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) LeU8(x, y V8) V8    { return V8(b.binMath(ops.OpLeU, ops.W8, uint32(x), uint32(y))) }
func (b *Builder) LeU16(x, y V16) V16 { return V16(b.binMath(ops.OpLeU, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) LeU32(x, y V32) V32 { return V32(b.binMath(ops.OpLeU, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) LeU64(x, y V64) V64 { return V64(b.binMath(ops.OpLeU, ops.W64, uint32(x), uint32(y))) }

// --- float arithmetic: add_fB, sub_fB, mul_fB, div_fB, sqrt_fB, ceil_fB, floor_fB ---

func (b *Builder) AddF16(x, y V16) V16 { return V16(b.binMath(ops.OpAddF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) AddF32(x, y V32) V32 { return V32(b.binMath(ops.OpAddF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) AddF64(x, y V64) V64 { return V64(b.binMath(ops.OpAddF, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) SubF16(x, y V16) V16 { return V16(b.binMath(ops.OpSubF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) SubF32(x, y V32) V32 { return V32(b.binMath(ops.OpSubF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) SubF64(x, y V64) V64 { return V64(b.binMath(ops.OpSubF, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) MulF16(x, y V16) V16 { return V16(b.binMath(ops.OpMulF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) MulF32(x, y V32) V32 { return V32(b.binMath(ops.OpMulF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) MulF64(x, y V64) V64 { return V64(b.binMath(ops.OpMulF, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) DivF16(x, y V16) V16 { return V16(b.binMath(ops.OpDivF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) DivF32(x, y V32) V32 { return V32(b.binMath(ops.OpDivF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) DivF64(x, y V64) V64 { return V64(b.binMath(ops.OpDivF, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) SqrtF16(x V16) V16 { return V16(b.unMath(ops.OpSqrtF, ops.W16, uint32(x))) }
func (b *Builder) SqrtF32(x V32) V32 { return V32(b.unMath(ops.OpSqrtF, ops.W32, uint32(x))) }
func (b *Builder) SqrtF64(x V64) V64 { return V64(b.unMath(ops.OpSqrtF, ops.W64, uint32(x))) }

func (b *Builder) CeilF16(x V16) V16 { return V16(b.unMath(ops.OpCeilF, ops.W16, uint32(x))) }
func (b *Builder) CeilF32(x V32) V32 { return V32(b.unMath(ops.OpCeilF, ops.W32, uint32(x))) }
func (b *Builder) CeilF64(x V64) V64 { return V64(b.unMath(ops.OpCeilF, ops.W64, uint32(x))) }

func (b *Builder) FloorF16(x V16) V16 { return V16(b.unMath(ops.OpFloorF, ops.W16, uint32(x))) }
func (b *Builder) FloorF32(x V32) V32 { return V32(b.unMath(ops.OpFloorF, ops.W32, uint32(x))) }
func (b *Builder) FloorF64(x V64) V64 { return V64(b.unMath(ops.OpFloorF, ops.W64, uint32(x))) }

// --- float comparisons: eq_fB, lt_fB, le_fB (NaN-aware; no x==x identity) ---

func (b *Builder) EqF16(x, y V16) V16 { return V16(b.binMath(ops.OpEqF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) EqF32(x, y V32) V32 { return V32(b.binMath(ops.OpEqF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) EqF64(x, y V64) V64 { return V64(b.binMath(ops.OpEqF, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) LtF16(x, y V16) V16 { return V16(b.binMath(ops.OpLtF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) LtF32(x, y V32) V32 { return V32(b.binMath(ops.OpLtF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) LtF64(x, y V64) V64 { return V64(b.binMath(ops.OpLtF, ops.W64, uint32(x), uint32(y))) }

func (b *Builder) LeF16(x, y V16) V16 { return V16(b.binMath(ops.OpLeF, ops.W16, uint32(x), uint32(y))) }
func (b *Builder) LeF32(x, y V32) V32 { return V32(b.binMath(ops.OpLeF, ops.W32, uint32(x), uint32(y))) }
func (b *Builder) LeF64(x, y V64) V64 { return V64(b.binMath(ops.OpLeF, ops.W64, uint32(x), uint32(y))) }

// --- conversions: cast_fB, cast_sB (numeric, same width) ---

func (b *Builder) CastF16(x V16) V16 { return V16(b.unMath(ops.OpCastF, ops.W16, uint32(x))) }
func (b *Builder) CastF32(x V32) V32 { return V32(b.unMath(ops.OpCastF, ops.W32, uint32(x))) }
func (b *Builder) CastF64(x V64) V64 { return V64(b.unMath(ops.OpCastF, ops.W64, uint32(x))) }

func (b *Builder) CastS16(x V16) V16 { return V16(b.unMath(ops.OpCastS, ops.W16, uint32(x))) }
func (b *Builder) CastS32(x V32) V32 { return V32(b.unMath(ops.OpCastS, ops.W32, uint32(x))) }
func (b *Builder) CastS64(x V64) V64 { return V64(b.unMath(ops.OpCastS, ops.W64, uint32(x))) }

// --- widen: widen_s8/16/32, widen_u8/16/32, widen_f16/32 (doubles B) ---

func (b *Builder) WidenS8(x V8) V16   { return V16(b.unMath(ops.OpWidenS, ops.W16, uint32(x))) }
func (b *Builder) WidenS16(x V16) V32 { return V32(b.unMath(ops.OpWidenS, ops.W32, uint32(x))) }
func (b *Builder) WidenS32(x V32) V64 { return V64(b.unMath(ops.OpWidenS, ops.W64, uint32(x))) }

func (b *Builder) WidenU8(x V8) V16   { return V16(b.unMath(ops.OpWidenU, ops.W16, uint32(x))) }
func (b *Builder) WidenU16(x V16) V32 { return V32(b.unMath(ops.OpWidenU, ops.W32, uint32(x))) }
func (b *Builder) WidenU32(x V32) V64 { return V64(b.unMath(ops.OpWidenU, ops.W64, uint32(x))) }

func (b *Builder) WidenF16(x V16) V32 { return V32(b.unMath(ops.OpWidenF, ops.W32, uint32(x))) }
func (b *Builder) WidenF32(x V32) V64 { return V64(b.unMath(ops.OpWidenF, ops.W64, uint32(x))) }

// --- narrow: narrow_i16/32/64, narrow_f32/64 (halves B) ---

func (b *Builder) NarrowI16(x V16) V8  { return V8(b.unMath(ops.OpNarrowI, ops.W8, uint32(x))) }
func (b *Builder) NarrowI32(x V32) V16 { return V16(b.unMath(ops.OpNarrowI, ops.W16, uint32(x))) }
func (b *Builder) NarrowI64(x V64) V32 { return V32(b.unMath(ops.OpNarrowI, ops.W32, uint32(x))) }

func (b *Builder) NarrowF32(x V32) V16 { return V16(b.unMath(ops.OpNarrowF, ops.W16, uint32(x))) }
func (b *Builder) NarrowF64(x V64) V32 { return V32(b.unMath(ops.OpNarrowF, ops.W32, uint32(x))) }
