package weft

import "weft/internal/ops"

// splatValue reports the immediate of the SPLAT instruction h refers
// to, or false if h isn't a SPLAT. Identities and folding both need
// this to recognize a constant operand.
func (b *Builder) splatValue(h uint32) (int64, bool) {
	inst := b.at(h)
	if inst.Op != ops.OpSplat {
		return 0, false
	}
	return inst.Imm, true
}

// negZeroImm is the sign-extended immediate of the width-w negative
// zero bit pattern (sign bit set, all else clear) — the value a
// splat_B(-0.0f) candidate carries, per how splat immediates are
// stored (see fold.go's decodeLaneImm).
func negZeroImm(w ops.Width) int64 {
	bits := uint(8 * int(w))
	return -(int64(1) << (bits - 1))
}

// floatOneImm is the immediate of the width-w float 1.0 bit pattern,
// the splat value the float x*1 and x/1 identities match.
func floatOneImm(w ops.Width) int64 {
	switch w {
	case ops.W16:
		return 0x3c00
	case ops.W32:
		return 0x3f800000
	default:
		return 0x3ff0000000000000
	}
}

func isZeroOrNegZero(b *Builder, h uint32, w ops.Width) bool {
	v, ok := b.splatValue(h)
	return ok && (v == 0 || v == negZeroImm(w))
}

func (b *Builder) zero(w ops.Width) uint32    { return b.splatRaw(w, 0) }
func (b *Builder) allOnes(w ops.Width) uint32 { return b.splatRaw(w, -1) }

// identity2 applies the binary peephole rules of spec section 4.1 to
// an already-canonicalized (x, y) pair. It never constructs the
// candidate instruction; a hit returns an existing or newly-built
// replacement handle directly.
func (b *Builder) identity2(op ops.Op, w ops.Width, x, y uint32) (uint32, bool) {
	switch op {
	case ops.OpAddI:
		if v, ok := b.splatValue(y); ok && v == 0 {
			return x, true
		}
		if v, ok := b.splatValue(x); ok && v == 0 {
			return y, true
		}
	case ops.OpAddF:
		if isZeroOrNegZero(b, y, w) {
			return x, true
		}
		if isZeroOrNegZero(b, x, w) {
			return y, true
		}
	case ops.OpSubI:
		if v, ok := b.splatValue(y); ok && v == 0 {
			return x, true
		}
		if x == y {
			return b.zero(w), true
		}
	case ops.OpSubF:
		if isZeroOrNegZero(b, y, w) {
			return x, true
		}
	case ops.OpMulI:
		if v, ok := b.splatValue(y); ok {
			if v == 1 {
				return x, true
			}
			if v == 0 {
				return y, true
			}
		}
		if v, ok := b.splatValue(x); ok {
			if v == 1 {
				return y, true
			}
			if v == 0 {
				return x, true
			}
		}
	case ops.OpMulF:
		// x*0 is deliberately NOT folded here (NaN).
		if v, ok := b.splatValue(y); ok && v == floatOneImm(w) {
			return x, true
		}
		if v, ok := b.splatValue(x); ok && v == floatOneImm(w) {
			return y, true
		}
	case ops.OpDivF:
		if v, ok := b.splatValue(y); ok && v == floatOneImm(w) {
			return x, true
		}
	case ops.OpAnd:
		if x == y {
			return x, true
		}
		if v, ok := b.splatValue(y); ok {
			if v == 0 {
				return y, true
			}
			if v == -1 {
				return x, true
			}
		}
		if v, ok := b.splatValue(x); ok {
			if v == 0 {
				return x, true
			}
			if v == -1 {
				return y, true
			}
		}
	case ops.OpOr:
		if x == y {
			return x, true
		}
		if v, ok := b.splatValue(y); ok {
			if v == 0 {
				return x, true
			}
			if v == -1 {
				return y, true
			}
		}
		if v, ok := b.splatValue(x); ok {
			if v == 0 {
				return y, true
			}
			if v == -1 {
				return x, true
			}
		}
	case ops.OpXor:
		if x == y {
			return b.zero(w), true
		}
		if v, ok := b.splatValue(y); ok && v == 0 {
			return x, true
		}
		if v, ok := b.splatValue(x); ok && v == 0 {
			return y, true
		}
	case ops.OpEqI:
		if x == y {
			return b.allOnes(w), true
		}
	case ops.OpLtS, ops.OpLtU:
		if x == y {
			return b.zero(w), true
		}
	case ops.OpLeS, ops.OpLeU:
		if x == y {
			return b.allOnes(w), true
		}
	}
	return 0, false
}

// identity3 applies the sel peephole rules of spec section 4.1.
func (b *Builder) identity3(op ops.Op, w ops.Width, m, a, z uint32) (uint32, bool) {
	if op != ops.OpSel {
		return 0, false
	}
	if v, ok := b.splatValue(m); ok {
		if v == 0 {
			return z, true
		}
		if v == -1 {
			return a, true
		}
	}
	if v, ok := b.splatValue(z); ok && v == 0 {
		return b.binMath(ops.OpAnd, w, m, a), true
	}
	if v, ok := b.splatValue(a); ok && v == 0 {
		return b.binMath(ops.OpBic, w, z, m), true
	}
	return 0, false
}
