// Package ops describes Weft's instruction set: the operation catalog,
// the bit widths operations are parameterized over, and the metadata
// (arity, commutativity) the builder and compiler need without caring
// about execution semantics.
package ops

// Width is a lane width in bytes. Operations are parameterized by width;
// the width itself never changes what an operation does, only how many
// bits of each lane it touches.
type Width int

const (
	W8  Width = 1
	W16 Width = 2
	W32 Width = 4
	W64 Width = 8
)

func (w Width) String() string {
	switch w {
	case W8:
		return "8"
	case W16:
		return "16"
	case W32:
		return "32"
	case W64:
		return "64"
	default:
		return "?"
	}
}

// Kind groups operations by how the builder and compiler must treat them:
// whether they participate in CSE, whether they are loop-dependent, and
// whether they root liveness.
type Kind uint8

const (
	KindMath Kind = iota
	KindSplat
	KindUniform
	KindLoad
	KindSideEffect
)

// Op identifies a single operation, independent of width. The result
// width of an instruction is carried alongside the Op in the instruction
// record, not in the Op itself.
type Op uint8

const (
	OpNoop Op = iota // synthetic terminator; compiler-internal only

	OpSplat
	OpUniform
	OpLoad
	OpStore
	OpAssert

	OpAddI
	OpSubI
	OpMulI

	OpShlI
	OpShlImm
	OpShrS
	OpShrSImm
	OpShrU
	OpShrUImm

	OpAnd
	OpOr
	OpXor
	OpNot
	OpBic
	OpSel

	OpEqI
	OpLtS
	OpLtU
	OpLeS
	OpLeU

	OpAddF
	OpSubF
	OpMulF
	OpDivF
	OpSqrtF
	OpCeilF
	OpFloorF
	OpEqF
	OpLtF
	OpLeF

	OpCastF // signed-int bits -> float value, same width
	OpCastS // float bits -> signed-int value, same width

	OpWidenS  // sign-extend, width doubles
	OpWidenU  // zero-extend, width doubles
	OpWidenF  // float widen (f16->f32, f32->f64), width doubles
	OpNarrowI // integer truncation, width halves
	OpNarrowF // float narrow (f64->f32, f32->f16), width halves

	opCount
)

// Info is the static metadata for one Op, independent of width.
type Info struct {
	Name        string
	Kind        Kind
	Arity       int  // number of value operands (x, y, z)
	Commutative bool // safe to canonicalize operand order by handle value
	FloatCmp    bool // comparison whose x==x identity must NOT fire (NaN)
}

var table = [opCount]Info{
	OpNoop:    {Name: "noop", Kind: KindSideEffect, Arity: 0},
	OpSplat:   {Name: "splat", Kind: KindSplat, Arity: 0},
	OpUniform: {Name: "uniform", Kind: KindUniform, Arity: 0},
	OpLoad:    {Name: "load", Kind: KindLoad, Arity: 0},
	OpStore:   {Name: "store", Kind: KindSideEffect, Arity: 1},
	OpAssert:  {Name: "assert", Kind: KindSideEffect, Arity: 1},

	OpAddI: {Name: "add_i", Kind: KindMath, Arity: 2, Commutative: true},
	OpSubI: {Name: "sub_i", Kind: KindMath, Arity: 2},
	OpMulI: {Name: "mul_i", Kind: KindMath, Arity: 2, Commutative: true},

	OpShlI:     {Name: "shl_i", Kind: KindMath, Arity: 2},
	OpShlImm:   {Name: "shl_i.imm", Kind: KindMath, Arity: 1},
	OpShrS:     {Name: "shr_s", Kind: KindMath, Arity: 2},
	OpShrSImm:  {Name: "shr_s.imm", Kind: KindMath, Arity: 1},
	OpShrU:     {Name: "shr_u", Kind: KindMath, Arity: 2},
	OpShrUImm:  {Name: "shr_u.imm", Kind: KindMath, Arity: 1},

	OpAnd: {Name: "and", Kind: KindMath, Arity: 2, Commutative: true},
	OpOr:  {Name: "or", Kind: KindMath, Arity: 2, Commutative: true},
	OpXor: {Name: "xor", Kind: KindMath, Arity: 2, Commutative: true},
	OpNot: {Name: "not", Kind: KindMath, Arity: 1},
	OpBic: {Name: "bic", Kind: KindMath, Arity: 2},
	OpSel: {Name: "sel", Kind: KindMath, Arity: 3},

	OpEqI: {Name: "eq_i", Kind: KindMath, Arity: 2, Commutative: true},
	OpLtS: {Name: "lt_s", Kind: KindMath, Arity: 2},
	OpLtU: {Name: "lt_u", Kind: KindMath, Arity: 2},
	OpLeS: {Name: "le_s", Kind: KindMath, Arity: 2},
	OpLeU: {Name: "le_u", Kind: KindMath, Arity: 2},

	OpAddF:   {Name: "add_f", Kind: KindMath, Arity: 2, Commutative: true},
	OpSubF:   {Name: "sub_f", Kind: KindMath, Arity: 2},
	OpMulF:   {Name: "mul_f", Kind: KindMath, Arity: 2, Commutative: true},
	OpDivF:   {Name: "div_f", Kind: KindMath, Arity: 2},
	OpSqrtF:  {Name: "sqrt_f", Kind: KindMath, Arity: 1},
	OpCeilF:  {Name: "ceil_f", Kind: KindMath, Arity: 1},
	OpFloorF: {Name: "floor_f", Kind: KindMath, Arity: 1},
	OpEqF:    {Name: "eq_f", Kind: KindMath, Arity: 2, Commutative: true, FloatCmp: true},
	OpLtF:    {Name: "lt_f", Kind: KindMath, Arity: 2, FloatCmp: true},
	OpLeF:    {Name: "le_f", Kind: KindMath, Arity: 2, FloatCmp: true},

	OpCastF: {Name: "cast_f", Kind: KindMath, Arity: 1},
	OpCastS: {Name: "cast_s", Kind: KindMath, Arity: 1},

	OpWidenS:  {Name: "widen_s", Kind: KindMath, Arity: 1},
	OpWidenU:  {Name: "widen_u", Kind: KindMath, Arity: 1},
	OpWidenF:  {Name: "widen_f", Kind: KindMath, Arity: 1},
	OpNarrowI: {Name: "narrow_i", Kind: KindMath, Arity: 1},
	OpNarrowF: {Name: "narrow_f", Kind: KindMath, Arity: 1},
}

// Describe returns the static metadata for op.
func Describe(op Op) Info { return table[op] }

// KindOf is shorthand for Describe(op).Kind.
func KindOf(op Op) Kind { return table[op].Kind }

// Name is shorthand for Describe(op).Name, used in diagnostics.
func Name(op Op) string { return table[op].Name }
