package weft

import (
	"testing"

	"weft/internal/ops"
)

func TestDecodeLaneImmSignExtends(t *testing.T) {
	tests := []struct {
		name string
		w    ops.Width
		in   []byte
		want int64
	}{
		{"w8 negative one", ops.W8, []byte{0xff}, -1},
		{"w8 positive", ops.W8, []byte{0x7f}, 127},
		{"w16 negative", ops.W16, []byte{0x00, 0x80}, -32768},
		{"w32 all ones", ops.W32, []byte{0xff, 0xff, 0xff, 0xff}, -1},
		{"w64 all ones", ops.W64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, -1},
	}
	for _, tt := range tests {
		got := decodeLaneImm(tt.in, tt.w)
		if got != tt.want {
			t.Errorf("test[%s]: decodeLaneImm = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFoldAddIOnConstants(t *testing.T) {
	b := NewBuilder()
	x := b.Splat32(3)
	y := b.Splat32(4)
	before := b.Len()
	sum := b.AddI32(x, y)
	if b.Len() != before+1 {
		t.Fatalf("AddI32 on two splats appended %d instructions, want exactly 1 (the folded splat)", b.Len()-before)
	}
	v, ok := b.splatValue(uint32(sum))
	if !ok || v != 7 {
		t.Errorf("folded AddI32(3, 4) = (%d, %v), want (7, true)", v, ok)
	}
}

func TestFoldRequiresAllOperandsConstant(t *testing.T) {
	b := NewBuilder()
	x := b.Load32(1)
	y := b.Splat32(4)
	sum := b.AddI32(x, y)
	if _, ok := b.splatValue(uint32(sum)); ok {
		t.Error("AddI32(load, splat) folded to a constant, want it to remain a real instruction")
	}
}

func TestNegZeroImm(t *testing.T) {
	tests := []struct {
		w    ops.Width
		want int64
	}{
		{ops.W32, int64(-1) << 31},
		{ops.W64, int64(-1) << 63},
	}
	for _, tt := range tests {
		if got := negZeroImm(tt.w); got != tt.want {
			t.Errorf("negZeroImm(%v) = %d, want %d", tt.w, got, tt.want)
		}
	}
}
