package jit

import "testing"

func TestExecBufferRoundTrip(t *testing.T) {
	buf, err := NewExecBuffer(4096)
	if err != nil {
		t.Fatalf("NewExecBuffer: %v", err)
	}
	defer buf.Close()

	mem := buf.Bytes()
	if len(mem) != 4096 {
		t.Fatalf("len(Bytes()) = %d, want 4096", len(mem))
	}
	mem[0] = 0xc3 // x86 ret, arbitrary marker byte

	if err := buf.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
}

func TestExecBufferCloseUnmaps(t *testing.T) {
	buf, err := NewExecBuffer(4096)
	if err != nil {
		t.Fatalf("NewExecBuffer: %v", err)
	}
	if err := buf.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
