// Package werror collects Weft's error types. Per spec section 7 there
// are exactly two named failure points past the construction API
// itself: jit declining to emit, and an assert_B failure at run time.
// There is no source-location or call-stack concept here — Weft has no
// textual source, so unlike sentra's SentraError there is nothing to
// point at beyond the failing operation.
package werror

import "fmt"

// AssertionError is the value Run panics with when an assert_B
// instruction finds a zero lane. Per spec section 7 this aborts the
// run; Go code that wants its own recovery point can recover() it at a
// goroutine boundary, but Run itself never does.
type AssertionError struct {
	// Width is the result width of the failing assert, for callers that
	// want to distinguish which assert_B tripped without unwinding the
	// whole kernel.
	Width int
}

func (e AssertionError) Error() string {
	return fmt.Sprintf("weft: assert_%d failed", e.Width)
}

// JitError reports why Jit declined to emit code: a missing emitter
// for some instruction, or register allocation running out of
// registers. Jit itself communicates this only via a zero byte length
// (per spec section 7's "no in-band error codes") and never constructs
// a JitError; neither does cmd/weftc's jit subcommand, which prints its
// own message.
type JitError struct {
	Reason string
}

func (e JitError) Error() string {
	return "weft: jit: " + e.Reason
}
