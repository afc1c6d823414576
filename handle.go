package weft

import "weft/internal/ops"

// V8, V16, V32, V64 are opaque handles to nodes in a Builder's graph,
// distinguished only by lane width in bytes. A handle is a 1-origin
// index into the owning Builder's instruction list (0 never escapes
// the public API — every constructor in builder_ops.go produces a
// handle >= 1). Values of different widths are distinct Go types so a
// V16 can never be passed where a V32 is expected; a handle carries no
// int/float interpretation, so bit-punning between equal widths needs
// no conversion (cast_f/cast_s convert numerically, widen/narrow change
// the width).
type (
	V8  uint32
	V16 uint32
	V32 uint32
	V64 uint32
)

func (v V8) width() ops.Width  { return ops.W8 }
func (v V16) width() ops.Width { return ops.W16 }
func (v V32) width() ops.Width { return ops.W32 }
func (v V64) width() ops.Width { return ops.W64 }
