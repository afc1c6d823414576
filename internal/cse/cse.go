// Package cse implements Weft's common-subexpression table: an
// open-addressed, linear-probing hash table keyed by the raw-byte FNV-1a
// hash of an instruction record, per spec section 3 ("CSE table load
// factor <= 3/4") and the "CSE by raw-byte memcmp" design note.
package cse

import "weft/internal/ops"

// Key is the part of an instruction record CSE hashes and compares.
// LOAD and SIDE_EFFECT instructions are never represented here — callers
// exclude them before calling Insert, per spec section 4.1.
type Key struct {
	Op    ops.Op
	Width ops.Width
	X, Y, Z uint32 // operand handles; 0 = unused
	Imm   int64
}

// packed returns a padding-free byte encoding of k, suitable for hashing
// and byte-exact comparison (the sole purpose of this struct -> []byte
// conversion; it is never used to reconstruct a Key).
func (k Key) packed() [24]byte {
	var b [24]byte
	b[0] = byte(k.Op)
	b[1] = byte(k.Width)
	putU32(b[4:8], k.X)
	putU32(b[8:12], k.Y)
	putU32(b[12:16], k.Z)
	putU64(b[16:24], uint64(k.Imm))
	return b
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putU64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func fnv1a(b []byte) uint64 {
	h := uint64(fnvOffset)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime
	}
	return h
}

type entry struct {
	valid  bool
	packed [24]byte
	handle uint32
}

// Table is an open-addressed CSE table mapping instruction records to the
// handle of the first instruction that produced them.
type Table struct {
	slots []entry
	count int
}

// NewTable returns an empty CSE table.
func NewTable() *Table {
	return &Table{slots: make([]entry, 16)}
}

// Lookup returns the handle previously inserted for an equal key, and
// whether one was found.
func (t *Table) Lookup(k Key) (uint32, bool) {
	packed := k.packed()
	i := fnv1a(packed[:]) % uint64(len(t.slots))
	for {
		e := &t.slots[i]
		if !e.valid {
			return 0, false
		}
		if e.packed == packed {
			return e.handle, true
		}
		i = (i + 1) % uint64(len(t.slots))
	}
}

// Insert records that k produced handle. Insert must only be called after
// a Lookup miss for the same key.
func (t *Table) Insert(k Key, handle uint32) {
	if (t.count+1)*4 > len(t.slots)*3 { // load factor > 3/4
		t.grow()
	}
	packed := k.packed()
	i := fnv1a(packed[:]) % uint64(len(t.slots))
	for t.slots[i].valid {
		i = (i + 1) % uint64(len(t.slots))
	}
	t.slots[i] = entry{valid: true, packed: packed, handle: handle}
	t.count++
}

func (t *Table) grow() {
	old := t.slots
	t.slots = make([]entry, len(old)*2)
	t.count = 0
	for _, e := range old {
		if !e.valid {
			continue
		}
		i := fnv1a(e.packed[:]) % uint64(len(t.slots))
		for t.slots[i].valid {
			i = (i + 1) % uint64(len(t.slots))
		}
		t.slots[i] = e
		t.count++
	}
}
