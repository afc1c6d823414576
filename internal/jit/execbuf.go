package jit

import "golang.org/x/sys/unix"

// ExecBuffer is the W^X-respecting executable-memory mapper the jit
// interface names as an external collaborator (spec section 1): code
// is written into a writable mapping, then the mapping is flipped to
// read+execute and never writable again.
type ExecBuffer struct {
	mem []byte
}

// NewExecBuffer maps size bytes read-write, anonymous and private, for
// an emitter to fill via Jit(p, buf.Bytes()).
func NewExecBuffer(size int) (*ExecBuffer, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return &ExecBuffer{mem: mem}, nil
}

// Bytes returns the writable backing slice, valid until Finalize.
func (b *ExecBuffer) Bytes() []byte { return b.mem }

// Finalize drops write permission and grants execute permission. After
// this call the buffer must not be written to again.
func (b *ExecBuffer) Finalize() error {
	return unix.Mprotect(b.mem, unix.PROT_READ|unix.PROT_EXEC)
}

// Close unmaps the buffer.
func (b *ExecBuffer) Close() error {
	return unix.Munmap(b.mem)
}
