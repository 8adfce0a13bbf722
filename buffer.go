package securestring

import "runtime"

// Buffer is a mutable, fixed-length byte sequence holding sensitive text.
// Unlike a string, a Buffer can be overwritten in place, which is the whole
// point: cleartext lives in Buffers so it can be removed on demand.
//
// A Buffer is either heap-allocated (erasable) or static (built from a
// compile-time constant, never erased). The tag is fixed at construction.
type Buffer struct {
	data   []byte
	static bool
}

// NewBuffer wraps data in an erasable Buffer. The Buffer takes ownership of
// the slice: erasing the Buffer zeroes the caller's backing array, which is
// exactly what callers holding sensitive input want.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferFromString copies s into a fresh erasable Buffer. The string
// itself is immutable and cannot be erased by this package; only the copy
// is under Buffer control. Prefer byte-slice input where possible.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// NewStaticBuffer copies s into a Buffer tagged static. Use this for
// buffers derived from compile-time constants: Erase refuses to zero them,
// so code that mistakes constant data for a secret fails loudly instead of
// silently scribbling over it.
func NewStaticBuffer(s string) *Buffer {
	return &Buffer{data: []byte(s), static: true}
}

// Len returns the number of bytes in the buffer. Erasing does not change
// the length; a zeroed buffer keeps its size.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer's backing slice without copying. The slice stays
// valid until the buffer is erased; callers must not keep copies of it.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Erasable reports whether Erase will zero this buffer.
func (b *Buffer) Erasable() bool {
	return b != nil && !b.static
}

// Erase overwrites every byte of the buffer with zero, in place. The length
// is unchanged. Returns ErrProtectedOperation for a static buffer, which is
// left untouched.
func (b *Buffer) Erase() error {
	if b == nil {
		return ErrNullValue
	}
	if b.static {
		return ErrProtectedOperation
	}
	wipe(b.data)
	return nil
}

// wipeObserver, when set, sees each slice just before it is zeroed.
// Test hook for verifying transient cleanup.
var wipeObserver func([]byte)

// wipe zeroes b in place. runtime.KeepAlive keeps the compiler from
// treating the zeroing as a dead store.
func wipe(b []byte) {
	if wipeObserver != nil {
		wipeObserver(b)
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
