package securestring

import (
	"runtime"
	"sync/atomic"
)

// Protected is an opaque, encrypted-at-rest holder of sensitive text. It
// exposes its length but never its content; Protector.Reveal is the only
// way back to cleartext.
//
// A Protected value is single-owner: it is not safe for concurrent use
// with Dispose from another goroutine.
type Protected struct {
	blob     []byte      // framed sealed content
	length   int         // cleartext length, queryable without decrypting
	readOnly bool        // set irreversibly by Freeze (or at construction)
	disposed atomic.Bool // true after Dispose
}

// newProtected wraps a sealed blob. A finalizer backstops Dispose for
// values that are dropped without one, but finalization timing is up to
// the garbage collector; explicit disposal is the supported path.
func newProtected(blob []byte, length int, readOnly bool) *Protected {
	v := &Protected{
		blob:     blob,
		length:   length,
		readOnly: readOnly,
	}
	runtime.SetFinalizer(v, (*Protected).Dispose)
	return v
}

// Len returns the cleartext length without decrypting anything.
// Returns 0 once the value is disposed.
func (v *Protected) Len() int {
	if v.disposed.Load() {
		return 0
	}
	return v.length
}

// ReadOnly reports whether the value can still be appended to.
func (v *Protected) ReadOnly() bool {
	return v.readOnly
}

// Freeze makes the value read-only. Irreversible; a no-op on a value that
// already is.
func (v *Protected) Freeze() {
	v.readOnly = true
}

// Disposed reports whether Dispose has run.
func (v *Protected) Disposed() bool {
	return v.disposed.Load()
}

// Dispose zeroes the internal sealed storage and makes the value terminal:
// every subsequent operation fails with ErrValueDisposed. Idempotent.
func (v *Protected) Dispose() {
	if v.disposed.Swap(true) {
		return
	}
	wipe(v.blob)
	v.blob = nil
	v.length = 0
}
