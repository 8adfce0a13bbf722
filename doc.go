// Package securestring minimizes the lifetime of sensitive text (passwords,
// tokens, identifiers) in process memory.
//
// Go strings are immutable and may be copied by the runtime, so sensitive
// text held as a string cannot be reliably removed before the garbage
// collector gets around to it. This package instead keeps sensitive text in
// explicitly-owned, mutable Buffers that can be overwritten in place, and
// converts them into encrypted Protected values so that no long-lived
// cleartext copy survives.
//
// # Protection
//
// A Protector holds an ephemeral per-session key and converts Buffers into
// sealed Protected values:
//
//	p, err := securestring.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	buf := securestring.NewBuffer(passwordBytes)
//	value, err := p.Protect(buf) // buf is zeroed here
//
// Protect erases the source buffer once the sealed copy exists, so the
// cleartext stops existing the moment the protected form does. Values
// produced by Protect are read-only.
//
// # Revealing and erasure
//
// Reveal is the only way back to cleartext. It decrypts into a fresh Buffer
// owned by the caller, who must erase it as soon as it has served its
// purpose:
//
//	buf, err := p.Reveal(value)
//	if err != nil {
//	    return err
//	}
//	defer buf.Erase()
//	use(buf.Bytes())
//
// Buffers built from compile-time constants must be created with
// NewStaticBuffer; they are tagged non-erasable at construction and Erase
// refuses to touch them. Protecting a static buffer succeeds but cannot
// remove the constant from memory — avoid protecting constants in the first
// place.
//
// # Comparison and digests
//
// Equal and Digest operate on Protected values without handing cleartext to
// the caller. Both decrypt into transient buffers that are zeroed before
// the call returns, on every path including errors:
//
//	same, err := p.Equal(a, b)       // constant-time comparison
//	sum, err := p.Digest(value)      // lowercase-hex SHA-256
//	tag, err := p.Fingerprint(value) // keyed HMAC, stable within a session
//
// Fingerprints are deterministic under one Protector, which makes them
// usable as map keys or for deduplication without revealing anything; they
// are worthless across sessions because every Protector derives fresh keys.
//
// # Disposal
//
// Protected values zero their internal storage on Dispose. A finalizer is
// registered as a backstop, but finalization timing is up to the garbage
// collector — dispose explicitly, and never treat disposal as the erasure
// of the original cleartext. That guarantee belongs to the source buffer,
// and Protect already provided it.
//
// # Limits
//
// Everything here is best-effort defense against passive memory scans and
// delayed collection. It does not defend against a live debugger attached
// to the process, and it does not persist anything: sealed values are only
// meaningful within the Protector that created them.
package securestring
