package securestring

import (
	"crypto/rand"
	"sync/atomic"

	"golang.org/x/crypto/nacl/secretbox"
)

// Protector converts Buffers into Protected values and back. It owns the
// ephemeral session keys behind the protected store; sealed values are
// meaningless outside the Protector (or session key) that created them.
type Protector struct {
	keys   *sessionKeys // derived sealing + fingerprint keys
	config *config      // configuration options
	closed atomic.Bool  // true after Close() called
}

// config holds protector configuration options.
type config struct {
	sessionKey           []byte // explicit master key (32 bytes), nil = random
	compressionThreshold int
	compressionDisabled  bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		compressionThreshold: defaultCompressionThreshold,
	}
}

// New creates a Protector with the given options. With no options it draws
// a fresh random session key, which is the right choice for values that
// never leave the process.
//
// Example:
//
//	p, err := securestring.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
func New(opts ...Option) (*Protector, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	master := cfg.sessionKey
	if master == nil {
		master = make([]byte, 32)
		if _, err := rand.Read(master); err != nil {
			return nil, err
		}
	}

	// The master key is only needed for derivation. Wipe it on every exit
	// path, including derivation failure.
	defer func() {
		wipe(master)
		cfg.sessionKey = nil
	}()

	keys, err := deriveSessionKeys(master)
	if err != nil {
		return nil, err
	}

	return &Protector{
		keys:   keys,
		config: cfg,
	}, nil
}

// Protect seals the buffer's content into a read-only Protected value and
// erases the source buffer, so no cleartext copy outlives the call.
//
// A static source cannot be erased; Protect still succeeds, leaving the
// constant readable in memory. That trade-off is deliberate — the static
// tag was set by the caller at construction — but it means callers should
// not protect constants and expect them gone. Use Buffer.Erase directly if
// the erase outcome matters.
func (p *Protector) Protect(buf *Buffer) (*Protected, error) {
	return p.protect(buf, true, true)
}

// ProtectKeep seals the buffer's content without erasing the source.
// The caller remains responsible for erasing buf.
func (p *Protector) ProtectKeep(buf *Buffer) (*Protected, error) {
	return p.protect(buf, false, true)
}

// ProtectMutable is Protect for a value that still needs content appended.
// The result starts writable; call Append to grow it and Freeze to make it
// read-only once complete.
func (p *Protector) ProtectMutable(buf *Buffer) (*Protected, error) {
	return p.protect(buf, true, false)
}

func (p *Protector) protect(buf *Buffer, consumeSource, readOnly bool) (*Protected, error) {
	if p.closed.Load() {
		return nil, ErrProtectorClosed
	}
	if buf == nil {
		return nil, ErrNullValue
	}

	blob := p.seal(buf.data)
	v := newProtected(blob, buf.Len(), readOnly)

	if consumeSource {
		// A static source fails this erase; the failure is not surfaced
		// (see Protect doc comment).
		_ = buf.Erase()
	}

	return v, nil
}

// Reveal decrypts a Protected value into a fresh erasable Buffer. This is
// the one place a cleartext copy is deliberately created: the caller owns
// the returned buffer and must Erase it as soon as it has been used.
func (p *Protector) Reveal(v *Protected) (*Buffer, error) {
	if p.closed.Load() {
		return nil, ErrProtectorClosed
	}
	if v == nil {
		return nil, ErrNullValue
	}
	if v.disposed.Load() {
		return nil, ErrValueDisposed
	}

	content, err := p.open(v.blob)
	if err != nil {
		return nil, err
	}
	return NewBuffer(content), nil
}

// Append grows a writable Protected value by data. The value is unsealed,
// extended, and resealed under a fresh nonce; the transient cleartext is
// wiped before returning on every path. Fails with ErrReadOnlyValue once
// the value has been frozen.
func (p *Protector) Append(v *Protected, data []byte) error {
	if p.closed.Load() {
		return ErrProtectorClosed
	}
	if v == nil {
		return ErrNullValue
	}
	if v.disposed.Load() {
		return ErrValueDisposed
	}
	if v.readOnly {
		return ErrReadOnlyValue
	}

	content, err := p.open(v.blob)
	if err != nil {
		return err
	}

	grown := make([]byte, 0, len(content)+len(data))
	grown = append(grown, content...)
	grown = append(grown, data...)
	wipe(content)

	newLen := len(grown)
	blob := p.seal(grown)
	wipe(grown)

	wipe(v.blob)
	v.blob = blob
	v.length = newLen
	return nil
}

// Close zeros the session keys. Call this when the Protector is no longer
// needed to reduce key exposure window. Protected values sealed by this
// Protector become unrecoverable; dispose of them separately.
func (p *Protector) Close() {
	p.closed.Store(true)
	if p.keys != nil {
		wipe(p.keys.sealing[:])
		wipe(p.keys.fingerprint[:])
		p.keys = nil
	}
}

// seal encrypts content into a framed blob. Compressed intermediates hold
// cleartext-derived bytes and are wiped here; content itself belongs to the
// caller.
func (p *Protector) seal(content []byte) []byte {
	toSeal, flag := maybeCompress(content, p.config.compressionThreshold, p.config.compressionDisabled)

	nonce := generateNonce()
	box := secretbox.Seal(nil, toSeal, &nonce, &p.keys.sealing)

	if flag != flagNoCompression {
		wipe(toSeal)
	}

	return formatSealed(flag, nonce, box)
}

// open decrypts a framed blob into a fresh cleartext slice owned by the
// caller. Intermediate cleartext (the compressed image) is wiped before
// returning.
func (p *Protector) open(blob []byte) ([]byte, error) {
	flag, nonce, box, err := parseSealed(blob)
	if err != nil {
		return nil, err
	}

	content, ok := secretbox.Open(nil, box, &nonce, &p.keys.sealing)
	if !ok {
		return nil, ErrDecryptionFailed
	}

	switch flag {
	case flagNoCompression:
		return content, nil
	case flagZstd:
		expanded, err := decompressZstd(content)
		wipe(content)
		if err != nil {
			return nil, err
		}
		return expanded, nil
	default:
		wipe(content)
		return nil, ErrInvalidFormat
	}
}

// generateNonce generates a cryptographically secure random 24-byte nonce.
// Panics if the system's random source fails (unrecoverable).
func generateNonce() [24]byte {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return nonce
}
