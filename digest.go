package securestring

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Digest computes the SHA-256 of a Protected value's content and returns
// it as a lowercase hex string. The content is revealed into a transient
// buffer that is wiped before returning, on every exit path; no partial
// digest is ever returned.
func (p *Protector) Digest(v *Protected) (string, error) {
	if p.closed.Load() {
		return "", ErrProtectorClosed
	}
	if v == nil {
		return "", ErrNullValue
	}
	if v.disposed.Load() {
		return "", ErrValueDisposed
	}

	content, err := p.open(v.blob)
	if err != nil {
		return "", err
	}
	defer wipe(content)

	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}

// Fingerprint computes an HMAC-SHA256 over a Protected value's content
// under the session fingerprint key. Deterministic within one Protector:
// equal content gives equal fingerprints, which makes them usable as map
// keys or for deduplication without revealing anything. Fingerprints from
// different sessions are unrelated.
//
// The transient cleartext is wiped before returning.
func (p *Protector) Fingerprint(v *Protected) ([]byte, error) {
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
	defer wipe(content)

	h := hmac.New(sha256.New, p.keys.fingerprint[:])
	h.Write(content)
	return h.Sum(nil), nil
}
