package securestring

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Info strings for HKDF derivation - distinct strings ensure separate keys
const (
	infoSealing     = "securestring-sealing"
	infoFingerprint = "securestring-fingerprint"
)

// sessionKeys holds the sealing and fingerprint keys derived from a session
// master key. Derived once at Protector construction.
type sessionKeys struct {
	sealing     [32]byte // XSalsa20-Poly1305 key for the protected store
	fingerprint [32]byte // HMAC-SHA256 key for fingerprints
}

// deriveSessionKeys derives the sealing and fingerprint keys from a master
// key using HKDF-SHA256. The master key must be exactly 32 bytes.
//
// Distinct info strings give cryptographic separation between the two
// roles: a fingerprint leaks nothing about the sealing key and vice versa.
func deriveSessionKeys(master []byte) (*sessionKeys, error) {
	if len(master) != 32 {
		return nil, ErrInvalidKeySize
	}

	keys := &sessionKeys{}

	if err := hkdfDerive(master, infoSealing, keys.sealing[:]); err != nil {
		return nil, err
	}

	if err := hkdfDerive(master, infoFingerprint, keys.fingerprint[:]); err != nil {
		return nil, err
	}

	return keys, nil
}

// hkdfDerive performs HKDF-SHA256 key derivation with the given info string.
// No salt is used (nil salt means HKDF uses a zero-filled salt of HashLen bytes).
func hkdfDerive(master []byte, info string, out []byte) error {
	reader := hkdf.New(sha256.New, master, nil, []byte(info))
	_, err := io.ReadFull(reader, out)
	return err
}
