package securestring

import "errors"

var (
	// ErrNullValue indicates a required argument was nil.
	ErrNullValue = errors.New("securestring: value is nil")

	// ErrProtectedOperation indicates an attempt to erase a static buffer.
	// Static buffers hold constant data and are never zeroed by this package.
	ErrProtectedOperation = errors.New("securestring: buffer is static and cannot be erased")

	// ErrValueDisposed indicates an operation on an already-disposed Protected value.
	ErrValueDisposed = errors.New("securestring: value is disposed")

	// ErrReadOnlyValue indicates an attempt to mutate a read-only Protected value.
	ErrReadOnlyValue = errors.New("securestring: value is read-only")

	// ErrProtectorClosed indicates the Protector was used after Close() was called.
	ErrProtectorClosed = errors.New("securestring: protector is closed")

	// ErrInvalidKeySize indicates the session key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("securestring: session key must be 32 bytes")

	// ErrDecryptionFailed indicates secretbox authentication failed
	// (sealed under a different session, or corrupted).
	ErrDecryptionFailed = errors.New("securestring: decryption failed")

	// ErrInvalidFormat indicates the sealed blob is malformed.
	ErrInvalidFormat = errors.New("securestring: invalid sealed format")

	// ErrDecompressionFailed indicates zstd decompression failed.
	ErrDecompressionFailed = errors.New("securestring: decompression failed")
)
