package securestring

// Sealed blob format:
// [flag:1][nonce:24][secretbox(content)]
//
// Flag byte values:
//   0x00 = no compression
//   0x01 = zstd compressed
//
// There is no key identifier in the frame: a blob is only ever opened by
// the Protector that sealed it, and every Protector has exactly one
// session key.

const (
	flagNoCompression byte = 0x00
	flagZstd          byte = 0x01

	nonceSize = 24
)

// formatSealed assembles the sealed blob.
// Returns: [flag:1][nonce:24][box]
func formatSealed(flag byte, nonce [24]byte, box []byte) []byte {
	totalSize := 1 + nonceSize + len(box)
	result := make([]byte, 0, totalSize)

	result = append(result, flag)
	result = append(result, nonce[:]...)
	result = append(result, box...)

	return result
}

// parseSealed parses a sealed blob into its flag, nonce, and secretbox
// ciphertext. The box is a subslice of data, not a copy.
func parseSealed(data []byte) (flag byte, nonce [24]byte, box []byte, err error) {
	// Minimum size: flag(1) + nonce(24) + secretbox overhead(16)
	minSize := 1 + nonceSize + 16
	if len(data) < minSize {
		err = ErrInvalidFormat
		return
	}

	flag = data[0]
	copy(nonce[:], data[1:1+nonceSize])
	box = data[1+nonceSize:]

	return
}
