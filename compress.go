package securestring

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Default compression settings
const (
	defaultCompressionThreshold = 1024 // 1KB
	minCompressionSavings       = 0.10 // 10% minimum savings to use compression

	// maxDecompressedSize is the maximum allowed decompressed size (64MB).
	// Prevents a corrupted or hostile blob from expanding to consume all
	// available memory.
	maxDecompressedSize = 64 * 1024 * 1024
)

var (
	// zstd encoder and decoder are thread-safe and reusable
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdOnce    sync.Once
	zstdErr     error
)

// initZstd initializes the zstd encoder and decoder once.
func initZstd() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zstdErr != nil {
			return
		}
		zstdDecoder, zstdErr = zstd.NewReader(nil)
		if zstdErr != nil {
			// Clean up encoder if decoder creation fails
			zstdEncoder.Close()
			zstdEncoder = nil
		}
	})
	return zstdEncoder, zstdDecoder, zstdErr
}

// compressZstd compresses data using zstd.
func compressZstd(data []byte) ([]byte, error) {
	encoder, _, err := initZstd()
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(data, nil), nil
}

// decompressZstd decompresses zstd-compressed data.
// Returns ErrDecompressionFailed if decompressed size exceeds maxDecompressedSize.
func decompressZstd(data []byte) ([]byte, error) {
	_, decoder, err := initZstd()
	if err != nil {
		return nil, err
	}
	result, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, ErrDecompressionFailed
	}
	if len(result) > maxDecompressedSize {
		wipe(result)
		return nil, ErrDecompressionFailed
	}
	return result, nil
}

// maybeCompress compresses data if it exceeds the threshold and compression
// is beneficial. Returns the (possibly compressed) data and the flag byte.
//
// When the flag is flagZstd the returned slice is a fresh copy holding a
// compressed image of the cleartext; the caller must wipe it once sealed.
// When the flag is flagNoCompression the input slice itself is returned.
func maybeCompress(data []byte, threshold int, disabled bool) ([]byte, byte) {
	// Skip compression if disabled or below threshold
	if disabled || len(data) < threshold {
		return data, flagNoCompression
	}

	compressed, err := compressZstd(data)
	if err != nil {
		// If compression fails, seal uncompressed
		return data, flagNoCompression
	}

	// Check if compression achieved minimum savings (10%)
	originalSize := len(data)
	compressedSize := len(compressed)
	savings := float64(originalSize-compressedSize) / float64(originalSize)

	if savings < minCompressionSavings {
		// Not worth it; the copy still holds cleartext-derived bytes
		wipe(compressed)
		return data, flagNoCompression
	}

	return compressed, flagZstd
}
