package securestring

// Option is a functional option for configuring a Protector.
type Option func(*config)

// WithSessionKey supplies an explicit 32-byte session master key instead of
// a random one. The key is copied internally; the caller should wipe the
// original after calling New().
//
// Sealed blobs are only portable between Protectors built from the same
// session key. That is the one reason to use this option — the default
// random key is otherwise strictly better.
func WithSessionKey(key []byte) Option {
	return func(c *config) {
		keyCopy := make([]byte, len(key))
		copy(keyCopy, key)
		c.sessionKey = keyCopy
	}
}

// WithCompressionThreshold sets the minimum size in bytes before large
// values are compressed inside the protected store. Default is 1024 (1KB).
func WithCompressionThreshold(bytes int) Option {
	return func(c *config) {
		c.compressionThreshold = bytes
	}
}

// WithCompressionDisabled disables compression entirely.
func WithCompressionDisabled() Option {
	return func(c *config) {
		c.compressionDisabled = true
	}
}
