package securestring

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveSessionKeys_Deterministic(t *testing.T) {
	master := []byte("01234567890123456789012345678901") // 32 bytes

	keys1, err := deriveSessionKeys(master)
	require.NoError(t, err)

	keys2, err := deriveSessionKeys(master)
	require.NoError(t, err)

	// Same master key should produce same derived keys
	require.Equal(t, keys1.sealing, keys2.sealing)
	require.Equal(t, keys1.fingerprint, keys2.fingerprint)
}

func TestDeriveSessionKeys_DifferentMasterKeys(t *testing.T) {
	master1 := []byte("01234567890123456789012345678901")
	master2 := []byte("01234567890123456789012345678902") // One byte different

	keys1, err := deriveSessionKeys(master1)
	require.NoError(t, err)

	keys2, err := deriveSessionKeys(master2)
	require.NoError(t, err)

	require.NotEqual(t, keys1.sealing, keys2.sealing)
	require.NotEqual(t, keys1.fingerprint, keys2.fingerprint)
}

func TestDeriveSessionKeys_SealingAndFingerprintAreDifferent(t *testing.T) {
	master := []byte("01234567890123456789012345678901")

	keys, err := deriveSessionKeys(master)
	require.NoError(t, err)

	// Derived with different info strings, so the roles are separated
	require.False(t, bytes.Equal(keys.sealing[:], keys.fingerprint[:]),
		"sealing and fingerprint keys should be different")
}

func TestDeriveSessionKeys_InvalidSize(t *testing.T) {
	tests := []struct {
		name   string
		master []byte
	}{
		{"empty", []byte{}},
		{"too short", []byte("short")},
		{"31 bytes", make([]byte, 31)},
		{"33 bytes", make([]byte, 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deriveSessionKeys(tt.master)
			require.ErrorIs(t, err, ErrInvalidKeySize)
		})
	}
}
