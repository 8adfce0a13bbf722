package securestring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// captureWipes records every non-empty slice handed to wipe for the rest of
// the test. The recorded slices alias the live buffers, so once the
// operation under test returns they must all read as zeroes.
func captureWipes(t *testing.T) *[][]byte {
	t.Helper()
	var seen [][]byte
	wipeObserver = func(b []byte) {
		if len(b) > 0 {
			seen = append(seen, b)
		}
	}
	t.Cleanup(func() { wipeObserver = nil })
	return &seen
}

// requireAllWiped asserts at least one wipe happened and that every
// recorded buffer now holds only zeroes.
func requireAllWiped(t *testing.T, seen *[][]byte) {
	t.Helper()
	require.NotEmpty(t, *seen, "expected at least one transient buffer to be wiped")
	for i, b := range *seen {
		require.Equal(t, make([]byte, len(b)), b, "transient buffer %d retains non-zero content", i)
	}
}
