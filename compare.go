package securestring

import "crypto/subtle"

// Equal compares two Protected values for content equality without handing
// any cleartext to the caller. Both values are revealed into transient
// buffers that are wiped before Equal returns, on every exit path.
//
// The comparison is constant-time for equal-length content. On a length
// mismatch the shared prefix is still compared before returning false, so
// prefix-equal values do not return faster than fully-distinct ones.
func (p *Protector) Equal(a, b *Protected) (bool, error) {
	if p.closed.Load() {
		return false, ErrProtectorClosed
	}
	if a == nil || b == nil {
		return false, ErrNullValue
	}
	if a.disposed.Load() || b.disposed.Load() {
		return false, ErrValueDisposed
	}

	ac, err := p.open(a.blob)
	if err != nil {
		return false, err
	}
	defer wipe(ac)

	bc, err := p.open(b.blob)
	if err != nil {
		return false, err
	}
	defer wipe(bc)

	return constantTimeEqual(ac, bc), nil
}

// constantTimeEqual compares x and y without short-circuiting on the first
// differing byte. Length mismatch means not equal, but the overlapping
// prefix is compared anyway so timing does not reveal how far the prefix
// matched.
func constantTimeEqual(x, y []byte) bool {
	if len(x) != len(y) {
		n := min(len(x), len(y))
		subtle.ConstantTimeCompare(x[:n], y[:n])
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}
