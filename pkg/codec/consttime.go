// Copyright 2025 Certen Protocol
//
// Constant-time equality, factored out of the digest-comparison path so
// that callers outside pkg/merkle can share the same primitive instead of
// rolling their own.

package codec

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b hold the same bytes, without
// branching on the position of the first mismatch. Unequal lengths are
// rejected before entering constant-time comparison, since the caller
// already knows the lengths and a length check alone is not secret.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
