// Copyright 2025 Certen Protocol
//
// Hash is a fixed-size, opaque byte container typed by the digest in use.

package merkle

import (
	"bytes"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/certenio/merkle-signature-suite/pkg/digest"
)

// Hash is an immutable, fixed-length digest output. Its length always
// equals the digest's output size; construction fails otherwise.
type Hash struct {
	b []byte
}

// NewHash wraps b as a Hash sized for d. It fails (returns ErrInvalidHash)
// unless len(b) == d.Size(); the slice is never truncated or padded.
func NewHash(d digest.Digest, b []byte) (Hash, error) {
	if len(b) != d.Size() {
		return Hash{}, ErrInvalidHash
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Hash{b: cp}, nil
}

// mustHash is an internal helper for code paths where the byte length is
// already known to match the digest (e.g. hashing output).
func mustHash(b []byte) Hash {
	return Hash{b: append([]byte(nil), b...)}
}

// Bytes returns the underlying bytes. Callers must not mutate the result.
func (h Hash) Bytes() []byte { return h.b }

// IsZero reports whether h was never assigned a value.
func (h Hash) IsZero() bool { return h.b == nil }

// Equal reports plain (non-constant-time) byte equality. Safe to use
// outside cryptographic verification paths.
func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h.b, other.b)
}

// ConstantEqual reports byte equality in constant time, for use on
// verification paths where timing must not leak information about a
// mismatch's position.
func (h Hash) ConstantEqual(other Hash) bool {
	if len(h.b) != len(other.b) {
		return false
	}
	return subtle.ConstantTimeCompare(h.b, other.b) == 1
}

// Compare orders two hashes lexicographically by byte content, as
// bytes.Compare would.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h.b, other.b)
}

// Hex renders the hash as lowercase hex, exactly 2*len(b) characters.
func (h Hash) Hex() string {
	return hex.EncodeToString(h.b)
}

// String implements fmt.Stringer with the same lowercase hex rendering
// used for debug output.
func (h Hash) String() string {
	return h.Hex()
}

// GoString gives a debug-friendly representation for %#v formatting.
func (h Hash) GoString() string {
	return fmt.Sprintf("merkle.Hash(%s)", h.Hex())
}

// FromHex parses a lowercase (or mixed-case) hex string into a Hash sized
// for d. It fails on a wrong-length string or non-hex characters.
func FromHex(d digest.Digest, s string) (Hash, error) {
	if len(s) != 2*d.Size() {
		return Hash{}, ErrInvalidHash
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, ErrInvalidHash
	}
	return NewHash(d, b)
}

// MarshalText implements encoding.TextMarshaler, rendering the hash as
// lowercase hex. Used by JSON and YAML serde of structures embedding Hash.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler against the default
// (SHA-256) digest. Structures that use a non-default digest should parse
// with FromHex directly instead of relying on this method.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := FromHex(digest.Default, string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
