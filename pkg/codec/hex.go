// Copyright 2025 Certen Protocol
//
// Deterministic lowercase hex codec for debug/serde representations of
// fixed-size byte values.

package codec

import "encoding/hex"

// EncodeHex renders b as lowercase hex.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex parses a hex string, rejecting odd length or non-hex runes.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrEncoding
	}
	return b, nil
}
