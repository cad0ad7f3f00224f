// Copyright 2025 Certen Protocol
//
// Base58-BTC codec for embedding binary proofs and signatures inside
// textual signature strings, wrapping the same mr-tron/base58 library the
// rest of this dependency graph already pulls in for multibase support.

package codec

import "github.com/mr-tron/base58"

// EncodeBase58BTC encodes b using the Bitcoin alphabet. Empty input
// produces the empty string.
func EncodeBase58BTC(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base58.Encode(b)
}

// DecodeBase58BTC decodes s from the Bitcoin alphabet. Empty input
// decodes to empty bytes rather than erroring, matching the multibase
// empty-input contract this package also implements.
func DecodeBase58BTC(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, ErrEncoding
	}
	return b, nil
}
