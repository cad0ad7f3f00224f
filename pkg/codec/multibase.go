// Copyright 2025 Certen Protocol
//
// Multibase envelope over 22 named bases, wrapping
// github.com/multiformats/go-multibase (which pulls in go-base32/go-base36
// indirectly). The
// default base when none is specified is Base58-BTC, matching the
// signature-suite's own token encoding.

package codec

import "github.com/multiformats/go-multibase"

// Base names one of the multibase-registered encodings.
type Base = multibase.Encoding

// The 22 named bases this codec supports, mirroring the multibase table.
const (
	Base2             Base = multibase.Base2
	Base8             Base = multibase.Base8
	Base10            Base = multibase.Base10
	Base16            Base = multibase.Base16
	Base16Upper       Base = multibase.Base16Upper
	Base32            Base = multibase.Base32
	Base32Upper       Base = multibase.Base32Upper
	Base32Pad         Base = multibase.Base32pad
	Base32PadUpper    Base = multibase.Base32padUpper
	Base32Hex         Base = multibase.Base32hex
	Base32HexUpper    Base = multibase.Base32hexUpper
	Base32HexPad      Base = multibase.Base32hexPad
	Base32HexPadUpper Base = multibase.Base32hexPadUpper
	Base32Z           Base = multibase.Base32z
	Base36            Base = multibase.Base36
	Base36Upper       Base = multibase.Base36Upper
	Base58Flickr      Base = multibase.Base58Flickr
	Base58BTC         Base = multibase.Base58BTC
	Base64            Base = multibase.Base64
	Base64Pad         Base = multibase.Base64pad
	Base64URL         Base = multibase.Base64url
	Base64URLPad      Base = multibase.Base64urlPad
)

// DefaultBase is used wherever a caller omits an explicit base.
const DefaultBase Base = Base58BTC

// EncodeMultibase prefixes data's encoding under base with the base's
// one-character indicator. Empty input encodes to the indicator alone
// followed by nothing, which decodes back to empty bytes.
func EncodeMultibase(base Base, data []byte) (string, error) {
	s, err := multibase.Encode(base, data)
	if err != nil {
		return "", ErrEncoding
	}
	return s, nil
}

// DecodeMultibase infers the base from s's leading indicator character
// and decodes the remainder. Empty input decodes to empty bytes.
func DecodeMultibase(s string) (Base, []byte, error) {
	if s == "" {
		return DefaultBase, []byte{}, nil
	}
	if len(s) == 1 {
		if base := Base(s[0]); multibase.EncodingToStr[base] != "" {
			return base, []byte{}, nil
		}
	}
	base, data, err := multibase.Decode(s)
	if err != nil {
		return 0, nil, ErrEncoding
	}
	return base, data, nil
}
