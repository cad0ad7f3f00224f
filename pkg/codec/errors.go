// Copyright 2025 Certen Protocol

package codec

import "errors"

// ErrEncoding covers any malformed textual encoding handed to a decode
// function: a bad multibase prefix, invalid base58 alphabet characters, or
// a non-hex string.
var ErrEncoding = errors.New("codec: malformed encoding")
