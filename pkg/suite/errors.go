// Copyright 2025 Certen Protocol

package suite

import "errors"

var (
	// ErrInvalidState is returned when a signer-only operation is called on
	// verifier state, or vice versa.
	ErrInvalidState = errors.New("suite: operation not valid for this state")

	// ErrInvalidSignatureFormat is returned when a signature string has no
	// "." separator.
	ErrInvalidSignatureFormat = errors.New("suite: signature string missing separator")

	// ErrInvalidRoot is returned when the verifier's root argument is not
	// exactly the digest's output length.
	ErrInvalidRoot = errors.New("suite: root is not the expected digest length")

	// ErrInvalidProof is returned when the embedded Merkle proof fails to
	// decode or fails to verify against the supplied root.
	ErrInvalidProof = errors.New("suite: merkle proof invalid")

	// ErrEncoding is returned when the inner signature token fails to
	// decode from base58-BTC. A proof token that fails to decode yields
	// ErrInvalidProof instead.
	ErrEncoding = errors.New("suite: malformed signature token")

	// ErrInnerSignatureFailed is returned when the Ed25519 check over the
	// canonicalized message fails.
	ErrInnerSignatureFailed = errors.New("suite: inner ed25519 signature invalid")
)
