// Copyright 2025 Certen Protocol
//
// Ed25519Jcs2020 is the base suite Ed25519MerkleSignature2021 wraps: sign
// canonicalized JSON with Ed25519, encode the 64-byte signature as
// base58-BTC. Ed25519MerkleSignature2021 only adds the Merkle inclusion
// proof layer on top of this.

package suite

import (
	"crypto/ed25519"

	"github.com/certenio/merkle-signature-suite/pkg/canon"
	"github.com/certenio/merkle-signature-suite/pkg/codec"
)

// Ed25519Jcs2020 signs and verifies canonicalized JSON messages with a
// plain Ed25519 key pair.
type Ed25519Jcs2020 struct{}

// Sign canonicalizes message and signs it with secretKey, returning the
// signature base58-BTC encoded.
func (Ed25519Jcs2020) Sign(message []byte, secretKey ed25519.PrivateKey) (string, error) {
	canonical, err := canon.Canonicalize(message)
	if err != nil {
		return "", err
	}
	sig := ed25519.Sign(secretKey, canonical)
	return codec.EncodeBase58BTC(sig), nil
}

// Verify canonicalizes message and checks the base58-BTC-encoded
// signature token against publicKey.
func (Ed25519Jcs2020) Verify(message []byte, token string, publicKey ed25519.PublicKey) error {
	canonical, err := canon.Canonicalize(message)
	if err != nil {
		return err
	}
	sig, err := codec.DecodeBase58BTC(token)
	if err != nil {
		return ErrEncoding
	}
	if len(sig) != ed25519.SignatureSize {
		return ErrInnerSignatureFailed
	}
	if !ed25519.Verify(publicKey, canonical, sig) {
		return ErrInnerSignatureFailed
	}
	return nil
}
