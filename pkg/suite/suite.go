// Copyright 2025 Certen Protocol
//
// Suite is the Ed25519MerkleSignature2021 signature suite: it composes an
// Ed25519 signature over a canonicalized message with a Merkle inclusion
// proof that binds the signer's public key to a published root. A Suite
// value is constructed into exactly one role — signer or verifier — and
// stays there; the wrong operation on the wrong role returns
// ErrInvalidState instead of panicking, mirroring the donor strategy's
// initialized-flag check rather than Go's type system, since both roles
// share one wire-level suite name.

package suite

import (
	"bytes"
	"crypto/ed25519"
	"time"

	"github.com/certenio/merkle-signature-suite/pkg/codec"
	"github.com/certenio/merkle-signature-suite/pkg/digest"
	"github.com/certenio/merkle-signature-suite/pkg/logging"
	"github.com/certenio/merkle-signature-suite/pkg/merkle"
)

// SuiteName is the literal identifier this suite announces itself as in
// DID document verification method entries.
const SuiteName = "Ed25519MerkleSignature2021"

type role int

const (
	roleSigner role = iota + 1
	roleVerifier
)

// Suite holds either signer state (a tree reference and leaf index) or
// verifier state (an Ed25519 public key), never both.
type Suite struct {
	role role

	tree  *merkle.MTree
	index int

	publicKey ed25519.PublicKey

	base   Ed25519Jcs2020
	logger *logging.Logger
}

// WithLogger attaches a logger that records Sign/Verify outcomes. Only the
// leaf index, timing, and success/failure kind are logged; message bytes
// and key material never are.
func (s *Suite) WithLogger(logger *logging.Logger) *Suite {
	s.logger = logger
	return s
}

// NewSigner constructs signer state: a borrowed tree reference and the
// leaf index this signer proves inclusion for. The tree is not copied;
// its lifetime must outlive the Suite.
func NewSigner(tree *merkle.MTree, index int) *Suite {
	return &Suite{role: roleSigner, tree: tree, index: index}
}

// NewVerifier constructs verifier state around an Ed25519 public key that
// the suite will authenticate inner signatures against.
func NewVerifier(publicKey ed25519.PublicKey) *Suite {
	return &Suite{role: roleVerifier, publicKey: publicKey}
}

// Name returns the suite's wire identifier.
func (s *Suite) Name() string { return SuiteName }

// Sign extracts the signer's inclusion proof, base58-BTC encodes it, signs
// the canonicalized message with secretKey via the Ed25519-JCS-2020 base
// suite, and returns "proofToken.signatureToken". Only valid on signer
// state.
func (s *Suite) Sign(message []byte, secretKey ed25519.PrivateKey) (string, error) {
	if s.role != roleSigner {
		return "", ErrInvalidState
	}
	start := time.Now()

	proof, err := s.tree.Proof(s.index)
	if err != nil {
		s.logSign(false, start)
		return "", err
	}

	proofBytes := proof.Encode(s.tree.Digest())
	proofToken := codec.EncodeBase58BTC(proofBytes)

	sigToken, err := s.base.Sign(message, secretKey)
	if err != nil {
		s.logSign(false, start)
		return "", err
	}

	s.logSign(true, start)
	return proofToken + "." + sigToken, nil
}

func (s *Suite) logSign(success bool, start time.Time) {
	if s.logger == nil {
		return
	}
	s.logger.LogSignOperation(s.index, success, time.Since(start))
}

func (s *Suite) logVerify(success bool, failureKind string, start time.Time) {
	if s.logger == nil {
		return
	}
	s.logger.LogVerifyOperation(success, failureKind, time.Since(start))
}

// Verify splits signatureString into its proof and inner-signature
// tokens, checks the proof against rootBytes (the published Merkle root,
// NOT an Ed25519 key, despite this parameter's conventional name in the
// wider signature-suite interface), and delegates the inner Ed25519 check
// to the base suite against the verifier's own public key. Only valid on
// verifier state.
func (s *Suite) Verify(message []byte, signatureString string, rootBytes []byte) error {
	if s.role != roleVerifier {
		return ErrInvalidState
	}
	start := time.Now()

	dot := bytes.IndexByte([]byte(signatureString), '.')
	if dot < 0 {
		s.logVerify(false, "InvalidSignatureFormat", start)
		return ErrInvalidSignatureFormat
	}
	proofToken, sigToken := signatureString[:dot], signatureString[dot+1:]

	proofBytes, err := codec.DecodeBase58BTC(proofToken)
	if err != nil {
		s.logVerify(false, "InvalidProof", start)
		return ErrInvalidProof
	}

	d := digest.Default
	proof, err := merkle.DecodeProof(d, proofBytes)
	if err != nil {
		s.logVerify(false, "InvalidProof", start)
		return ErrInvalidProof
	}

	if len(rootBytes) != d.Size() {
		s.logVerify(false, "InvalidRoot", start)
		return ErrInvalidRoot
	}
	root, err := merkle.NewHash(d, rootBytes)
	if err != nil {
		s.logVerify(false, "InvalidRoot", start)
		return ErrInvalidRoot
	}

	targetLeaf, err := merkle.NewHash(d, digest.HashLeaf(d, s.publicKey))
	if err != nil {
		s.logVerify(false, "InvalidProof", start)
		return ErrInvalidProof
	}

	if !proof.Verify(d, root, targetLeaf) {
		s.logVerify(false, "InvalidProof", start)
		return ErrInvalidProof
	}

	if err := s.base.Verify(message, sigToken, s.publicKey); err != nil {
		s.logVerify(false, "InnerSignatureFailed", start)
		return err
	}
	s.logVerify(true, "", start)
	return nil
}
