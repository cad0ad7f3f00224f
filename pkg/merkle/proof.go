// Copyright 2025 Certen Protocol
//
// Proof is an ordered, leaf-to-root sequence of sibling nodes, plus the
// bit-exact wire codec used to embed proofs inside signature strings.
//
// Wire format (big-endian):
//
//	offset 0:  u16 hash_len   (= digest size)
//	offset 2:  u16 path_len   (= number of nodes)
//	offset 4:  path_len * (u8 tag || hash_len bytes)
//
// Total length is exactly 4 + path_len*(1+hash_len). This layout is part
// of the cross-language wire contract and must not change.

package merkle

import (
	"encoding/binary"

	"github.com/certenio/merkle-signature-suite/pkg/digest"
)

// Proof is a finite, ordered sequence of Nodes read leaf-to-root. Its
// length always equals the tree height at the moment the proof was
// extracted.
type Proof struct {
	nodes []Node
}

// Len returns the number of nodes in the proof.
func (p Proof) Len() int { return len(p.nodes) }

// Nodes returns the proof's nodes in leaf-to-root order. Callers must not
// mutate the returned slice.
func (p Proof) Nodes() []Node { return p.nodes }

// RecomputeRoot folds the node sequence from first to last starting at
// leafHash, returning the candidate root. The fold order is leaf-to-root
// and is part of the contract: a proof built for one tree layout cannot
// be reordered and still verify.
func (p Proof) RecomputeRoot(d digest.Digest, leafHash Hash) Hash {
	acc := leafHash
	for _, n := range p.nodes {
		acc = n.combine(d, acc)
	}
	return acc
}

// Verify recomputes the candidate root from leafHash and compares it
// against rootExpected in constant time. There is no early exit on the
// first mismatched byte: constant-time comparison is mandatory so that
// adversarial proof shapes cannot leak information through timing.
func (p Proof) Verify(d digest.Digest, rootExpected Hash, leafHash Hash) bool {
	candidate := p.RecomputeRoot(d, leafHash)
	return candidate.ConstantEqual(rootExpected)
}

// Encode serializes the proof to its bit-exact wire form.
func (p Proof) Encode(d digest.Digest) []byte {
	hashLen := d.Size()
	pathLen := len(p.nodes)

	out := make([]byte, 4, 4+pathLen*(1+hashLen))
	binary.BigEndian.PutUint16(out[0:2], uint16(hashLen))
	binary.BigEndian.PutUint16(out[2:4], uint16(pathLen))
	for _, n := range p.nodes {
		out = n.appendTo(out)
	}
	return out
}

// DecodeProof parses the bit-exact wire form produced by Encode. It fails
// on: input shorter than the 4-byte header, a hash_len in the header that
// disagrees with d's size, a declared payload longer than the remaining
// input, an unknown tag byte, or any trailing bytes beyond the declared
// length (proofs must not be paddable).
func DecodeProof(d digest.Digest, b []byte) (Proof, error) {
	if len(b) < 4 {
		return Proof{}, ErrInvalidProof
	}
	hashLen := int(binary.BigEndian.Uint16(b[0:2]))
	pathLen := int(binary.BigEndian.Uint16(b[2:4]))

	if hashLen != d.Size() {
		return Proof{}, ErrInvalidProof
	}

	nodeLen := 1 + hashLen
	wantLen := 4 + pathLen*nodeLen
	if len(b) != wantLen {
		return Proof{}, ErrInvalidProof
	}

	nodes := make([]Node, pathLen)
	off := 4
	for i := 0; i < pathLen; i++ {
		n, err := decodeNode(d, b[off:off+nodeLen])
		if err != nil {
			return Proof{}, err
		}
		nodes[i] = n
		off += nodeLen
	}

	return Proof{nodes: nodes}, nil
}
