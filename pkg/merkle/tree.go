// Copyright 2025 Certen Protocol
//
// MTree is a static, perfect binary Merkle tree over a power-of-two leaf
// sequence, stored as a single contiguous array of 2N-1 hashes with the
// root at index 0.
//
// Unlike the batching tree this package is adapted from, MTree is built
// once from a complete leaf set and never mutated afterwards. That
// immutability is why there is no mutex here: many signer instances can
// share one *MTree for read-only proof extraction without synchronization.

package merkle

import (
	"math/bits"

	"github.com/certenio/merkle-signature-suite/pkg/digest"
)

// MTree is a perfect binary tree over 2^h leaves (h >= 0), laid out as a
// contiguous array: index i's children are at 2i+1 and 2i+2, the root
// occupies index 0, and the leaf level occupies the final N slots.
type MTree struct {
	d     digest.Digest
	nodes []Hash // length 2N-1
}

// FromLeaves builds a tree from already-hashed leaves. The caller is
// responsible for having hashed leaf data with digest.HashLeaf beforehand;
// FromLeaves does not re-hash. It fails with ErrInvalidLeaves unless
// len(leaves) is a non-zero power of two.
func FromLeaves(d digest.Digest, leaves []Hash) (*MTree, error) {
	n := len(leaves)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrInvalidLeaves
	}

	total := 2*n - 1
	nodes := make([]Hash, total)
	copy(nodes[total-n:], leaves)

	for i := total - n - 1; i >= 0; i-- {
		nodes[i] = mustHash(digest.HashBranch(d, nodes[2*i+1].Bytes(), nodes[2*i+2].Bytes()))
	}

	return &MTree{d: d, nodes: nodes}, nil
}

// Root returns the tree's root hash, node[0].
func (t *MTree) Root() Hash { return t.nodes[0] }

// Leaves returns the number of leaves in the tree.
func (t *MTree) Leaves() int { return (len(t.nodes) + 1) / 2 }

// Height returns log2(Leaves()): the number of nodes in every inclusion
// proof extracted from this tree.
func (t *MTree) Height() int {
	return bits.Len(uint(t.Leaves())) - 1
}

// Layer returns the slice of hashes at level k ([2^k-1, 2^(k+1)-1)), or an
// empty slice if that range falls outside the tree. Useful for debugging
// and for a signer that wants to publish intermediate layers out-of-band.
func (t *MTree) Layer(k int) []Hash {
	lo := (1 << uint(k)) - 1
	hi := (1 << uint(k+1)) - 1
	if k < 0 || lo >= len(t.nodes) {
		return nil
	}
	if hi > len(t.nodes) {
		hi = len(t.nodes)
	}
	return t.nodes[lo:hi]
}

// Data returns the leaf layer.
func (t *MTree) Data() []Hash {
	n := t.Leaves()
	return t.nodes[len(t.nodes)-n:]
}

// Digest returns the digest this tree was built with.
func (t *MTree) Digest() digest.Digest { return t.d }

// Proof extracts the inclusion proof for the leaf at localIndex, walking
// from the leaf up to the root. The resulting sequence is already in
// leaf-to-root order and has exactly Height() nodes.
func (t *MTree) Proof(localIndex int) (Proof, error) {
	n := t.Leaves()
	if localIndex < 0 || localIndex >= n {
		return Proof{}, ErrInvalidNode
	}

	height := t.Height()
	nodes := make([]Node, 0, height)

	i := (n - 1) + localIndex
	for i > 0 {
		if i%2 == 0 {
			nodes = append(nodes, NewLeftNode(t.nodes[i-1]))
		} else {
			nodes = append(nodes, NewRightNode(t.nodes[i+1]))
		}
		i = (i - 1) / 2
	}

	return Proof{nodes: nodes}, nil
}
