// Copyright 2025 Certen Protocol
//
// Domain-separated leaf and branch hashing.
//
// Second-preimage resistance requires that a leaf hash can never be
// mistaken for an internal branch hash. Both prefixes below are part of
// the wire contract: changing them breaks interoperability with any other
// implementation of this suite.

package digest

const (
	// LeafPrefix is prepended before hashing leaf data: H_leaf(x) = D(0x00 || x).
	LeafPrefix byte = 0x00

	// BranchPrefix is prepended before hashing two child hashes: H_branch(l, r) = D(0x01 || l || r).
	BranchPrefix byte = 0x01
)

// HashLeaf computes H_leaf(data) = D(0x00 || data) using a fresh digest state.
func HashLeaf(d Digest, data []byte) []byte {
	h := d.New()
	h.Write([]byte{LeafPrefix})
	h.Write(data)
	return h.Sum(nil)
}

// HashBranch computes H_branch(l, r) = D(0x01 || l || r) using a fresh digest state.
func HashBranch(d Digest, left, right []byte) []byte {
	h := d.New()
	h.Write([]byte{BranchPrefix})
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}
