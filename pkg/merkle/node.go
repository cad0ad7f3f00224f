// Copyright 2025 Certen Protocol
//
// Node is a tagged sibling hash on the path from a leaf to the tree root.
// The tag records which side of the parent the sibling sat on, which is
// exactly the information needed to recombine hashes in the right order
// during root recomputation.

package merkle

import "github.com/certenio/merkle-signature-suite/pkg/digest"

// tag identifies which side of the parent a sibling hash sat on. The two
// literal wire values below are mandatory: any other byte is invalid.
type tag byte

const (
	tagLeft  tag = 0x0F // sibling is to the left: H_branch(sibling, acc)
	tagRight tag = 0xF0 // sibling is to the right: H_branch(acc, sibling)
)

// Node is a single step of an inclusion proof: a sibling hash plus which
// side of the parent it occupies. Its tag never changes after
// construction — the exclusivity between left and right is a correctness
// property, not an incidental detail, so Node exposes no way to flip it.
type Node struct {
	t       tag
	sibling Hash
}

// NewLeftNode builds a Node whose sibling sits to the left of the
// accumulator: combine computes H_branch(sibling, acc).
func NewLeftNode(sibling Hash) Node {
	return Node{t: tagLeft, sibling: sibling}
}

// NewRightNode builds a Node whose sibling sits to the right of the
// accumulator: combine computes H_branch(acc, sibling).
func NewRightNode(sibling Hash) Node {
	return Node{t: tagRight, sibling: sibling}
}

// Sibling returns the stored sibling hash.
func (n Node) Sibling() Hash { return n.sibling }

// IsLeft reports whether the sibling sits to the left of the accumulator.
func (n Node) IsLeft() bool { return n.t == tagLeft }

// combine folds the running accumulator with this node's sibling,
// producing the next accumulator one level up the tree.
func (n Node) combine(d digest.Digest, acc Hash) Hash {
	if n.t == tagLeft {
		return mustHash(digest.HashBranch(d, n.sibling.Bytes(), acc.Bytes()))
	}
	return mustHash(digest.HashBranch(d, acc.Bytes(), n.sibling.Bytes()))
}

// encodedLen returns the wire length of this node: one tag byte plus the
// sibling hash.
func (n Node) encodedLen() int {
	return 1 + len(n.sibling.Bytes())
}

// appendTo writes this node's wire form (tag byte, then sibling bytes)
// onto buf.
func (n Node) appendTo(buf []byte) []byte {
	buf = append(buf, byte(n.t))
	buf = append(buf, n.sibling.Bytes()...)
	return buf
}

// decodeNode parses a single tagged node from b, which must be exactly
// 1+d.Size() bytes. It fails on any tag other than tagLeft/tagRight.
func decodeNode(d digest.Digest, b []byte) (Node, error) {
	if len(b) != 1+d.Size() {
		return Node{}, ErrInvalidProof
	}
	var t tag
	switch tag(b[0]) {
	case tagLeft:
		t = tagLeft
	case tagRight:
		t = tagRight
	default:
		return Node{}, ErrInvalidProof
	}
	h, err := NewHash(d, b[1:])
	if err != nil {
		return Node{}, ErrInvalidProof
	}
	return Node{t: t, sibling: h}, nil
}
