// Package merkle computes Merkle roots over transaction lists.
//
// Leaves are the raw transaction strings. Each level pairs adjacent entries
// and hashes their concatenation, duplicating the last entry when the level
// has odd length. A single transaction hashes directly to the root. All
// intermediate values are lowercase hex digests, so inner nodes hash the
// concatenation of two hex strings rather than raw digest bytes.
package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// ErrNoTransactions is returned when the transaction list is empty.
var ErrNoTransactions = errors.New("merkle: no transactions")

// Tree computes roots with a fixed hash constructor.
type Tree struct {
	newHash func() hash.Hash
}

// New returns a Tree using SHA-256.
func New() *Tree {
	return &Tree{newHash: sha256.New}
}

// NewBlake2b returns a Tree using BLAKE2b-256.
func NewBlake2b() *Tree {
	return &Tree{newHash: func() hash.Hash {
		h, err := blake2b.New256(nil)
		if err != nil {
			panic(err) // only fails with a key, and we pass none
		}
		return h
	}}
}

// Root returns the hex-encoded Merkle root of txs.
func (t *Tree) Root(txs []string) (string, error) {
	if len(txs) == 0 {
		return "", ErrNoTransactions
	}
	if len(txs) == 1 {
		return t.digest(txs[0]), nil
	}

	level := make([]string, len(txs))
	copy(level, txs)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]string, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, t.digest(level[i]+level[i+1]))
		}
		level = next
	}
	return level[0], nil
}

// Proof returns the sibling values needed to recompute the root from the
// transaction at index i, bottom-up. Verify the proof with VerifyProof.
func (t *Tree) Proof(txs []string, i int) ([]string, error) {
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	if i < 0 || i >= len(txs) {
		return nil, errors.New("merkle: proof index out of range")
	}
	if len(txs) == 1 {
		return []string{}, nil
	}

	level := make([]string, len(txs))
	copy(level, txs)

	var proof []string
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		proof = append(proof, level[i^1])
		next := make([]string, 0, len(level)/2)
		for j := 0; j < len(level); j += 2 {
			next = append(next, t.digest(level[j]+level[j+1]))
		}
		level = next
		i /= 2
	}
	return proof, nil
}

// VerifyProof reports whether tx at index i, combined with the sibling
// values in proof, reproduces root.
func (t *Tree) VerifyProof(tx string, i int, proof []string, root string) bool {
	cur := tx
	if len(proof) == 0 {
		return t.digest(tx) == root
	}
	for _, sib := range proof {
		if i%2 == 0 {
			cur = t.digest(cur + sib)
		} else {
			cur = t.digest(sib + cur)
		}
		i /= 2
	}
	return cur == root
}

// Root is a convenience wrapper for New().Root.
func Root(txs []string) (string, error) {
	return New().Root(txs)
}

func (t *Tree) digest(s string) string {
	h := t.newHash()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
