// Package strhash implements polynomial rolling hashes over the Goldilocks
// field (p = 2^64 - 2^32 + 1). Substring hashes are O(1) after linear
// preprocessing; two equal substrings always hash equal, and distinct
// substrings collide with probability about len(s)/p for a random base.
package strhash

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Digest is a substring hash value.
type Digest struct {
	v goldilocks.Element
}

func (d Digest) Equal(other Digest) bool {
	return d.v.Equal(&other.v)
}

// Uint64 returns the canonical representative of the digest.
func (d Digest) Uint64() uint64 {
	return d.v.Bits()[0]
}

// Hasher precomputes prefix hashes and base powers for one string.
type Hasher struct {
	base   goldilocks.Element
	prefix []goldilocks.Element // prefix[i] = hash of s[:i]
	pow    []goldilocks.Element
}

// New builds a hasher with a random base. Hashes from hashers with
// different bases are not comparable.
func New(s string) (*Hasher, error) {
	var base goldilocks.Element
	if _, err := base.SetRandom(); err != nil {
		return nil, err
	}
	return NewWithBase(s, base.Bits()[0]), nil
}

// NewWithBase builds a hasher with a fixed base, for tests and for hashing
// several strings comparably.
func NewWithBase(s string, base uint64) *Hasher {
	h := &Hasher{
		prefix: make([]goldilocks.Element, len(s)+1),
		pow:    make([]goldilocks.Element, len(s)+1),
	}
	h.base.SetUint64(base)
	h.pow[0].SetOne()

	var c goldilocks.Element
	for i := 0; i < len(s); i++ {
		// prefix[i+1] = prefix[i]*base + s[i] + 1 (offset keeps "a" != "aa")
		c.SetUint64(uint64(s[i]) + 1)
		h.prefix[i+1].Mul(&h.prefix[i], &h.base).Add(&h.prefix[i+1], &c)
		h.pow[i+1].Mul(&h.pow[i], &h.base)
	}
	return h
}

func (h *Hasher) Len() int {
	return len(h.prefix) - 1
}

// Base returns the base in canonical form.
func (h *Hasher) Base() uint64 {
	return h.base.Bits()[0]
}

// Hash returns the digest of the substring s[l : r+1] (inclusive bounds).
// An empty range yields the zero digest.
func (h *Hasher) Hash(l, r int) Digest {
	if l > r {
		return Digest{}
	}
	// hash = prefix[r+1] - prefix[l] * base^(r-l+1)
	var t goldilocks.Element
	t.Mul(&h.prefix[l], &h.pow[r-l+1])
	var d Digest
	d.v.Sub(&h.prefix[r+1], &t)
	return d
}

// Concat returns the digest of the concatenation of two substrings given
// their digests and the length of the second.
func (h *Hasher) Concat(a Digest, b Digest, bLen int) Digest {
	var d Digest
	d.v.Mul(&a.v, &h.pow[bLen]).Add(&d.v, &b.v)
	return d
}
