// Package treap implements an order-statistic treap: a randomized balanced
// BST over int64 keys supporting rank and k-th element queries. Duplicate
// keys are kept with a count.
package treap

import "math/rand/v2"

type node struct {
	key         int64
	prio        uint64
	count       int // multiplicity of key
	size        int // total keys in subtree, counting multiplicity
	left, right *node
}

func (n *node) sz() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node) pull() {
	n.size = n.count + n.left.sz() + n.right.sz()
}

// Tree is an ordered multiset of int64 keys.
type Tree struct {
	root *node
	rng  *rand.Rand
}

func New() *Tree {
	return &Tree{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded builds a tree with a deterministic priority stream, for tests.
func NewSeeded(seed uint64) *Tree {
	return &Tree{rng: rand.New(rand.NewPCG(seed, seed<<1|1))}
}

func (t *Tree) Len() int {
	return t.root.sz()
}

// split partitions by key: left holds keys < key, right holds keys >= key.
func split(n *node, key int64) (left, right *node) {
	if n == nil {
		return nil, nil
	}
	if n.key < key {
		l, r := split(n.right, key)
		n.right = l
		n.pull()
		return n, r
	}
	l, r := split(n.left, key)
	n.left = r
	n.pull()
	return l, n
}

// merge joins two treaps; every key in l must be <= every key in r.
func merge(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.prio > r.prio {
		l.right = merge(l.right, r)
		l.pull()
		return l
	}
	r.left = merge(l, r.left)
	r.pull()
	return r
}

func (t *Tree) find(key int64) *node {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert adds one occurrence of key.
func (t *Tree) Insert(key int64) {
	if n := t.find(key); n != nil {
		// bump multiplicity along the search path
		for x := t.root; x != nil; {
			x.size++
			switch {
			case key < x.key:
				x = x.left
			case key > x.key:
				x = x.right
			default:
				x.count++
				return
			}
		}
	}
	nn := &node{key: key, prio: t.rng.Uint64(), count: 1, size: 1}
	l, r := split(t.root, key)
	t.root = merge(merge(l, nn), r)
}

// Delete removes one occurrence of key and reports whether it was present.
func (t *Tree) Delete(key int64) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	if n.count > 1 {
		for x := t.root; x != nil; {
			x.size--
			switch {
			case key < x.key:
				x = x.left
			case key > x.key:
				x = x.right
			default:
				x.count--
				return true
			}
		}
	}
	l, r := split(t.root, key)
	mid, r := split(r, key+1)
	_ = mid // exactly the nodes with this key (one node, count 1)
	t.root = merge(l, r)
	return true
}

func (t *Tree) Contains(key int64) bool {
	return t.find(key) != nil
}

// Rank returns the number of keys strictly less than key.
func (t *Tree) Rank(key int64) int {
	rank := 0
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			rank += n.left.sz() + n.count
			n = n.right
		default:
			return rank + n.left.sz()
		}
	}
	return rank
}

// Kth returns the k-th smallest key (0-indexed, counting multiplicity).
// ok is false when k is out of range.
func (t *Tree) Kth(k int) (key int64, ok bool) {
	if k < 0 || k >= t.Len() {
		return 0, false
	}
	n := t.root
	for {
		ls := n.left.sz()
		switch {
		case k < ls:
			n = n.left
		case k < ls+n.count:
			return n.key, true
		default:
			k -= ls + n.count
			n = n.right
		}
	}
}
