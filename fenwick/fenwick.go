// Package fenwick implements Fenwick (binary indexed) trees for prefix-sum
// queries and point updates in O(log n).
package fenwick

import (
	"golang.org/x/exp/constraints"

	"github.com/contestkit/contestkit/internal/utils"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Tree supports Add (point update) and PrefixSum / RangeSum queries.
// The public API is 0-indexed.
type Tree[T Number] struct {
	data []T
}

func New[T Number](n int) *Tree[T] {
	return &Tree[T]{data: make([]T, n)}
}

// NewFrom builds the tree from xs in O(n).
func NewFrom[T Number](xs []T) *Tree[T] {
	t := New[T](len(xs))
	copy(t.data, xs)
	for i := range t.data {
		if after := i | (i + 1); after < len(t.data) {
			t.data[after] += t.data[i]
		}
	}
	return t
}

func (t *Tree[T]) Len() int {
	return len(t.data)
}

// Add adds delta to the element at index i.
func (t *Tree[T]) Add(i int, delta T) {
	for ; i < len(t.data); i = i | (i + 1) {
		t.data[i] += delta
	}
}

// PrefixSum returns the sum of elements at indices [0, i].
// A negative i yields the zero value.
func (t *Tree[T]) PrefixSum(i int) T {
	var sum T
	if i >= len(t.data) {
		i = len(t.data) - 1
	}
	for ; i >= 0; i = i&(i+1) - 1 {
		sum += t.data[i]
	}
	return sum
}

// RangeSum returns the sum of elements at indices [l, r], or zero when l > r.
func (t *Tree[T]) RangeSum(l, r int) T {
	if l > r {
		var zero T
		return zero
	}
	return t.PrefixSum(r) - t.PrefixSum(l-1)
}

// At returns the element at index i.
func (t *Tree[T]) At(i int) T {
	return t.RangeSum(i, i)
}

// LowerBound returns the smallest index i with PrefixSum(i) >= target, or
// Len() when no prefix reaches target. Elements must be non-negative so
// that prefix sums are non-decreasing.
func (t *Tree[T]) LowerBound(target T) int {
	return utils.LowerBoundFunc(t.PrefixSum, t.Len(), target)
}

// Dump returns the raw internal array; the result aliases the tree state and
// is meant for snapshotting.
func (t *Tree[T]) Dump() []T {
	return t.data
}

// LoadRaw replaces the internal array with data (as produced by Dump).
func (t *Tree[T]) LoadRaw(data []T) {
	t.data = data
}

// RangeTree supports range updates and point queries, built from a plain
// Tree over deltas.
type RangeTree[T Number] struct {
	t Tree[T]
}

func NewRange[T Number](n int) *RangeTree[T] {
	return &RangeTree[T]{t: Tree[T]{data: make([]T, n)}}
}

func (r *RangeTree[T]) Len() int {
	return r.t.Len()
}

// AddRange adds delta to every element at indices [l, r].
func (r *RangeTree[T]) AddRange(l, h int, delta T) {
	if l > h {
		return
	}
	r.t.Add(l, delta)
	if h+1 < r.t.Len() {
		r.t.Add(h+1, -delta)
	}
}

// At returns the element at index i.
func (r *RangeTree[T]) At(i int) T {
	return r.t.PrefixSum(i)
}
