// Package segtree implements lazy-propagation segment trees over int64 with
// range-add updates: SumTree answers range sums, MinTree answers range
// minima. Both are 0-indexed and take O(log n) per operation.
package segtree

import "math"

// SumTree supports AddRange and SumRange.
type SumTree struct {
	n    int
	node []int64
	lazy []int64
}

func NewSum(n int) *SumTree {
	return &SumTree{
		n:    n,
		node: make([]int64, 4*n),
		lazy: make([]int64, 4*n),
	}
}

// NewSumFrom builds the tree initialised with xs.
func NewSumFrom(xs []int64) *SumTree {
	t := NewSum(len(xs))
	if len(xs) > 0 {
		t.build(1, 0, t.n-1, xs)
	}
	return t
}

func (t *SumTree) build(v, lo, hi int, xs []int64) {
	if lo == hi {
		t.node[v] = xs[lo]
		return
	}
	mid := (lo + hi) / 2
	t.build(2*v, lo, mid, xs)
	t.build(2*v+1, mid+1, hi, xs)
	t.node[v] = t.node[2*v] + t.node[2*v+1]
}

func (t *SumTree) push(v, lo, hi int) {
	if t.lazy[v] == 0 {
		return
	}
	mid := (lo + hi) / 2
	t.apply(2*v, lo, mid, t.lazy[v])
	t.apply(2*v+1, mid+1, hi, t.lazy[v])
	t.lazy[v] = 0
}

func (t *SumTree) apply(v, lo, hi int, delta int64) {
	t.node[v] += delta * int64(hi-lo+1)
	t.lazy[v] += delta
}

// AddRange adds delta to every element at indices [l, r].
func (t *SumTree) AddRange(l, r int, delta int64) {
	if t.n == 0 || l > r {
		return
	}
	t.addRange(1, 0, t.n-1, l, r, delta)
}

func (t *SumTree) addRange(v, lo, hi, l, r int, delta int64) {
	if r < lo || hi < l {
		return
	}
	if l <= lo && hi <= r {
		t.apply(v, lo, hi, delta)
		return
	}
	t.push(v, lo, hi)
	mid := (lo + hi) / 2
	t.addRange(2*v, lo, mid, l, r, delta)
	t.addRange(2*v+1, mid+1, hi, l, r, delta)
	t.node[v] = t.node[2*v] + t.node[2*v+1]
}

// SumRange returns the sum of elements at indices [l, r], or 0 when the
// range is empty.
func (t *SumTree) SumRange(l, r int) int64 {
	if t.n == 0 || l > r {
		return 0
	}
	if l < 0 {
		l = 0
	}
	if r >= t.n {
		r = t.n - 1
	}
	return t.sumRange(1, 0, t.n-1, l, r)
}

func (t *SumTree) sumRange(v, lo, hi, l, r int) int64 {
	if r < lo || hi < l {
		return 0
	}
	if l <= lo && hi <= r {
		return t.node[v]
	}
	t.push(v, lo, hi)
	mid := (lo + hi) / 2
	return t.sumRange(2*v, lo, mid, l, r) + t.sumRange(2*v+1, mid+1, hi, l, r)
}

// MinTree supports AddRange and MinRange.
type MinTree struct {
	n    int
	node []int64
	lazy []int64
}

func NewMin(n int) *MinTree {
	return &MinTree{
		n:    n,
		node: make([]int64, 4*n),
		lazy: make([]int64, 4*n),
	}
}

func NewMinFrom(xs []int64) *MinTree {
	t := NewMin(len(xs))
	if len(xs) > 0 {
		t.build(1, 0, t.n-1, xs)
	}
	return t
}

func (t *MinTree) build(v, lo, hi int, xs []int64) {
	if lo == hi {
		t.node[v] = xs[lo]
		return
	}
	mid := (lo + hi) / 2
	t.build(2*v, lo, mid, xs)
	t.build(2*v+1, mid+1, hi, xs)
	t.node[v] = min(t.node[2*v], t.node[2*v+1])
}

func (t *MinTree) push(v int) {
	if t.lazy[v] == 0 {
		return
	}
	for _, c := range [2]int{2 * v, 2*v + 1} {
		t.node[c] += t.lazy[v]
		t.lazy[c] += t.lazy[v]
	}
	t.lazy[v] = 0
}

// AddRange adds delta to every element at indices [l, r].
func (t *MinTree) AddRange(l, r int, delta int64) {
	if t.n == 0 || l > r {
		return
	}
	t.addRange(1, 0, t.n-1, l, r, delta)
}

func (t *MinTree) addRange(v, lo, hi, l, r int, delta int64) {
	if r < lo || hi < l {
		return
	}
	if l <= lo && hi <= r {
		t.node[v] += delta
		t.lazy[v] += delta
		return
	}
	t.push(v)
	mid := (lo + hi) / 2
	t.addRange(2*v, lo, mid, l, r, delta)
	t.addRange(2*v+1, mid+1, hi, l, r, delta)
	t.node[v] = min(t.node[2*v], t.node[2*v+1])
}

// MinRange returns the minimum of elements at indices [l, r], or
// math.MaxInt64 when the range is empty.
func (t *MinTree) MinRange(l, r int) int64 {
	if t.n == 0 || l > r {
		return math.MaxInt64
	}
	if l < 0 {
		l = 0
	}
	if r >= t.n {
		r = t.n - 1
	}
	return t.minRange(1, 0, t.n-1, l, r)
}

func (t *MinTree) minRange(v, lo, hi, l, r int) int64 {
	if r < lo || hi < l {
		return math.MaxInt64
	}
	if l <= lo && hi <= r {
		return t.node[v]
	}
	t.push(v)
	mid := (lo + hi) / 2
	return min(t.minRange(2*v, lo, mid, l, r), t.minRange(2*v+1, mid+1, hi, l, r))
}
