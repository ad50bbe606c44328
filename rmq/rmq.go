// Package rmq implements sparse-table range-minimum queries: O(n log n)
// preprocessing, O(1) queries, no updates.
package rmq

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Table answers Min queries over a fixed slice.
type Table[T constraints.Ordered] struct {
	// table[k][i] is the minimum over the 2^k elements starting at i
	table [][]T
}

func New[T constraints.Ordered](xs []T) *Table[T] {
	n := len(xs)
	levels := 1
	if n > 1 {
		levels = bits.Len(uint(n-1)) + 1
	}
	t := &Table[T]{table: make([][]T, levels)}
	t.table[0] = make([]T, n)
	copy(t.table[0], xs)

	for k := 1; k < levels; k++ {
		width := 1 << k
		if width > n {
			t.table = t.table[:k]
			break
		}
		prev := t.table[k-1]
		row := make([]T, n-width+1)
		for i := range row {
			row[i] = min(prev[i], prev[i+width/2])
		}
		t.table[k] = row
	}
	return t
}

func (t *Table[T]) Len() int {
	return len(t.table[0])
}

// Min returns the minimum of xs[l..r]; it panics when the range is empty or
// out of bounds, matching slice-indexing behavior.
func (t *Table[T]) Min(l, r int) T {
	if l > r {
		panic("rmq: empty range")
	}
	k := bits.Len(uint(r-l+1)) - 1
	return min(t.table[k][l], t.table[k][r-(1<<k)+1])
}
