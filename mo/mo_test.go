package mo

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distinctCounter answers "how many distinct values in the window".
type distinctCounter struct {
	xs       []int
	freq     map[int]int
	distinct int
}

func newDistinctCounter(xs []int) *distinctCounter {
	return &distinctCounter{xs: xs, freq: make(map[int]int)}
}

func (d *distinctCounter) Add(i int) {
	d.freq[d.xs[i]]++
	if d.freq[d.xs[i]] == 1 {
		d.distinct++
	}
}

func (d *distinctCounter) Remove(i int) {
	d.freq[d.xs[i]]--
	if d.freq[d.xs[i]] == 0 {
		d.distinct--
	}
}

func (d *distinctCounter) Answer() int {
	return d.distinct
}

func naiveDistinct(xs []int, q Query) int {
	seen := make(map[int]bool)
	for i := q.L; i <= q.R && i < len(xs); i++ {
		seen[xs[i]] = true
	}
	return len(seen)
}

func TestNoQueries(t *testing.T) {
	assert.Nil(t, Run(10, nil, newDistinctCounter(nil)))
}

func TestSmall(t *testing.T) {
	xs := []int{1, 2, 1, 3, 2, 2, 1}
	queries := []Query{{0, 6}, {2, 4}, {3, 3}, {5, 2}, {0, 0}}

	got := Run(len(xs), queries, newDistinctCounter(xs))
	want := []int{3, 3, 1, 0, 1}
	assert.Equal(t, want, got)
}

func TestAnswersInInputOrder(t *testing.T) {
	const n, q = 200, 300
	rng := rand.New(rand.NewPCG(21, 34))

	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.IntN(20)
	}
	queries := make([]Query, q)
	for i := range queries {
		l, r := rng.IntN(n), rng.IntN(n)
		if l > r && rng.IntN(4) != 0 { // keep a few empty ranges
			l, r = r, l
		}
		queries[i] = Query{l, r}
	}

	got := Run(n, queries, newDistinctCounter(xs))
	require.Len(t, got, q)
	for i, query := range queries {
		want := naiveDistinct(xs, query)
		if query.L > query.R {
			want = 0
		}
		assert.Equal(t, want, got[i], "query %d = %+v", i, query)
	}
}
