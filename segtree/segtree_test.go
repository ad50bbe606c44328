package segtree

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumTreeBasic(t *testing.T) {
	tr := NewSumFrom([]int64{1, 2, 3, 4, 5})

	assert.Equal(t, int64(15), tr.SumRange(0, 4))
	assert.Equal(t, int64(9), tr.SumRange(1, 3))

	tr.AddRange(0, 2, 10)
	assert.Equal(t, int64(45), tr.SumRange(0, 4))
	assert.Equal(t, int64(13), tr.SumRange(2, 2))
}

func TestSumTreeEmptyRange(t *testing.T) {
	tr := NewSum(3)
	assert.Equal(t, int64(0), tr.SumRange(2, 1))

	empty := NewSum(0)
	assert.Equal(t, int64(0), empty.SumRange(0, 0))
	empty.AddRange(0, 0, 5) // must not panic
}

func TestMinTreeBasic(t *testing.T) {
	tr := NewMinFrom([]int64{4, 2, 7, 1, 9})

	assert.Equal(t, int64(1), tr.MinRange(0, 4))
	assert.Equal(t, int64(2), tr.MinRange(0, 2))

	tr.AddRange(3, 3, 100)
	assert.Equal(t, int64(2), tr.MinRange(0, 4))
	assert.Equal(t, int64(101), tr.MinRange(3, 3))
}

func TestMinTreeEmptyRange(t *testing.T) {
	tr := NewMin(3)
	assert.Equal(t, int64(math.MaxInt64), tr.MinRange(1, 0))
}

func TestRandomAgainstNaive(t *testing.T) {
	const n, rounds = 64, 2000
	rng := rand.New(rand.NewPCG(1, 2))

	sum := NewSum(n)
	mn := NewMin(n)
	model := make([]int64, n)

	for round := 0; round < rounds; round++ {
		l := rng.IntN(n)
		r := l + rng.IntN(n-l)
		if rng.IntN(2) == 0 {
			delta := int64(rng.IntN(2001) - 1000)
			sum.AddRange(l, r, delta)
			mn.AddRange(l, r, delta)
			for i := l; i <= r; i++ {
				model[i] += delta
			}
			continue
		}
		var wantSum int64
		wantMin := int64(math.MaxInt64)
		for i := l; i <= r; i++ {
			wantSum += model[i]
			wantMin = min(wantMin, model[i])
		}
		assert.Equal(t, wantSum, sum.SumRange(l, r), "sum [%d,%d] round %d", l, r, round)
		assert.Equal(t, wantMin, mn.MinRange(l, r), "min [%d,%d] round %d", l, r, round)
	}
}
