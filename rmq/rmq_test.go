package rmq

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSmall(t *testing.T) {
	tab := New([]int{3, 1, 4, 1, 5, 9, 2, 6})

	assert.Equal(t, 1, tab.Min(0, 7))
	assert.Equal(t, 3, tab.Min(0, 0))
	assert.Equal(t, 2, tab.Min(4, 6))
	assert.Equal(t, 9, tab.Min(5, 5))
	assert.Equal(t, 8, tab.Len())
}

func TestStrings(t *testing.T) {
	tab := New([]string{"pear", "apple", "zeta", "mango"})
	assert.Equal(t, "apple", tab.Min(0, 3))
	assert.Equal(t, "mango", tab.Min(2, 3))
}

func TestEmptyRangePanics(t *testing.T) {
	tab := New([]int{1, 2, 3})
	assert.Panics(t, func() { tab.Min(2, 1) })
}

func TestMatchesNaiveScan(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("table minimum equals scan minimum on all ranges", prop.ForAll(
		func(xs []int64) bool {
			if len(xs) == 0 {
				return true
			}
			tab := New(xs)
			for l := range xs {
				m := xs[l]
				for r := l; r < len(xs); r++ {
					m = min(m, xs[r])
					if tab.Min(l, r) != m {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(-1000, 1000)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
