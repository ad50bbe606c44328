package dsu

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSU(t *testing.T) {
	d := New(5)
	assert.Equal(t, 5, d.ComponentCount())

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(3, 4))
	assert.False(t, d.Union(1, 0))

	assert.True(t, d.Same(0, 1))
	assert.False(t, d.Same(0, 3))
	assert.Equal(t, 3, d.ComponentCount())

	assert.True(t, d.Union(1, 4))
	assert.True(t, d.Same(0, 3))
	assert.Equal(t, 2, d.ComponentCount())
}

func TestRollbackBasic(t *testing.T) {
	r := NewRollback(6)

	r.Union(0, 1)
	tok := r.Snapshot()

	r.Union(1, 2)
	r.Union(3, 4)
	r.Union(2, 0) // no-op union must roll back cleanly too
	require.True(t, r.Same(0, 2))
	require.True(t, r.Same(3, 4))

	r.Rollback(tok)
	assert.True(t, r.Same(0, 1))
	assert.False(t, r.Same(0, 2))
	assert.False(t, r.Same(3, 4))
	assert.Equal(t, 5, r.ComponentCount())

	r.Rollback(0)
	assert.False(t, r.Same(0, 1))
	assert.Equal(t, 6, r.ComponentCount())
}

func TestRollbackMatchesRebuild(t *testing.T) {
	const n = 32
	rng := rand.New(rand.NewPCG(3, 5))

	type edge struct{ u, v int }
	var history []edge

	r := NewRollback(n)
	tok := r.Snapshot()
	var prefix int // number of unions at tok

	for round := 0; round < 500; round++ {
		switch rng.IntN(3) {
		case 0:
			u, v := rng.IntN(n), rng.IntN(n)
			r.Union(u, v)
			history = append(history, edge{u, v})
		case 1:
			tok = r.Snapshot()
			prefix = len(history)
		default:
			r.Rollback(tok)
			history = history[:prefix]
		}

		// rebuild from scratch and compare connectivity
		fresh := New(n)
		for _, e := range history {
			fresh.Union(e.u, e.v)
		}
		require.Equal(t, fresh.ComponentCount(), r.ComponentCount(), "round %d", round)
		for i := 0; i < 10; i++ {
			u, v := rng.IntN(n), rng.IntN(n)
			require.Equal(t, fresh.Same(u, v), r.Same(u, v), "round %d (%d,%d)", round, u, v)
		}
	}
}
