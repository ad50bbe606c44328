package lichao

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	tr := New(-10, 10)
	_, ok := tr.Min(0)
	assert.False(t, ok)

	_, ok = tr.Min(100) // outside the domain
	assert.False(t, ok)
}

func TestSingleLine(t *testing.T) {
	tr := New(0, 100)
	tr.Insert(2, -5)

	for _, x := range []int64{0, 1, 50, 100} {
		v, ok := tr.Min(x)
		require.True(t, ok)
		assert.Equal(t, 2*x-5, v)
	}
}

func TestLowerEnvelope(t *testing.T) {
	tr := New(-100, 100)
	tr.Insert(1, 0)   // y = x
	tr.Insert(-1, 0)  // y = -x
	tr.Insert(0, -20) // y = -20

	v, ok := tr.Min(0)
	require.True(t, ok)
	assert.Equal(t, int64(-20), v)

	v, _ = tr.Min(-80)
	assert.Equal(t, int64(-80), v)

	v, _ = tr.Min(80)
	assert.Equal(t, int64(-80), v)
}

func TestSegmentInsert(t *testing.T) {
	tr := New(0, 10)
	tr.InsertSegment(3, 6, 0, 7)

	_, ok := tr.Min(2)
	assert.False(t, ok)

	v, ok := tr.Min(5)
	require.True(t, ok)
	assert.Equal(t, int64(7), v)

	tr.InsertSegment(6, 3, 0, -100) // empty segment is a no-op
	v, _ = tr.Min(5)
	assert.Equal(t, int64(7), v)
}

func TestRandomAgainstNaive(t *testing.T) {
	const lo, hi = -50, 50
	rng := rand.New(rand.NewPCG(7, 11))

	tr := New(lo, hi)
	var lines []struct{ a, b int64 }

	for i := 0; i < 200; i++ {
		a := int64(rng.IntN(41) - 20)
		b := int64(rng.IntN(2001) - 1000)
		tr.Insert(a, b)
		lines = append(lines, struct{ a, b int64 }{a, b})

		x := int64(rng.IntN(hi-lo+1) + lo)
		want := lines[0].a*x + lines[0].b
		for _, ln := range lines[1:] {
			want = min(want, ln.a*x+ln.b)
		}
		got, ok := tr.Min(x)
		require.True(t, ok)
		assert.Equal(t, want, got, "x=%d after %d lines", x, i+1)
	}
}
