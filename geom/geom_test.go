package geom

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestPointOps(t *testing.T) {
	p := Point{3, 4}
	assert.Equal(t, 5.0, p.Norm())
	assert.Equal(t, Point{-4, 3}, p.Rot90())
	assert.Equal(t, 0.0, Point{1, 0}.Cross(Point{2, 0}))
	assert.Equal(t, 1, Orient(Point{0, 0}, Point{1, 0}, Point{1, 1}))
	assert.Equal(t, -1, Orient(Point{0, 0}, Point{1, 0}, Point{1, -1}))
	assert.Equal(t, 0, Orient(Point{0, 0}, Point{1, 0}, Point{2, 0}))
}

func TestLineIntersection(t *testing.T) {
	l := LineThrough(Point{0, 0}, Point{2, 2})
	m := LineThrough(Point{0, 2}, Point{2, 0})

	p, ok := l.Intersection(m)
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(Point{1, 1}, p, approx))

	_, ok = l.Intersection(LineThrough(Point{0, 1}, Point{2, 3}))
	assert.False(t, ok)
	assert.True(t, l.Parallel(LineThrough(Point{5, 0}, Point{7, 2})))
}

func TestLineSide(t *testing.T) {
	l := LineThrough(Point{0, 0}, Point{1, 0})
	assert.Equal(t, 1, l.Side(Point{0, 5}))
	assert.Equal(t, -1, l.Side(Point{0, -5}))
	assert.Equal(t, 0, l.Side(Point{42, 0}))
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, SegmentsIntersect(Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0}))
	assert.False(t, SegmentsIntersect(Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{3, 3}))
	// touching at an endpoint
	assert.True(t, SegmentsIntersect(Point{0, 0}, Point{1, 1}, Point{1, 1}, Point{2, 0}))
	// collinear overlap
	assert.True(t, SegmentsIntersect(Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{3, 0}))
}

func TestCircleLineIntersection(t *testing.T) {
	c := Circle{C: Point{0, 0}, R: 1}

	ps := c.IntersectLine(LineThrough(Point{-2, 0}, Point{2, 0}))
	require.Len(t, ps, 2)
	assert.Empty(t, cmp.Diff([]Point{{-1, 0}, {1, 0}}, ps, approx))

	ps = c.IntersectLine(LineThrough(Point{-2, 1}, Point{2, 1}))
	require.Len(t, ps, 1)
	assert.Empty(t, cmp.Diff(Point{0, 1}, ps[0], approx))

	assert.Nil(t, c.IntersectLine(LineThrough(Point{-2, 3}, Point{2, 3})))
}

func TestCircleCircleIntersection(t *testing.T) {
	a := Circle{C: Point{0, 0}, R: 1}
	b := Circle{C: Point{1, 0}, R: 1}

	ps := a.IntersectCircle(b)
	require.Len(t, ps, 2)
	for _, p := range ps {
		assert.InDelta(t, 1, a.C.Dist(p), 1e-9)
		assert.InDelta(t, 1, b.C.Dist(p), 1e-9)
	}

	// tangent externally
	ps = a.IntersectCircle(Circle{C: Point{2, 0}, R: 1})
	require.Len(t, ps, 1)
	assert.Empty(t, cmp.Diff(Point{1, 0}, ps[0], approx))

	assert.Nil(t, a.IntersectCircle(Circle{C: Point{5, 0}, R: 1}))
	assert.Nil(t, a.IntersectCircle(Circle{C: Point{0, 0}, R: 0.3}))
}

func TestCircumcircle(t *testing.T) {
	c, ok := Circumcircle(Point{0, 0}, Point{2, 0}, Point{0, 2})
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(Point{1, 1}, c.C, approx))
	assert.InDelta(t, math.Sqrt2, c.R, 1e-9)

	_, ok = Circumcircle(Point{0, 0}, Point{1, 1}, Point{2, 2})
	assert.False(t, ok)
}

func TestConvexHullSquare(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {0, 1}, {1, 0}, {0.5, 0.5}, {0.5, 0}}
	hull := ConvexHull(pts)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
}

func TestConvexHullDegenerate(t *testing.T) {
	assert.Len(t, ConvexHull([]Point{{1, 1}, {1, 1}}), 1)
	assert.Equal(t, []Point{{0, 0}, {3, 0}}, ConvexHull([]Point{{1, 0}, {0, 0}, {3, 0}, {2, 0}}))
}

func TestConvexHullProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	coord := gen.Float64Range(-100, 100)
	genPoint := gopter.CombineGens(coord, coord).Map(func(vs []interface{}) Point {
		return Point{vs[0].(float64), vs[1].(float64)}
	})

	properties := gopter.NewProperties(parameters)
	properties.Property("hull is convex and contains all input points", prop.ForAll(
		func(pts []Point) bool {
			hull := ConvexHull(pts)
			if len(hull) < 3 {
				return true
			}
			for i := range hull {
				a := hull[i]
				b := hull[(i+1)%len(hull)]
				c := hull[(i+2)%len(hull)]
				if Orient(a, b, c) <= 0 {
					return false // not strictly convex CCW
				}
			}
			for _, p := range pts {
				if !PointInPolygon(p, hull) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genPoint),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPolygonArea(t *testing.T) {
	square := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.InDelta(t, 4, PolygonArea(square), 1e-9)

	clockwise := []Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	assert.InDelta(t, -4, PolygonArea(clockwise), 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	tri := []Point{{0, 0}, {4, 0}, {0, 4}}
	assert.True(t, PointInPolygon(Point{1, 1}, tri))
	assert.True(t, PointInPolygon(Point{2, 2}, tri))  // on the hypotenuse
	assert.True(t, PointInPolygon(Point{0, 0}, tri))  // vertex
	assert.False(t, PointInPolygon(Point{3, 3}, tri))
	assert.False(t, PointInPolygon(Point{-1, 1}, tri))
}

func TestHalfPlaneIntersectTriangle(t *testing.T) {
	// x >= 0, y >= 0, x + y <= 2
	hs := []Line{
		LineThrough(Point{0, 0}, Point{1, 0}),  // y >= 0
		LineThrough(Point{2, 0}, Point{0, 2}),  // x + y <= 2
		LineThrough(Point{0, 2}, Point{0, 0}),  // x >= 0
	}
	poly := HalfPlaneIntersect(hs)
	require.Len(t, poly, 3)
	assert.InDelta(t, 2, PolygonArea(poly), 1e-6)
	for _, want := range []Point{{0, 0}, {2, 0}, {0, 2}} {
		found := false
		for _, p := range poly {
			if p.Dist(want) < 1e-6 {
				found = true
			}
		}
		assert.True(t, found, "vertex %v missing", want)
	}
}

func TestHalfPlaneIntersectEmpty(t *testing.T) {
	// y >= 1 and y <= 0
	hs := []Line{
		LineThrough(Point{0, 1}, Point{1, 1}),
		LineThrough(Point{1, 0}, Point{0, 0}),
	}
	assert.Nil(t, HalfPlaneIntersect(hs))
}

func TestHalfPlaneIntersectParallelPair(t *testing.T) {
	// 0 <= y <= 1 strip clipped by the bounding box
	hs := []Line{
		LineThrough(Point{0, 0}, Point{1, 0}),
		LineThrough(Point{1, 1}, Point{0, 1}),
		// redundant second copy of y >= 0, shifted down
		LineThrough(Point{0, -5}, Point{1, -5}),
	}
	poly := HalfPlaneIntersect(hs)
	require.NotNil(t, poly)
	for _, p := range poly {
		assert.GreaterOrEqual(t, p.Y, -1e-6)
		assert.LessOrEqual(t, p.Y, 1+1e-6)
	}
}

func TestClosestPair(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}, {1, 0}, {5, 5}, {-3, 4}}
	a, b, d := ClosestPair(pts)
	assert.InDelta(t, 1, d, 1e-9)
	assert.InDelta(t, 1, a.Dist(b), 1e-9)
}

func TestClosestPairAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 18))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.IntN(60)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{rng.Float64() * 100, rng.Float64() * 100}
		}
		_, _, got := ClosestPair(pts)

		want := math.Inf(1)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				want = min(want, pts[i].Dist(pts[j]))
			}
		}
		require.InDelta(t, want, got, 1e-9, "trial %d", trial)
	}
}

func TestDelaunaySquare(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris, err := Delaunay(pts)
	require.NoError(t, err)
	assert.Len(t, tris, 2)

	var area float64
	for _, tr := range tris {
		area += math.Abs(PolygonArea([]Point{pts[tr[0]], pts[tr[1]], pts[tr[2]]}))
	}
	assert.InDelta(t, 1, area, 1e-9)
}

func TestDelaunayDegenerate(t *testing.T) {
	_, err := Delaunay([]Point{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Delaunay([]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Delaunay([]Point{{0, 0}, {0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestDelaunayEmptyCircumcircleProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(77, 99))
	for trial := 0; trial < 20; trial++ {
		n := 4 + rng.IntN(20)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{rng.Float64() * 100, rng.Float64() * 100}
		}
		tris, err := Delaunay(pts)
		require.NoError(t, err, "trial %d", trial)
		require.NotEmpty(t, tris)

		// total triangulated area equals hull area
		var area float64
		for _, tr := range tris {
			area += math.Abs(PolygonArea([]Point{pts[tr[0]], pts[tr[1]], pts[tr[2]]}))
		}
		hull := ConvexHull(pts)
		require.InDelta(t, math.Abs(PolygonArea(hull)), area, 1e-6, "trial %d", trial)

		// no input point strictly inside any circumcircle
		for _, tr := range tris {
			a, b, c := pts[tr[0]], pts[tr[1]], pts[tr[2]]
			if Orient(a, b, c) < 0 {
				b, c = c, b
			}
			for pi, p := range pts {
				if pi == tr[0] || pi == tr[1] || pi == tr[2] {
					continue
				}
				cc, ok := Circumcircle(a, b, c)
				require.True(t, ok)
				require.Greater(t, cc.C.Dist(p), cc.R-1e-6,
					"trial %d: point %d inside circumcircle of %v", trial, pi, tr)
			}
		}
	}
}

func TestHullSortedOutputIsCanonical(t *testing.T) {
	// hull starts at the lexicographically smallest point
	pts := []Point{{2, 2}, {0, 0}, {2, 0}, {0, 2}}
	hull := ConvexHull(pts)
	require.NotEmpty(t, hull)
	lex := make([]Point, len(hull))
	copy(lex, hull)
	sort.Slice(lex, func(i, j int) bool {
		if lex[i].X != lex[j].X {
			return lex[i].X < lex[j].X
		}
		return lex[i].Y < lex[j].Y
	})
	assert.Equal(t, lex[0], hull[0])
}
