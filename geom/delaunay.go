package geom

import "errors"

// ErrDegenerate is returned by Delaunay when no triangulation exists.
var ErrDegenerate = errors.New("geom: degenerate point set")

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// the CCW triangle abc, via the standard 3x3 determinant predicate.
func inCircumcircle(a, b, c, p Point) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > Eps
}

// Delaunay returns a Delaunay triangulation of pts as index triples (CCW).
// It needs at least three points, not all collinear, and no duplicates;
// otherwise ErrDegenerate.
func Delaunay(pts []Point) ([][3]int, error) {
	n := len(pts)
	if n < 3 {
		return nil, ErrDegenerate
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if pts[i].Eq(pts[j]) {
				return nil, ErrDegenerate
			}
		}
	}
	collinear := true
	for i := 2; i < n && collinear; i++ {
		if Orient(pts[0], pts[1], pts[i]) != 0 {
			collinear = false
		}
	}
	if collinear {
		return nil, ErrDegenerate
	}

	// working point set with a super-triangle enclosing everything
	minP, maxP := pts[0], pts[0]
	for _, p := range pts {
		minP.X = min(minP.X, p.X)
		minP.Y = min(minP.Y, p.Y)
		maxP.X = max(maxP.X, p.X)
		maxP.Y = max(maxP.Y, p.Y)
	}
	span := max(maxP.X-minP.X, maxP.Y-minP.Y, 1)
	mid := Point{(minP.X + maxP.X) / 2, (minP.Y + maxP.Y) / 2}
	work := make([]Point, n, n+3)
	copy(work, pts)
	work = append(work,
		Point{mid.X - 20*span, mid.Y - span},
		Point{mid.X + 20*span, mid.Y - span},
		Point{mid.X, mid.Y + 20*span},
	)

	ccw := func(t [3]int) [3]int {
		if Orient(work[t[0]], work[t[1]], work[t[2]]) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		return t
	}

	tris := [][3]int{ccw([3]int{n, n + 1, n + 2})}

	for pi := 0; pi < n; pi++ {
		p := work[pi]

		var bad, keep [][3]int
		for _, t := range tris {
			if inCircumcircle(work[t[0]], work[t[1]], work[t[2]], p) {
				bad = append(bad, t)
			} else {
				keep = append(keep, t)
			}
		}

		// boundary of the cavity: edges of bad triangles not shared by two
		edgeCount := make(map[[2]int]int)
		ordered := make(map[[2]int][2]int)
		for _, t := range bad {
			for k := 0; k < 3; k++ {
				u, v := t[k], t[(k+1)%3]
				key := [2]int{min(u, v), max(u, v)}
				edgeCount[key]++
				ordered[key] = [2]int{u, v}
			}
		}
		tris = keep
		for key, cnt := range edgeCount {
			if cnt != 1 {
				continue
			}
			e := ordered[key]
			tris = append(tris, ccw([3]int{e[0], e[1], pi}))
		}
	}

	// drop triangles touching the super-triangle
	var res [][3]int
	for _, t := range tris {
		if t[0] < n && t[1] < n && t[2] < n {
			res = append(res, t)
		}
	}
	if len(res) == 0 {
		return nil, ErrDegenerate
	}
	return res, nil
}
