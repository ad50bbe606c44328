package geom

import "sort"

// ConvexHull returns the convex hull of pts in counterclockwise order,
// without collinear points on the hull edges. Fewer than three distinct
// points come back as-is (sorted, deduplicated). The input is not modified.
func ConvexHull(pts []Point) []Point {
	ps := make([]Point, len(pts))
	copy(ps, pts)
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
	// dedup
	uniq := ps[:0]
	for _, p := range ps {
		if len(uniq) == 0 || !uniq[len(uniq)-1].Eq(p) {
			uniq = append(uniq, p)
		}
	}
	ps = uniq

	if len(ps) < 3 {
		return ps
	}

	// monotone chain: lower then upper hull
	hull := make([]Point, 0, 2*len(ps))
	for _, p := range ps {
		for len(hull) >= 2 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(ps) - 2; i >= 0; i-- {
		p := ps[i]
		for len(hull) >= lower && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1] // last point repeats the first
}

// PolygonArea returns the signed area of the polygon (positive for
// counterclockwise orientation).
func PolygonArea(poly []Point) float64 {
	var area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.Cross(q)
	}
	return area / 2
}

// PointInPolygon reports whether p is inside the simple polygon (boundary
// counts as inside), by ray casting.
func PointInPolygon(p Point, poly []Point) bool {
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if Orient(a, b, p) == 0 && onSegment(a, b, p) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > p.X {
				inside = !inside
			}
		}
	}
	return inside
}
