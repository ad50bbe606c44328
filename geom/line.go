package geom

// Line is a directed line through O with direction D. As a half-plane it
// admits the region on its left side.
type Line struct {
	O, D Point
}

// LineThrough returns the directed line from a to b.
func LineThrough(a, b Point) Line {
	return Line{O: a, D: b.Sub(a)}
}

// Side returns +1 when p is strictly left of l, -1 strictly right, 0 on
// the line.
func (l Line) Side(p Point) int {
	return sign(l.D.Cross(p.Sub(l.O)))
}

// Parallel reports whether l and m have parallel directions.
func (l Line) Parallel(m Line) bool {
	return sign(l.D.Cross(m.D)) == 0
}

// Intersection returns the intersection point of l and m; ok is false for
// parallel lines.
func (l Line) Intersection(m Line) (Point, bool) {
	den := l.D.Cross(m.D)
	if sign(den) == 0 {
		return Point{}, false
	}
	t := m.O.Sub(l.O).Cross(m.D) / den
	return l.O.Add(l.D.Scale(t)), true
}

// Project returns the orthogonal projection of p onto l.
func (l Line) Project(p Point) Point {
	t := p.Sub(l.O).Dot(l.D) / l.D.Dot(l.D)
	return l.O.Add(l.D.Scale(t))
}

// SegmentsIntersect reports whether the closed segments ab and cd share a
// point.
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := Orient(c, d, a)
	d2 := Orient(c, d, b)
	d3 := Orient(a, b, c)
	d4 := Orient(a, b, d)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) ||
		(d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) ||
		(d4 == 0 && onSegment(a, b, d))
}

// onSegment assumes p collinear with ab.
func onSegment(a, b, p Point) bool {
	return min(a.X, b.X)-Eps <= p.X && p.X <= max(a.X, b.X)+Eps &&
		min(a.Y, b.Y)-Eps <= p.Y && p.Y <= max(a.Y, b.Y)+Eps
}
