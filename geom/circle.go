package geom

import "math"

// Circle is a circle with center C and radius R.
type Circle struct {
	C Point
	R float64
}

// IntersectLine returns the intersection points of c with l: two points,
// one (tangent) or none.
func (c Circle) IntersectLine(l Line) []Point {
	p := l.Project(c.C)
	d := p.Dist(c.C)
	switch {
	case d > c.R+Eps:
		return nil
	case eq(d, c.R):
		return []Point{p}
	}
	h := math.Sqrt(math.Max(0, c.R*c.R-d*d))
	u := l.D.Scale(h / l.D.Norm())
	return []Point{p.Sub(u), p.Add(u)}
}

// IntersectCircle returns the intersection points of two circles; nil when
// they are disjoint, contained in one another, or coincident.
func (c Circle) IntersectCircle(o Circle) []Point {
	d := c.C.Dist(o.C)
	if sign(d) == 0 {
		return nil // concentric (coincident circles intersect everywhere)
	}
	if d > c.R+o.R+Eps || d < math.Abs(c.R-o.R)-Eps {
		return nil
	}
	// distance from c.C to the radical line along the center line
	a := (c.R*c.R - o.R*o.R + d*d) / (2 * d)
	mid := c.C.Add(o.C.Sub(c.C).Scale(a / d))
	h2 := c.R*c.R - a*a
	if h2 < Eps {
		return []Point{mid}
	}
	h := math.Sqrt(h2)
	u := o.C.Sub(c.C).Rot90().Scale(h / d)
	return []Point{mid.Sub(u), mid.Add(u)}
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return c.C.Dist(p) <= c.R+Eps
}

// Circumcircle returns the circle through three non-collinear points.
// ok is false for collinear input.
func Circumcircle(a, b, c Point) (Circle, bool) {
	if Orient(a, b, c) == 0 {
		return Circle{}, false
	}
	// perpendicular bisectors of ab and ac
	ab := Line{O: a.Add(b).Scale(0.5), D: b.Sub(a).Rot90()}
	ac := Line{O: a.Add(c).Scale(0.5), D: c.Sub(a).Rot90()}
	center, _ := ab.Intersection(ac)
	return Circle{C: center, R: center.Dist(a)}, true
}
