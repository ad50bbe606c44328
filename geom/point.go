// Package geom is the 2-D computational-geometry template set: points,
// lines, circles, convex hulls, half-plane intersection, closest pair and
// Delaunay triangulation. All coordinates are float64 with epsilon
// comparisons; predicates are not exact-arithmetic robust, which is the
// usual contest tradeoff.
package geom

import "math"

// Eps is the comparison tolerance used throughout the package.
const Eps = 1e-9

func eq(a, b float64) bool {
	return math.Abs(a-b) <= Eps
}

func sign(x float64) int {
	if x > Eps {
		return 1
	}
	if x < -Eps {
		return -1
	}
	return 0
}

// Point is a point or vector in the plane.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Cross returns the z component of p x q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Rot90 returns p rotated 90 degrees counterclockwise.
func (p Point) Rot90() Point {
	return Point{-p.Y, p.X}
}

// Angle returns the polar angle of p in (-pi, pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// Eq reports coordinate equality within Eps.
func (p Point) Eq(q Point) bool {
	return eq(p.X, q.X) && eq(p.Y, q.Y)
}

// Orient returns the orientation of the triple (a, b, c): +1 for a left
// turn, -1 for a right turn, 0 for collinear.
func Orient(a, b, c Point) int {
	return sign(b.Sub(a).Cross(c.Sub(a)))
}
