package geom

import "sort"

// boundingBox is the coordinate magnitude of the four half-planes added to
// keep the intersection bounded.
const boundingBox = 1e9

// HalfPlaneIntersect computes the convex polygon that is the intersection
// of the given half-planes, each represented by a directed line admitting
// its left side. Four bounding half-planes at +-1e9 are added, so the
// result is always bounded; nil is returned when the interior is empty.
// The vertices come back in counterclockwise order.
func HalfPlaneIntersect(hs []Line) []Point {
	H := make([]Line, 0, len(hs)+4)
	H = append(H, hs...)

	// four bounding half-planes, each the previous rotated 90 degrees
	bb := Line{O: Point{-boundingBox, -boundingBox}, D: Point{boundingBox, 0}}
	for k := 0; k < 4; k++ {
		H = append(H, bb)
		bb.O = bb.O.Rot90()
		bb.D = bb.D.Rot90()
	}

	sort.Slice(H, func(i, j int) bool {
		return H[i].D.Angle() < H[j].D.Angle()
	})

	cross2 := func(a, b Line) Point {
		p, _ := a.Intersection(b)
		return p
	}

	var q []Line
	for i := range H {
		for len(q) >= 2 && H[i].Side(cross2(q[len(q)-1], q[len(q)-2])) < 0 {
			q = q[:len(q)-1]
		}
		for len(q) >= 2 && H[i].Side(cross2(q[0], q[1])) < 0 {
			q = q[1:]
		}
		if len(q) > 0 && H[i].Parallel(q[len(q)-1]) {
			if H[i].D.Dot(q[len(q)-1].D) < 0 {
				return nil // opposite directions: empty intersection
			}
			// keep the more restrictive of the two parallel half-planes
			if H[i].Side(q[len(q)-1].O) < 0 {
				q = q[:len(q)-1]
			} else {
				continue
			}
		}
		q = append(q, H[i])
	}

	for len(q) >= 3 && q[0].Side(cross2(q[len(q)-1], q[len(q)-2])) < 0 {
		q = q[:len(q)-1]
	}
	for len(q) >= 3 && q[len(q)-1].Side(cross2(q[0], q[1])) < 0 {
		q = q[1:]
	}
	if len(q) < 3 {
		return nil
	}

	ps := make([]Point, len(q))
	for i := range q {
		ps[i] = cross2(q[i], q[(i+1)%len(q)])
	}
	return ps
}
