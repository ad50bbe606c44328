package geom

import (
	"math"
	"sort"
)

// ClosestPair returns the two closest points of pts and their distance,
// by divide and conquer in O(n log n). It panics on fewer than two points.
func ClosestPair(pts []Point) (Point, Point, float64) {
	if len(pts) < 2 {
		panic("geom: closest pair needs at least two points")
	}
	xs := make([]Point, len(pts))
	copy(xs, pts)
	sort.Slice(xs, func(i, j int) bool {
		if xs[i].X != xs[j].X {
			return xs[i].X < xs[j].X
		}
		return xs[i].Y < xs[j].Y
	})
	buf := make([]Point, len(xs))
	a, b, d := closestRec(xs, buf)
	return a, b, d
}

// closestRec solves on xs (sorted by x) and leaves xs sorted by y.
func closestRec(xs, buf []Point) (Point, Point, float64) {
	n := len(xs)
	if n <= 3 {
		best := math.Inf(1)
		var pa, pb Point
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := xs[i].Dist(xs[j]); d < best {
					best, pa, pb = d, xs[i], xs[j]
				}
			}
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].Y < xs[j].Y })
		return pa, pb, best
	}

	mid := n / 2
	midX := xs[mid].X
	la, lb, ld := closestRec(xs[:mid], buf[:mid])
	ra, rb, rd := closestRec(xs[mid:], buf[mid:])

	pa, pb, best := la, lb, ld
	if rd < best {
		pa, pb, best = ra, rb, rd
	}

	// merge the two y-sorted halves
	merge(xs[:mid], xs[mid:], buf)
	copy(xs, buf[:n])

	// candidates within best of the split line, scanned in y order
	strip := buf[:0]
	for _, p := range xs {
		if math.Abs(p.X-midX) < best {
			strip = append(strip, p)
		}
	}
	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best; j++ {
			if d := strip[i].Dist(strip[j]); d < best {
				pa, pb, best = strip[i], strip[j], d
			}
		}
	}
	return pa, pb, best
}

func merge(l, r, out []Point) {
	i, j, k := 0, 0, 0
	for i < len(l) && j < len(r) {
		if l[i].Y <= r[j].Y {
			out[k] = l[i]
			i++
		} else {
			out[k] = r[j]
			j++
		}
		k++
	}
	for ; i < len(l); i++ {
		out[k] = l[i]
		k++
	}
	for ; j < len(r); j++ {
		out[k] = r[j]
		k++
	}
}
