// Package lichao implements a Li Chao tree: a segment tree over a fixed
// integer coordinate domain holding a dynamic set of lines y = a*x + b, with
// O(log D) insertion and point minimum queries.
package lichao

type line struct {
	a, b int64
}

func (l line) eval(x int64) int64 {
	return l.a*x + l.b
}

type node struct {
	ln          line
	set         bool
	left, right *node
}

// Tree holds lines over the domain [lo, hi].
type Tree struct {
	root   *node
	lo, hi int64
}

// New creates an empty tree over the x domain [lo, hi]; lo must not exceed hi.
func New(lo, hi int64) *Tree {
	if lo > hi {
		panic("lichao: empty domain")
	}
	return &Tree{root: &node{}, lo: lo, hi: hi}
}

// Insert adds the line y = a*x + b over the whole domain.
func (t *Tree) Insert(a, b int64) {
	t.insert(t.root, t.lo, t.hi, line{a, b})
}

// InsertSegment adds the line y = a*x + b restricted to x in [l, r].
func (t *Tree) InsertSegment(l, r, a, b int64) {
	if l > r {
		return
	}
	l = max(l, t.lo)
	r = min(r, t.hi)
	t.insertSegment(t.root, t.lo, t.hi, l, r, line{a, b})
}

func (t *Tree) insert(v *node, lo, hi int64, ln line) {
	if !v.set {
		v.ln, v.set = ln, true
		return
	}
	mid := lo + (hi-lo)/2
	if ln.eval(mid) < v.ln.eval(mid) {
		ln, v.ln = v.ln, ln
	}
	if lo == hi {
		return
	}
	// ln is worse at mid; it can only win on the side where it is better at
	// the endpoint.
	if ln.eval(lo) < v.ln.eval(lo) {
		if v.left == nil {
			v.left = &node{}
		}
		t.insert(v.left, lo, mid, ln)
	} else if ln.eval(hi) < v.ln.eval(hi) {
		if v.right == nil {
			v.right = &node{}
		}
		t.insert(v.right, mid+1, hi, ln)
	}
}

func (t *Tree) insertSegment(v *node, lo, hi, l, r int64, ln line) {
	if r < lo || hi < l {
		return
	}
	if l <= lo && hi <= r {
		t.insert(v, lo, hi, ln)
		return
	}
	mid := lo + (hi-lo)/2
	if v.left == nil {
		v.left = &node{}
	}
	if v.right == nil {
		v.right = &node{}
	}
	t.insertSegment(v.left, lo, mid, l, r, ln)
	t.insertSegment(v.right, mid+1, hi, l, r, ln)
}

// Min returns the minimum over all inserted lines evaluated at x.
// ok is false when no line covers x.
func (t *Tree) Min(x int64) (v int64, ok bool) {
	if x < t.lo || x > t.hi {
		return 0, false
	}
	n, lo, hi := t.root, t.lo, t.hi
	for n != nil {
		if n.set {
			if e := n.ln.eval(x); !ok || e < v {
				v, ok = e, true
			}
		}
		mid := lo + (hi-lo)/2
		if x <= mid {
			n, hi = n.left, mid
		} else {
			n, lo = n.right, mid+1
		}
	}
	return v, ok
}
