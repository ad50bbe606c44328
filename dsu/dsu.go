// Package dsu implements disjoint set union (union-find): a fast variant
// with path halving and union by rank, and a rollback variant for offline
// dynamic-connectivity problems.
package dsu

// DSU is the standard near-constant-time union-find.
type DSU struct {
	parent []int
	rank   []int
	count  int
}

func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path halving
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing x and y and reports whether they were
// previously distinct.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--
	return true
}

func (d *DSU) Same(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// ComponentCount returns the number of disjoint sets.
func (d *DSU) ComponentCount() int {
	return d.count
}

// Rollback is a union-find whose unions can be undone in reverse order.
// It uses union by rank without path compression, so Find is O(log n).
type Rollback struct {
	parent []int
	rank   []int
	count  int
	ops    []op
}

type op struct {
	child       int
	rankBumped  int  // root whose rank was incremented, -1 if none
	wasDistinct bool // no-op unions are recorded too, to keep tokens positional
}

// Token marks a point in the operation history.
type Token int

func NewRollback(n int) *Rollback {
	r := &Rollback{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range r.parent {
		r.parent[i] = i
	}
	return r
}

func (r *Rollback) Find(x int) int {
	for r.parent[x] != x {
		x = r.parent[x]
	}
	return x
}

func (r *Rollback) Same(x, y int) bool {
	return r.Find(x) == r.Find(y)
}

func (r *Rollback) ComponentCount() int {
	return r.count
}

// Union merges the sets containing x and y, recording the operation so it
// can be rolled back.
func (r *Rollback) Union(x, y int) bool {
	rx, ry := r.Find(x), r.Find(y)
	if rx == ry {
		r.ops = append(r.ops, op{child: -1, rankBumped: -1})
		return false
	}
	if r.rank[rx] < r.rank[ry] {
		rx, ry = ry, rx
	}
	bumped := -1
	if r.rank[rx] == r.rank[ry] {
		r.rank[rx]++
		bumped = rx
	}
	r.parent[ry] = rx
	r.count--
	r.ops = append(r.ops, op{child: ry, rankBumped: bumped, wasDistinct: true})
	return true
}

// Snapshot returns a token for the current state.
func (r *Rollback) Snapshot() Token {
	return Token(len(r.ops))
}

// Rollback undoes all unions performed after tok was taken.
func (r *Rollback) Rollback(tok Token) {
	for len(r.ops) > int(tok) {
		o := r.ops[len(r.ops)-1]
		r.ops = r.ops[:len(r.ops)-1]
		if !o.wasDistinct {
			continue
		}
		r.parent[o.child] = o.child
		if o.rankBumped >= 0 {
			r.rank[o.rankBumped]--
		}
		r.count++
	}
}
