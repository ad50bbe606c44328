// Package linkcut implements a link-cut tree: a dynamic forest supporting
// edge insertion and deletion, connectivity queries and vertex-weighted path
// sums, all in O(log n) amortized via splay auxiliary trees.
package linkcut

import "errors"

var (
	// ErrSameTree is returned by Link when the endpoints are already connected.
	ErrSameTree = errors.New("linkcut: vertices already connected")
	// ErrNoEdge is returned by Cut when the given edge is not in the forest.
	ErrNoEdge = errors.New("linkcut: no such edge")
)

type node struct {
	ch  [2]*node
	p   *node
	id  int
	rev bool
	val int64 // vertex weight
	sum int64 // sum over the splay subtree (a contiguous path segment)
}

// Forest is a collection of n vertices (0-indexed) with no edges initially.
type Forest struct {
	nodes []node
}

func New(n int) *Forest {
	f := &Forest{nodes: make([]node, n)}
	for i := range f.nodes {
		f.nodes[i].id = i
	}
	return f
}

func (f *Forest) Len() int {
	return len(f.nodes)
}

// SetValue assigns weight x to vertex v.
func (f *Forest) SetValue(v int, x int64) {
	n := &f.nodes[v]
	f.splay(n)
	n.val = x
	n.pull()
}

// Value returns the weight of vertex v.
func (f *Forest) Value(v int) int64 {
	return f.nodes[v].val
}

func (n *node) pull() {
	n.sum = n.val
	if n.ch[0] != nil {
		n.sum += n.ch[0].sum
	}
	if n.ch[1] != nil {
		n.sum += n.ch[1].sum
	}
}

func (n *node) push() {
	if !n.rev {
		return
	}
	n.ch[0], n.ch[1] = n.ch[1], n.ch[0]
	for _, c := range n.ch {
		if c != nil {
			c.rev = !c.rev
		}
	}
	n.rev = false
}

// isRoot reports whether n is the root of its splay tree (i.e. the
// parent pointer is a path-parent pointer or absent).
func (n *node) isRoot() bool {
	return n.p == nil || (n.p.ch[0] != n && n.p.ch[1] != n)
}

func (n *node) dir() int {
	if n.p.ch[1] == n {
		return 1
	}
	return 0
}

func (f *Forest) rotate(n *node) {
	p := n.p
	g := p.p
	d := n.dir()

	p.ch[d] = n.ch[1-d]
	if n.ch[1-d] != nil {
		n.ch[1-d].p = p
	}
	n.ch[1-d] = p

	if !p.isRoot() {
		g.ch[p.dir()] = n
	}
	p.p = n
	n.p = g

	p.pull()
	n.pull()
}

func (f *Forest) splay(n *node) {
	// push pending reversals from the root down to n first
	stack := []*node{n}
	for x := n; !x.isRoot(); {
		x = x.p
		stack = append(stack, x)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		stack[i].push()
	}

	for !n.isRoot() {
		p := n.p
		if !p.isRoot() {
			if n.dir() == p.dir() {
				f.rotate(p)
			} else {
				f.rotate(n)
			}
		}
		f.rotate(n)
	}
}

// access makes the path from n to the root of its tree the preferred path
// and splays n to the top of its auxiliary tree.
func (f *Forest) access(n *node) {
	var last *node
	for x := n; x != nil; x = x.p {
		f.splay(x)
		x.ch[1] = last
		x.pull()
		last = x
	}
	f.splay(n)
}

// makeRoot reroots n's tree at n.
func (f *Forest) makeRoot(n *node) {
	f.access(n)
	n.rev = !n.rev
	n.push()
}

func (f *Forest) findRoot(n *node) *node {
	f.access(n)
	for n.ch[0] != nil {
		n = n.ch[0]
		n.push()
	}
	f.splay(n)
	return n
}

// FindRoot returns the root of the tree containing v.
func (f *Forest) FindRoot(v int) int {
	return f.findRoot(&f.nodes[v]).id
}

// Connected reports whether u and v are in the same tree.
func (f *Forest) Connected(u, v int) bool {
	if u == v {
		return true
	}
	return f.findRoot(&f.nodes[u]) == f.findRoot(&f.nodes[v])
}

// Link adds the edge (u, v); the endpoints must be in different trees.
func (f *Forest) Link(u, v int) error {
	nu, nv := &f.nodes[u], &f.nodes[v]
	if f.findRoot(nu) == f.findRoot(nv) {
		return ErrSameTree
	}
	f.makeRoot(nu)
	nu.p = nv
	return nil
}

// Cut removes the edge (u, v); it must be present in the forest.
func (f *Forest) Cut(u, v int) error {
	nu, nv := &f.nodes[u], &f.nodes[v]
	f.makeRoot(nu)
	f.access(nv)
	// the edge exists iff v's path predecessor is exactly u
	if nv.ch[0] != nu || nu.ch[1] != nil {
		return ErrNoEdge
	}
	nv.ch[0] = nil
	nu.p = nil
	nv.pull()
	return nil
}

// PathSum returns the sum of vertex weights on the path from u to v.
func (f *Forest) PathSum(u, v int) (int64, error) {
	nu, nv := &f.nodes[u], &f.nodes[v]
	if f.findRoot(nu) != f.findRoot(nv) {
		return 0, ErrNoEdge
	}
	f.makeRoot(nu)
	f.access(nv)
	return nv.sum, nil
}
