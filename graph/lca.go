package graph

import "math/bits"

// LCA answers lowest-common-ancestor queries on a rooted tree via binary
// lifting: O(n log n) preprocessing, O(log n) per query.
type LCA struct {
	up    [][]int // up[k][v] is the 2^k-th ancestor of v, -1 past the root
	depth []int
}

// NewLCA builds the structure for the tree given as an undirected adjacency
// list, rooted at root. Vertices unreachable from root keep depth 0 and no
// ancestors; querying them gives meaningless results.
func NewLCA(root int, adj [][]int) *LCA {
	n := len(adj)
	logN := 1
	for 1<<logN < n {
		logN++
	}

	l := &LCA{
		up:    make([][]int, logN+1),
		depth: make([]int, n),
	}
	for k := range l.up {
		l.up[k] = make([]int, n)
		for v := range l.up[k] {
			l.up[k][v] = -1
		}
	}

	// iterative DFS to set parents and depths
	type frame struct{ v, p, d int }
	stack := []frame{{root, -1, 0}}
	visited := make([]bool, n)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.v] {
			continue
		}
		visited[f.v] = true
		l.depth[f.v] = f.d
		l.up[0][f.v] = f.p
		for _, u := range adj[f.v] {
			if !visited[u] {
				stack = append(stack, frame{u, f.v, f.d + 1})
			}
		}
	}

	for k := 1; k <= logN; k++ {
		for v := 0; v < n; v++ {
			if mid := l.up[k-1][v]; mid != -1 {
				l.up[k][v] = l.up[k-1][mid]
			}
		}
	}
	return l
}

// Ancestor returns the k-th ancestor of v, or -1 when it does not exist.
func (l *LCA) Ancestor(v, k int) int {
	if k > l.depth[v] {
		return -1
	}
	for k > 0 && v != -1 {
		step := bits.TrailingZeros(uint(k))
		v = l.up[step][v]
		k &= k - 1
	}
	return v
}

// Query returns the lowest common ancestor of u and v.
func (l *LCA) Query(u, v int) int {
	if l.depth[u] < l.depth[v] {
		u, v = v, u
	}
	u = l.Ancestor(u, l.depth[u]-l.depth[v])
	if u == v {
		return u
	}
	for k := len(l.up) - 1; k >= 0; k-- {
		if l.up[k][u] != l.up[k][v] {
			u = l.up[k][u]
			v = l.up[k][v]
		}
	}
	return l.up[0][u]
}

// Dist returns the number of edges on the path between u and v.
func (l *LCA) Dist(u, v int) int {
	w := l.Query(u, v)
	return l.depth[u] + l.depth[v] - 2*l.depth[w]
}

// Depth returns the depth of v (root has depth 0).
func (l *LCA) Depth(v int) int {
	return l.depth[v]
}
