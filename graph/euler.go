package graph

import "errors"

// ErrNoEulerianPath is returned when the graph has no Eulerian path.
var ErrNoEulerianPath = errors.New("graph: no eulerian path")

// EulerianPath returns a walk over the undirected multigraph (n vertices,
// given edge list) using every edge exactly once, via Hierholzer's
// algorithm. It starts at an odd-degree vertex when one exists, so the
// result is a circuit iff all degrees are even. Errors when more than two
// vertices have odd degree or the edges are not connected.
func EulerianPath(n int, edges [][2]int) ([]int, error) {
	if len(edges) == 0 {
		return nil, nil
	}

	// half-edge lists per vertex; e^1 is the twin of e
	inc := make([][]int, n)
	deg := make([]int, n)
	for i, e := range edges {
		inc[e[0]] = append(inc[e[0]], 2*i)
		inc[e[1]] = append(inc[e[1]], 2*i+1)
		deg[e[0]]++
		deg[e[1]]++
	}

	start := -1
	odd := 0
	for v := 0; v < n; v++ {
		if deg[v]%2 == 1 {
			odd++
			start = v
		}
	}
	if odd != 0 && odd != 2 {
		return nil, ErrNoEulerianPath
	}
	if start == -1 { // circuit: start anywhere with an edge
		for v := 0; v < n; v++ {
			if deg[v] > 0 {
				start = v
				break
			}
		}
	}

	halfTarget := func(h int) int {
		e := edges[h/2]
		if h%2 == 0 {
			return e[1]
		}
		return e[0]
	}

	used := make([]bool, len(edges))
	cursor := make([]int, n)
	var walk []int
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		advanced := false
		for cursor[v] < len(inc[v]) {
			h := inc[v][cursor[v]]
			cursor[v]++
			if used[h/2] {
				continue
			}
			used[h/2] = true
			stack = append(stack, halfTarget(h))
			advanced = true
			break
		}
		if !advanced {
			walk = append(walk, v)
			stack = stack[:len(stack)-1]
		}
	}

	if len(walk) != len(edges)+1 {
		return nil, ErrNoEulerianPath // disconnected edge set
	}
	// reverse for start-to-end order
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}
	return walk, nil
}
