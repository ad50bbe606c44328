// Package graph collects the shortest-path, ordering and tree-query
// templates used by the contest solvers. Graphs are adjacency lists over
// vertices 0..n-1; unreachable targets are reported as distance -1.
package graph

import "container/heap"

// Edge is a weighted directed edge; weights must be non-negative for
// Dijkstra.
type Edge struct {
	To     int
	Weight int64
}

type pqItem struct {
	v    int
	dist int64
}

type pq []pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x any)         { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() any           { old := *q; n := len(old); it := old[n-1]; *q = old[:n-1]; return it }

// Dijkstra returns the shortest distance from src to every vertex, with -1
// for unreachable vertices.
func Dijkstra(adj [][]Edge, src int) []int64 {
	dist := make([]int64, len(adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0

	q := &pq{{v: src}}
	for q.Len() > 0 {
		it := heap.Pop(q).(pqItem)
		if it.dist > dist[it.v] {
			continue // stale entry
		}
		for _, e := range adj[it.v] {
			nd := it.dist + e.Weight
			if dist[e.To] == -1 || nd < dist[e.To] {
				dist[e.To] = nd
				heap.Push(q, pqItem{v: e.To, dist: nd})
			}
		}
	}
	return dist
}

// Cost2 is a two-part cost compared lexicographically: Primary first,
// Secondary as tie-break.
type Cost2 struct {
	Primary, Secondary int64
}

func (c Cost2) Less(o Cost2) bool {
	if c.Primary != o.Primary {
		return c.Primary < o.Primary
	}
	return c.Secondary < o.Secondary
}

func (c Cost2) Add(o Cost2) Cost2 {
	return Cost2{c.Primary + o.Primary, c.Secondary + o.Secondary}
}

// Edge2 is a directed edge carrying a two-part cost; both parts must be
// non-negative.
type Edge2 struct {
	To   int
	Cost Cost2
}

type pq2Item struct {
	v    int
	cost Cost2
}

type pq2 []pq2Item

func (q pq2) Len() int           { return len(q) }
func (q pq2) Less(i, j int) bool { return q[i].cost.Less(q[j].cost) }
func (q pq2) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pq2) Push(x any)        { *q = append(*q, x.(pq2Item)) }
func (q *pq2) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// DijkstraLex returns, for every vertex, the lexicographically smallest
// (Primary, Secondary) cost of any path from src: the cheapest primary
// cost, and among those paths the cheapest secondary. Unreachable vertices
// report {-1, -1}.
func DijkstraLex(adj [][]Edge2, src int) []Cost2 {
	dist := make([]Cost2, len(adj))
	for i := range dist {
		dist[i] = Cost2{-1, -1}
	}
	dist[src] = Cost2{}

	q := &pq2{{v: src}}
	for q.Len() > 0 {
		it := heap.Pop(q).(pq2Item)
		if dist[it.v].Less(it.cost) {
			continue // stale entry
		}
		for _, e := range adj[it.v] {
			nd := it.cost.Add(e.Cost)
			if dist[e.To].Primary == -1 || nd.Less(dist[e.To]) {
				dist[e.To] = nd
				heap.Push(q, pq2Item{v: e.To, cost: nd})
			}
		}
	}
	return dist
}

// deque is a ring-buffer double-ended queue of vertex ids.
type deque struct {
	buf        []int
	head, size int
}

func newDeque(capacity int) *deque {
	if capacity < 4 {
		capacity = 4
	}
	return &deque{buf: make([]int, capacity)}
}

func (d *deque) grow() {
	next := make([]int, 2*len(d.buf))
	for i := 0; i < d.size; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf, d.head = next, 0
}

func (d *deque) pushFront(v int) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.size++
}

func (d *deque) pushBack(v int) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = v
	d.size++
}

func (d *deque) popFront() int {
	v := d.buf[d.head]
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return v
}

// BFS01 returns shortest distances for graphs whose edge weights are all 0
// or 1, in O(V+E) using a deque instead of a heap.
func BFS01(adj [][]Edge, src int) []int64 {
	dist := make([]int64, len(adj))
	seen := make([]bool, len(adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0

	dq := newDeque(len(adj))
	dq.pushBack(src)
	for dq.size > 0 {
		v := dq.popFront()
		if seen[v] {
			continue
		}
		seen[v] = true
		for _, e := range adj[v] {
			nd := dist[v] + e.Weight
			if dist[e.To] != -1 && dist[e.To] <= nd {
				continue
			}
			dist[e.To] = nd
			if e.Weight == 0 {
				dq.pushFront(e.To)
			} else {
				dq.pushBack(e.To)
			}
		}
	}
	return dist
}
