package graph

import "github.com/bits-and-blooms/bitset"

// TopoSort takes, for each vertex, the list of vertices it depends on, and
// proposes an ordering such that every vertex appears after everything it
// depends on. It sticks to the input order as much as possible: an already
// sorted input remains unchanged. As a bonus it returns, for each vertex,
// its "unique" dependents (deduplicated reverse edges). ok is false when the
// dependency graph has a cycle.
//
// Worst-case O(n^2), which is fine at contest sizes; it is fast on
// already-close-to-sorted inputs, which are the expected case.
func TopoSort(deps [][]int) (sorted []int, uniqueDependents [][]int, ok bool) {
	data := newTopSortData(deps)
	sorted = make([]int, len(deps))

	for i := range deps {
		if data.leastReady >= len(data.status) {
			return nil, nil, false // only cyclic vertices remain
		}
		sorted[i] = data.leastReady
		data.markDone(data.leastReady)
	}

	return sorted, data.uniqueDependents, true
}

type topSortData struct {
	uniqueDependents [][]int
	deps             [][]int
	status           []int // status > 0: unique deps not yet ready. 0: ready. -1: done
	leastReady       int
}

func newTopSortData(deps [][]int) topSortData {
	size := len(deps)
	res := topSortData{
		uniqueDependents: make([][]int, size),
		deps:             deps,
		status:           make([]int, size),
		leastReady:       0,
	}

	depSet := bitset.New(uint(size))
	for i := range res.uniqueDependents {
		if i != 0 {
			depSet.ClearAll()
		}
		cpt := 0
		for _, in := range deps[i] {
			if !depSet.Test(uint(in)) {
				depSet.Set(uint(in))
				cpt++
				res.uniqueDependents[in] = append(res.uniqueDependents[in], i)
			}
		}
		res.status[i] = cpt
	}

	for res.leastReady < size && res.status[res.leastReady] != 0 {
		res.leastReady++
	}

	return res
}

func (d *topSortData) markDone(i int) {
	d.status[i] = -1

	for _, outI := range d.uniqueDependents[i] {
		d.status[outI]--
		if d.status[outI] == 0 && outI < d.leastReady {
			d.leastReady = outI
		}
	}

	for d.leastReady < len(d.status) && d.status[d.leastReady] != 0 {
		d.leastReady++
	}
}
