// Package mo implements Mo's algorithm: an offline scheduler that answers
// range queries over a static array in O((n + q) * sqrt(n)) handler calls by
// reordering the queries and moving the window one element at a time.
package mo

import (
	"math"
	"sort"

	"github.com/contestkit/contestkit/internal/utils"
)

// Query is an inclusive index range [L, R]; L > R denotes an empty range.
type Query struct {
	L, R int
}

// Handler maintains the running window. Add and Remove are called with an
// element index; Answer reports the value for the current window.
type Handler[T any] interface {
	Add(i int)
	Remove(i int)
	Answer() T
}

// Run answers all queries over an array of length n and returns the answers
// in the original query order.
func Run[T any](n int, queries []Query, h Handler[T]) []T {
	if len(queries) == 0 {
		return nil
	}
	block := 1
	if n > 0 {
		block = int(math.Ceil(math.Sqrt(float64(n))))
	}

	blocks := utils.Map(queries, func(q Query) int { return q.L / block })
	order := utils.MapRange(0, len(queries), func(i int) int { return i })
	sort.Slice(order, func(a, b int) bool {
		qa, qb := queries[order[a]], queries[order[b]]
		ba, bb := blocks[order[a]], blocks[order[b]]
		if ba != bb {
			return ba < bb
		}
		if ba%2 == 0 { // snake order halves the R pointer travel
			return qa.R < qb.R
		}
		return qa.R > qb.R
	})

	answers := make([]T, len(queries))
	curL, curR := 0, -1 // inclusive window, initially empty
	for k, qi := range order {
		q := queries[qi]
		if q.L > q.R {
			// drain the window for an empty range
			for curL <= curR {
				h.Remove(curR)
				curR--
			}
			curL, curR = 0, -1
			answers[k] = h.Answer()
			continue
		}
		for curR < q.R {
			curR++
			h.Add(curR)
		}
		for curL > q.L {
			curL--
			h.Add(curL)
		}
		for curR > q.R {
			h.Remove(curR)
			curR--
		}
		for curL < q.L {
			h.Remove(curL)
			curL++
		}
		answers[k] = h.Answer()
	}
	// answers are in visit order; send each back to its query's slot
	utils.Permute(answers, order)
	return answers
}
