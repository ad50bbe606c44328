// Package gridpath solves the drone-routing problem: route a drone across a
// city grid from start to end, moving between adjacent cells, avoiding
// buildings, and paying a toll each time the route crosses a tax line. Tax
// lines run along the full width or height of the grid between two adjacent
// rows or columns. The answer is the minimum number of crossings.
package gridpath

import (
	"errors"

	"github.com/contestkit/contestkit/graph"
)

// ErrImpossible is returned when no valid route exists.
var ErrImpossible = errors.New("gridpath: no route")

// Cell addresses a grid cell by row and column, 0-based.
type Cell struct {
	R, C int
}

// Grid describes one routing instance. VTax[c] means a vertical tax line
// between columns c and c+1; HTax[r] likewise between rows r and r+1.
type Grid struct {
	Rows, Cols int
	Blocked    map[Cell]bool
	VTax       map[int]bool
	HTax       map[int]bool
	Start, End Cell
}

func (g *Grid) inBounds(c Cell) bool {
	return c.R >= 0 && c.R < g.Rows && c.C >= 0 && c.C < g.Cols
}

func (g *Grid) id(c Cell) int { return c.R*g.Cols + c.C }

// moveCost is 1 when stepping from a to b crosses a tax line, else 0.
func (g *Grid) moveCost(a, b Cell) int64 {
	switch {
	case a.R != b.R:
		r := min(a.R, b.R)
		if g.HTax[r] {
			return 1
		}
	case a.C != b.C:
		c := min(a.C, b.C)
		if g.VTax[c] {
			return 1
		}
	}
	return 0
}

// Solve returns the minimum number of tax-line crossings on any route from
// Start to End. It returns ErrImpossible when either endpoint is out of
// bounds or blocked, or when every route is walled off by buildings.
func (g *Grid) Solve() (int64, error) {
	crossings, _, err := g.SolveLex()
	return crossings, err
}

// SolveLex returns the minimum number of crossings and, among all
// minimum-crossing routes, the fewest moves.
func (g *Grid) SolveLex() (crossings, steps int64, err error) {
	if !g.inBounds(g.Start) || !g.inBounds(g.End) ||
		g.Blocked[g.Start] || g.Blocked[g.End] {
		return 0, 0, ErrImpossible
	}

	adj := make([][]graph.Edge2, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			from := Cell{r, c}
			if g.Blocked[from] {
				continue
			}
			for _, to := range []Cell{{r + 1, c}, {r - 1, c}, {r, c + 1}, {r, c - 1}} {
				if !g.inBounds(to) || g.Blocked[to] {
					continue
				}
				adj[g.id(from)] = append(adj[g.id(from)], graph.Edge2{
					To:   g.id(to),
					Cost: graph.Cost2{Primary: g.moveCost(from, to), Secondary: 1},
				})
			}
		}
	}

	dist := graph.DijkstraLex(adj, g.id(g.Start))
	d := dist[g.id(g.End)]
	if d.Primary < 0 {
		return 0, 0, ErrImpossible
	}
	return d.Primary, d.Secondary, nil
}

// Parse builds a Grid from the judge's character map. '#' is a building,
// 'S' and 'E' mark the endpoints, any other byte is open. vtax and htax
// list the tax-line positions.
func Parse(rows []string, vtax, htax []int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("gridpath: empty grid")
	}
	g := &Grid{
		Rows:    len(rows),
		Cols:    len(rows[0]),
		Blocked: make(map[Cell]bool),
		VTax:    make(map[int]bool),
		HTax:    make(map[int]bool),
		Start:   Cell{-1, -1},
		End:     Cell{-1, -1},
	}
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, errors.New("gridpath: ragged grid")
		}
		for c := 0; c < len(row); c++ {
			cell := Cell{r, c}
			switch row[c] {
			case '#':
				g.Blocked[cell] = true
			case 'S':
				g.Start = cell
			case 'E':
				g.End = cell
			}
		}
	}
	if g.Start.R < 0 || g.End.R < 0 {
		return nil, errors.New("gridpath: missing S or E marker")
	}
	for _, c := range vtax {
		g.VTax[c] = true
	}
	for _, r := range htax {
		g.HTax[r] = true
	}
	return g, nil
}
