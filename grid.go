package dstar

import "fmt"

// LpState is the per-cell search state.
type LpState struct {
	// G is the best known cost from the cell to the goal.
	G int
	// RHS is the one-step lookahead of G, derived from the neighbours.
	RHS int
	// H is the heuristic estimate between the start and the cell. It is
	// filled on demand and refreshed once per start position.
	H int
	// Bad marks an impassable cell.
	Bad bool

	hEpoch int
}

// Consistent reports whether G and RHS agree.
func (s LpState) Consistent() bool { return s.G == s.RHS }

// Grid owns the state of every cell in one contiguous block.
type Grid struct {
	rows  int
	cols  int
	cells []LpState
}

// NewGrid allocates a rows x cols grid with every cost set to Infinity.
func NewGrid(rows, cols int) *Grid {
	grid := &Grid{rows: rows, cols: cols, cells: make([]LpState, rows*cols)}
	for i := range grid.cells {
		grid.cells[i] = LpState{G: Infinity, RHS: Infinity}
	}
	return grid
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Valid reports whether c lies inside the grid.
func (g *Grid) Valid(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of c. Callers validate coordinates first; an
// out-of-range cell panics.
func (g *Grid) At(c Cell) *LpState {
	if !g.Valid(c) {
		panic(fmt.Sprintf("dstar: cell %v outside %dx%d grid", c, g.rows, g.cols))
	}
	return &g.cells[c.Row*g.cols+c.Col]
}

// Neighbours returns the in-grid cells adjacent to c in canonical direction
// order. Obstacles are included.
func (g *Grid) Neighbours(c Cell) []Cell {
	neighbours := make([]Cell, 0, len(Directions))
	for _, direction := range Directions {
		if next := c.Step(direction); g.Valid(next) {
			neighbours = append(neighbours, next)
		}
	}
	return neighbours
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Cell, state *LpState)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Cell{Row: row, Col: col}, &g.cells[row*g.cols+col])
		}
	}
}
