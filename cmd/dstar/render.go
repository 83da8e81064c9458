package main

import (
	"io"
	"strings"

	"github.com/pdrpinto/dstar"
)

// render draws the planner's view of the grid: '#' known obstacle,
// 'x' obstacle the planner has not discovered, '*' path, 'S' start, 'G' goal.
func render(w io.Writer, planner *dstar.Planner, path []dstar.Cell, hidden map[dstar.Cell]bool) error {
	onPath := make(map[dstar.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for row := 0; row < planner.Rows(); row++ {
		for col := 0; col < planner.Cols(); col++ {
			c := dstar.Cell{Row: row, Col: col}
			switch {
			case c == planner.Start():
				b.WriteByte('S')
			case c == planner.Goal():
				b.WriteByte('G')
			case planner.IsObstacle(c):
				b.WriteByte('#')
			case hidden[c]:
				b.WriteByte('x')
			case onPath[c]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
