package dstar

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Less orders cells row-major.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Step returns the cell one move away in direction d.
func (c Cell) Step(d Direction) Cell {
	offset := d.Offset()
	return Cell{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Direction is one of the 8 compass moves, written as the symbols '1'..'8'
// clockwise from north.
type Direction byte

const (
	North     Direction = '1'
	NorthEast Direction = '2'
	East      Direction = '3'
	SouthEast Direction = '4'
	South     Direction = '5'
	SouthWest Direction = '6'
	West      Direction = '7'
	NorthWest Direction = '8'
)

// Directions lists every move in canonical order. Neighbour enumeration and
// path tie-breaking both follow this order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var offsets = [8]Cell{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
	{Row: -1, Col: -1},
}

// Valid reports whether d is one of the 8 direction symbols.
func (d Direction) Valid() bool { return d >= North && d <= NorthWest }

// Offset returns the coordinate delta of d. It panics for an invalid symbol.
func (d Direction) Offset() Cell {
	if !d.Valid() {
		panic(fmt.Sprintf("dstar: invalid direction %q", byte(d)))
	}
	return offsets[d-North]
}

// Diagonal reports whether d changes both row and column.
func (d Direction) Diagonal() bool {
	offset := d.Offset()
	return offset.Row != 0 && offset.Col != 0
}

func (d Direction) String() string { return string(rune(d)) }

// DirectionBetween returns the direction leading from a to an adjacent cell b.
func DirectionBetween(a, b Cell) (Direction, bool) {
	for i, offset := range offsets {
		if a.Row+offset.Row == b.Row && a.Col+offset.Col == b.Col {
			return Directions[i], true
		}
	}
	return 0, false
}
