package dstar

import (
	"fmt"
	"math"

	"github.com/pdrpinto/dstar/internal"
)

// Infinity is the cost of an unreachable cell or an impassable edge.
const Infinity = math.MaxInt32

func add(a, b int) int { return internal.SaturatingAdd(a, b, Infinity) }

// Key orders cells in the priority queue: K1 first, ties broken on K2.
type Key struct {
	K1 int
	K2 int
}

// Less compares keys lexicographically.
func (k Key) Less(other Key) bool {
	if k.K1 != other.K1 {
		return k.K1 < other.K1
	}
	return k.K2 < other.K2
}

func (k Key) String() string { return fmt.Sprintf("[%d %d]", k.K1, k.K2) }

// keyOf computes the key of a cell with costs g and rhs, heuristic h and key
// modifier km.
func keyOf(g, rhs, h, km int) Key {
	best := min(g, rhs)
	return Key{K1: add(add(best, h), km), K2: best}
}
