package dstar

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdrpinto/dstar/internal"
)

// HeuristicFunc returns the estimated cost between two cells.
// It must never return a negative value.
type HeuristicFunc func(from Cell, to Cell) int

// Heuristic names one of the supported cost estimates.
type Heuristic int

const (
	Chebyshev Heuristic = iota
	Manhattan
	Euclidean
	Octile
	Zero
)

var heuristicNames = map[Heuristic]string{
	Chebyshev: "chebyshev",
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Octile:    "octile",
	Zero:      "zero",
}

// ParseHeuristic resolves a heuristic by name, ignoring case.
func ParseHeuristic(name string) (Heuristic, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for heuristic, known := range heuristicNames {
		if known == normalized {
			return heuristic, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// Func returns the estimate as a plain function value, so the search never
// dispatches on the heuristic name.
func (h Heuristic) Func() HeuristicFunc {
	switch h {
	case Chebyshev:
		return chebyshev
	case Manhattan:
		return manhattan
	case Euclidean:
		return euclidean
	case Octile:
		return octile
	case Zero:
		return func(Cell, Cell) int { return 0 }
	}
	panic(fmt.Sprintf("dstar: unsupported heuristic %d", int(h)))
}

func deltas(a, b Cell) (int, int) {
	return internal.Abs(a.Row - b.Row), internal.Abs(a.Col - b.Col)
}

func chebyshev(a, b Cell) int {
	dr, dc := deltas(a, b)
	return max(dr, dc)
}

func manhattan(a, b Cell) int {
	dr, dc := deltas(a, b)
	return dr + dc
}

func euclidean(a, b Cell) int {
	dr, dc := deltas(a, b)
	return int(math.Sqrt(float64(dr*dr + dc*dc)))
}

func octile(a, b Cell) int {
	dr, dc := deltas(a, b)
	return int(float64(max(dr, dc)) + (math.Sqrt2-1)*float64(min(dr, dc)))
}
