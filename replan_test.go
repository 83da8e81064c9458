package dstar

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// bfsDistance counts the moves of a shortest route from the planner's start
// to its goal under the same move rules, or -1 when there is none.
func bfsDistance(planner *Planner, cornerCutting bool) int {
	start, goal := planner.Start(), planner.Goal()
	distance := map[Cell]int{start: 0}
	frontier := []Cell{start}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		if current == goal {
			return distance[current]
		}
		for _, direction := range Directions {
			next := current.Step(direction)
			if planner.IsObstacle(next) {
				continue
			}
			if _, seen := distance[next]; seen {
				continue
			}
			if direction.Diagonal() && !cornerCutting && cutsCorner(planner, current, next) {
				continue
			}
			distance[next] = distance[current] + 1
			frontier = append(frontier, next)
		}
	}
	return -1
}

func cutsCorner(planner *Planner, a, b Cell) bool {
	return planner.IsObstacle(Cell{Row: a.Row, Col: b.Col}) || planner.IsObstacle(Cell{Row: b.Row, Col: a.Col})
}

// checkReplan verifies one planning result against a breadth-first search of
// the current world. With an admissible heuristic the path must be shortest.
func checkReplan(t *testing.T, planner *Planner, path []Cell, err error, cornerCutting, shortest bool) {
	t.Helper()
	want := bfsDistance(planner, cornerCutting)
	if err != nil {
		if !errors.Is(err, ErrNoPath) {
			t.Fatalf("Unexpected error: %v", err)
		}
		if want >= 0 {
			t.Fatalf("Got %v but %v reaches %v in %d moves", err, planner.Start(), planner.Goal(), want)
		}
		return
	}
	if want < 0 {
		t.Fatalf("Got path %v to an unreachable goal", path)
	}
	if len(path) == 0 || path[0] != planner.Start() || path[len(path)-1] != planner.Goal() {
		t.Fatalf("Path %v does not run from %v to %v", path, planner.Start(), planner.Goal())
	}
	for i, c := range path {
		if planner.IsObstacle(c) {
			t.Fatalf("Path %v crosses obstacle %v", path, c)
		}
		if i == 0 {
			continue
		}
		direction, ok := DirectionBetween(path[i-1], c)
		if !ok {
			t.Fatalf("Path %v jumps from %v to %v", path, path[i-1], c)
		}
		if direction.Diagonal() && !cornerCutting && cutsCorner(planner, path[i-1], c) {
			t.Fatalf("Path %v cuts a corner between %v and %v", path, path[i-1], c)
		}
	}
	if moves := len(path) - 1; moves < want || shortest && moves != want {
		t.Fatalf("Path %v has %d moves, shortest route has %d", path, moves, want)
	}
}

func TestIncrementalReplanningAllHeuristics(t *testing.T) {
	const rows, cols = 8, 8
	heuristics := []struct {
		name     string
		shortest bool
	}{
		{"chebyshev", true},
		{"zero", true},
		{"manhattan", false},
		{"euclidean", false},
		{"octile", false},
	}

	for _, heuristic := range heuristics {
		for _, cornerCutting := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/cutting=%v", heuristic.name, cornerCutting), func(t *testing.T) {
				r := rand.New(rand.NewSource(42))
				for trial := 0; trial < 60; trial++ {
					start := Cell{Row: r.Intn(rows), Col: r.Intn(cols)}
					goal := start
					for goal == start {
						goal = Cell{Row: r.Intn(rows), Col: r.Intn(cols)}
					}
					var obstacles []Cell
					for row := 0; row < rows; row++ {
						for col := 0; col < cols; col++ {
							if c := (Cell{Row: row, Col: col}); c != start && c != goal && r.Float64() < 0.2 {
								obstacles = append(obstacles, c)
							}
						}
					}
					planner := mustNew(t, Config{
						Rows: rows, Cols: cols,
						Start: start, Goal: goal,
						Heuristic: heuristic.name,
						Obstacles: obstacles,
					}, WithCornerCutting(cornerCutting))

					path, err := planner.Plan()
					checkReplan(t, planner, path, err, cornerCutting, heuristic.shortest)
					for op := 0; op < 15; op++ {
						c := Cell{Row: r.Intn(rows), Col: r.Intn(cols)}
						switch r.Intn(3) {
						case 0:
							if c == planner.Start() || c == planner.Goal() {
								continue
							}
							path, err = planner.AddObstacles(c)
						case 1:
							path, err = planner.ClearObstacles(c)
						default:
							if len(path) < 2 {
								continue
							}
							path, err = planner.MoveTo(path[1])
						}
						checkReplan(t, planner, path, err, cornerCutting, heuristic.shortest)
					}
				}
			})
		}
	}
}
