package dstar

import (
	"errors"
	"fmt"
	"slices"
)

// WorldFunc reports whether a cell is truly blocked. The navigator only learns
// about obstacles by sensing them.
type WorldFunc func(c Cell) bool

// StepSnapshot exposes the state of the navigation after one step
type StepSnapshot struct {
	Agent Cell
	// Move is the direction the agent took this step, zero when it stayed.
	Move        Direction
	Path        []Cell
	Discovered  []Cell
	Expansions  int
	KeyModifier int
	Done        bool
	Found       bool
	StepIndex   int
}

// Navigator moves an agent from its planner's start to the goal one cell at a
// time, sensing obstacles within a radius and re-planning incrementally.
type Navigator struct {
	planner *Planner
	world   WorldFunc
	radius  int

	stepCount int
	done      bool
	found     bool
}

// NewNavigator wraps a planner. A radius below 1 senses only adjacent cells.
func NewNavigator(planner *Planner, world WorldFunc, radius int) *Navigator {
	return &Navigator{planner: planner, world: world, radius: max(radius, 1)}
}

// Agent returns the current position of the agent.
func (n *Navigator) Agent() Cell { return n.planner.Start() }

// Step senses, re-plans when needed, and advances the agent by one cell.
// An unreachable goal ends the navigation with Found false rather than an
// error.
func (n *Navigator) Step() (StepSnapshot, error) {
	if n.done {
		return n.snapshot(nil, nil, 0), nil
	}
	n.stepCount++

	discovered := n.sense()
	expansions := 0
	var (
		path []Cell
		err  error
	)
	if len(discovered) > 0 {
		path, err = n.planner.AddObstacles(discovered...)
	} else {
		path, err = n.planner.Plan()
	}
	expansions += len(n.planner.stats.Expansions)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			n.done = true
			return n.snapshot(nil, discovered, expansions), nil
		}
		return StepSnapshot{StepIndex: n.stepCount}, err
	}

	if len(path) < 2 {
		n.done, n.found = true, true
		return n.snapshot(path, discovered, expansions), nil
	}

	move, ok := DirectionBetween(n.planner.Start(), path[1])
	if !ok {
		panic(fmt.Sprintf("dstar: path step %v -> %v is not a move", n.planner.Start(), path[1]))
	}
	path, err = n.planner.MoveTo(path[1])
	expansions += len(n.planner.stats.Expansions)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			n.done = true
			snapshot := n.snapshot(nil, discovered, expansions)
			snapshot.Move = move
			return snapshot, nil
		}
		return StepSnapshot{StepIndex: n.stepCount}, err
	}
	if n.planner.Start() == n.planner.Goal() {
		n.done, n.found = true, true
	}
	snapshot := n.snapshot(path, discovered, expansions)
	snapshot.Move = move
	return snapshot, nil
}

// Run steps until the navigation is done or limit steps were taken, and
// returns the cells the agent visited.
func (n *Navigator) Run(limit int) ([]Cell, bool, error) {
	trail := []Cell{n.Agent()}
	for i := 0; i < limit && !n.done; i++ {
		snapshot, err := n.Step()
		if err != nil {
			return trail, false, err
		}
		if snapshot.Agent != trail[len(trail)-1] {
			trail = append(trail, snapshot.Agent)
		}
	}
	return trail, n.found, nil
}

// sense returns the blocked cells around the agent that the planner does not
// know about yet, in row-major order.
func (n *Navigator) sense() []Cell {
	agent, goal := n.planner.Start(), n.planner.Goal()
	var discovered []Cell
	for row := agent.Row - n.radius; row <= agent.Row+n.radius; row++ {
		for col := agent.Col - n.radius; col <= agent.Col+n.radius; col++ {
			c := Cell{Row: row, Col: col}
			if c == agent || c == goal || n.planner.IsObstacle(c) {
				continue
			}
			if n.world(c) {
				discovered = append(discovered, c)
			}
		}
	}
	return discovered
}

func (n *Navigator) snapshot(path, discovered []Cell, expansions int) StepSnapshot {
	return StepSnapshot{
		Agent:       n.planner.Start(),
		Path:        slices.Clone(path),
		Discovered:  discovered,
		Expansions:  expansions,
		KeyModifier: n.planner.KeyModifier(),
		Done:        n.done,
		Found:       n.found,
		StepIndex:   n.stepCount,
	}
}
