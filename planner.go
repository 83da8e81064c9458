package dstar

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Config describes the world a Planner searches.
type Config struct {
	Rows      int
	Cols      int
	Start     Cell
	Goal      Cell
	Heuristic string
	Obstacles []Cell
}

// Planner searches backward from the goal and keeps its cost field between
// calls, so re-planning after a change only revisits the cells it affects.
type Planner struct {
	id        uuid.UUID
	grid      *Grid
	queue     *PriorityQueue
	start     Cell
	goal      Cell
	heuristic Heuristic
	hfunc     HeuristicFunc
	// km is added to every key computed after the agent moved; it never
	// decreases.
	km int
	// epoch counts start positions; a cell whose H was computed in an
	// earlier epoch recomputes it on next use.
	epoch   int
	options Options
	log     logrus.FieldLogger
	stats   Stats
}

// New validates cfg and returns a planner seeded with the goal. No search
// runs until Plan is called.
func New(cfg Config, options ...Option) (*Planner, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	heuristic, err := ParseHeuristic(cfg.Heuristic)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(cfg.Rows, cfg.Cols)
	for _, endpoint := range []Cell{cfg.Start, cfg.Goal} {
		if !grid.Valid(endpoint) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, endpoint, cfg.Rows, cfg.Cols)
		}
	}
	for _, obstacle := range cfg.Obstacles {
		if !grid.Valid(obstacle) {
			return nil, fmt.Errorf("%w: obstacle %v in %dx%d grid", ErrOutOfBounds, obstacle, cfg.Rows, cfg.Cols)
		}
		if obstacle == cfg.Start || obstacle == cfg.Goal {
			return nil, fmt.Errorf("%w: %v", ErrObstacleEndpoint, obstacle)
		}
		grid.At(obstacle).Bad = true
	}

	opts := applyOptions(options)
	id := uuid.New()
	p := &Planner{
		id:        id,
		grid:      grid,
		queue:     NewPriorityQueue(),
		start:     cfg.Start,
		goal:      cfg.Goal,
		heuristic: heuristic,
		hfunc:     heuristic.Func(),
		epoch:     1,
		options:   opts,
		log:       opts.Logger.WithField("planner_id", id.String()),
	}
	p.initialize()
	p.stats.reset()
	return p, nil
}

func (p *Planner) ID() uuid.UUID        { return p.id }
func (p *Planner) Start() Cell          { return p.start }
func (p *Planner) Goal() Cell           { return p.goal }
func (p *Planner) Rows() int            { return p.grid.Rows() }
func (p *Planner) Cols() int            { return p.grid.Cols() }
func (p *Planner) Heuristic() Heuristic { return p.heuristic }

// KeyModifier returns the accumulated key offset km.
func (p *Planner) KeyModifier() int { return p.km }

// QueueLen returns the number of cells waiting to be expanded.
func (p *Planner) QueueLen() int { return p.queue.Len() }

// Frontier returns the cells waiting to be expanded, in heap order.
func (p *Planner) Frontier() []Cell { return p.queue.Cells() }

// Stats returns a copy of the statistics of the last planning call.
func (p *Planner) Stats() Stats { return p.stats.clone() }

// Path returns a copy of the last extracted path.
func (p *Planner) Path() []Cell { return slices.Clone(p.stats.Path) }

// State returns a copy of the state of c.
func (p *Planner) State(c Cell) (LpState, bool) {
	if !p.grid.Valid(c) {
		return LpState{}, false
	}
	p.heuristicOf(c)
	return *p.grid.At(c), true
}

// IsObstacle reports whether c is known to be impassable. Cells outside the
// grid count as obstacles.
func (p *Planner) IsObstacle(c Cell) bool {
	return !p.grid.Valid(c) || p.grid.At(c).Bad
}

// Plan restores consistency from the current start and extracts a path.
// It returns ErrNoPath when the goal is unreachable and ErrExpansionLimit
// when the expansion cap stopped the search early.
func (p *Planner) Plan() ([]Cell, error) {
	p.stats.reset()
	began := time.Now()

	err := p.computeShortestPath(false)
	if err == nil {
		err = p.extractPath()
	}
	if errors.Is(err, errBrokenDescent) {
		// The start settled on a field an overestimating heuristic left
		// partly stale. A fully drained queue leaves every cell consistent.
		p.log.WithError(err).Debug("draining queue before extracting again")
		if err = p.computeShortestPath(true); err == nil {
			if err = p.extractPath(); errors.Is(err, errBrokenDescent) {
				panic(fmt.Sprintf("dstar: %v with an empty queue", err))
			}
		}
	}
	p.stats.RunTime = time.Since(began)

	entry := p.log.WithFields(logrus.Fields{
		"run_id":     p.stats.RunID.String(),
		"start":      p.start.String(),
		"goal":       p.goal.String(),
		"expansions": len(p.stats.Expansions),
		"max_queue":  p.stats.MaxQueueSize,
		"km":         p.km,
		"run_time":   p.stats.RunTime,
	})
	if err != nil {
		entry.WithError(err).Debug("planning finished without a path")
		return nil, err
	}
	entry.WithField("path_len", len(p.stats.Path)-1).Debug("planning finished")
	return p.Path(), nil
}

// AddObstacles marks cells as impassable and re-plans. Cells that are
// already obstacles are ignored. Nothing changes if any cell is rejected.
func (p *Planner) AddObstacles(cells ...Cell) ([]Cell, error) {
	for _, c := range cells {
		if !p.grid.Valid(c) {
			return nil, fmt.Errorf("%w: obstacle %v", ErrOutOfBounds, c)
		}
		if c == p.start || c == p.goal {
			return nil, fmt.Errorf("%w: %v", ErrObstacleEndpoint, c)
		}
	}
	p.setObstacles(cells, true)
	return p.Plan()
}

// ClearObstacles makes cells passable again and re-plans.
func (p *Planner) ClearObstacles(cells ...Cell) ([]Cell, error) {
	for _, c := range cells {
		if !p.grid.Valid(c) {
			return nil, fmt.Errorf("%w: obstacle %v", ErrOutOfBounds, c)
		}
	}
	p.setObstacles(cells, false)
	return p.Plan()
}

// MoveTo makes c the new start and re-plans from it.
func (p *Planner) MoveTo(c Cell) ([]Cell, error) {
	if !p.grid.Valid(c) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, c)
	}
	if p.grid.At(c).Bad {
		return nil, fmt.Errorf("%w: %v", ErrObstacleEndpoint, c)
	}
	if c != p.start {
		p.km += p.hfunc(p.start, c)
		p.start = c
		p.epoch++
	}
	return p.Plan()
}

// heuristicOf returns h(start, c), computing it at most once per start.
func (p *Planner) heuristicOf(c Cell) int {
	state := p.grid.At(c)
	if state.hEpoch != p.epoch {
		state.H = p.hfunc(p.start, c)
		state.hEpoch = p.epoch
	}
	return state.H
}

func (p *Planner) initialize() {
	p.queue.Reset()
	p.km = 0
	p.grid.Each(func(_ Cell, state *LpState) {
		state.G = Infinity
		state.RHS = Infinity
	})
	p.grid.At(p.goal).RHS = 0
	p.queue.Push(p.goal, p.key(p.goal))
}

func (p *Planner) setObstacles(cells []Cell, bad bool) {
	changed := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if state := p.grid.At(c); state.Bad != bad {
			state.Bad = bad
			changed = append(changed, c)
		}
	}
	// Diagonal edges between two neighbours of a changed cell may change too,
	// so every neighbour is refreshed, not only those adjacent by edge.
	for _, c := range changed {
		p.updateVertex(c)
		for _, n := range p.grid.Neighbours(c) {
			if !p.grid.At(n).Bad {
				p.updateVertex(n)
			}
		}
	}
}

func (p *Planner) key(c Cell) Key {
	state := p.grid.At(c)
	return keyOf(state.G, state.RHS, p.heuristicOf(c), p.km)
}

// cost is the price of moving from a to the adjacent cell b in direction d.
func (p *Planner) cost(a, b Cell, d Direction) int {
	if p.grid.At(a).Bad || p.grid.At(b).Bad {
		return Infinity
	}
	if d.Diagonal() && !p.options.CornerCutting {
		if p.grid.At(Cell{Row: a.Row, Col: b.Col}).Bad || p.grid.At(Cell{Row: b.Row, Col: a.Col}).Bad {
			return Infinity
		}
	}
	return 1
}

// lookahead is the cheapest cost to the goal through one of c's neighbours.
func (p *Planner) lookahead(c Cell) int {
	best := Infinity
	for _, direction := range Directions {
		next := c.Step(direction)
		if !p.grid.Valid(next) {
			continue
		}
		if total := add(p.cost(c, next, direction), p.grid.At(next).G); total < best {
			best = total
		}
	}
	return best
}

func (p *Planner) updateVertex(c Cell) {
	state := p.grid.At(c)
	if c != p.goal {
		state.RHS = p.lookahead(c)
	}
	if state.Consistent() {
		p.queue.Remove(c)
		return
	}
	p.queue.Push(c, p.key(c))
}

func (p *Planner) updatePassableNeighbours(c Cell) {
	for _, n := range p.grid.Neighbours(c) {
		if !p.grid.At(n).Bad {
			p.updateVertex(n)
		}
	}
}

func (p *Planner) startSettled() bool {
	state := p.grid.At(p.start)
	return state.Consistent() && !p.queue.TopKey().Less(p.key(p.start))
}

// computeShortestPath expands cells until the start is settled, or until the
// queue is empty when drain is set.
func (p *Planner) computeShortestPath(drain bool) error {
	for p.queue.Len() > 0 && (drain || !p.startSettled()) {
		if p.options.MaxExpansions > 0 && len(p.stats.Expansions) >= p.options.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, len(p.stats.Expansions))
		}
		p.stats.MaxQueueSize = max(p.stats.MaxQueueSize, p.queue.Len())

		u, stored := p.queue.PopMin()
		p.stats.Expansions = append(p.stats.Expansions, u)
		state := p.grid.At(u)

		switch fresh := p.key(u); {
		case stored.Less(fresh):
			// Queued before the agent moved; re-key and try again later.
			p.queue.Push(u, fresh)
		case state.G > state.RHS:
			state.G = state.RHS
			p.updatePassableNeighbours(u)
		default:
			state.G = Infinity
			p.updateVertex(u)
			p.updatePassableNeighbours(u)
		}
	}
	return nil
}

// errBrokenDescent reports a path cell whose g does not follow from its
// neighbours. It never leaves the package.
var errBrokenDescent = errors.New("broken cost descent")

// extractPath walks down the cost field from start to goal. Every cell on the
// way must be consistent and its g must equal the step cost plus the g of the
// next cell, so the walk strictly descends and always ends at the goal.
func (p *Planner) extractPath() error {
	if p.grid.At(p.start).G >= Infinity {
		return fmt.Errorf("%w: %v -> %v", ErrNoPath, p.start, p.goal)
	}

	path := []Cell{p.start}
	moves := make([]byte, 0, 16)
	limit := p.grid.Rows() * p.grid.Cols()
	for current := p.start; current != p.goal; {
		if len(path) > limit {
			panic(fmt.Sprintf("dstar: path from %v exceeds %d cells", p.start, limit))
		}
		state := p.grid.At(current)
		if !state.Consistent() {
			return fmt.Errorf("%w: %v has g=%d rhs=%d", errBrokenDescent, current, state.G, state.RHS)
		}
		best, bestDirection, bestCost := current, Direction(0), Infinity
		for _, direction := range Directions {
			next := current.Step(direction)
			if !p.grid.Valid(next) {
				continue
			}
			if total := add(p.cost(current, next, direction), p.grid.At(next).G); total < bestCost {
				best, bestDirection, bestCost = next, direction, total
			}
		}
		if bestCost >= Infinity || bestCost != state.G {
			return fmt.Errorf("%w: %v has g=%d but its best step costs %d", errBrokenDescent, current, state.G, bestCost)
		}
		path = append(path, best)
		moves = append(moves, byte(bestDirection))
		current = best
	}

	p.stats.Path = path
	p.stats.Moves = string(moves)
	return nil
}
