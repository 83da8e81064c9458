package dstar

import "errors"

var (
	// ErrInvalidDimensions is returned for a grid with no rows or no columns.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a cell lies outside the grid.
	ErrOutOfBounds = errors.New("cell outside grid")
	// ErrObstacleEndpoint is returned when the start or goal would be an obstacle.
	ErrObstacleEndpoint = errors.New("start or goal is an obstacle")
	// ErrUnknownHeuristic is returned for a heuristic name that is not registered.
	ErrUnknownHeuristic = errors.New("unknown heuristic")
	// ErrNoPath is returned when the goal cannot be reached from the start.
	ErrNoPath = errors.New("no path found")
	// ErrExpansionLimit is returned when planning stopped at the expansion cap
	// before the start became consistent. Calling Plan again resumes the search.
	ErrExpansionLimit = errors.New("expansion limit reached")
)
