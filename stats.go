package dstar

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Stats describes the last planning call.
type Stats struct {
	RunID        uuid.UUID
	MaxQueueSize int
	// Expansions lists popped cells in expansion order.
	Expansions []Cell
	// Path runs from start to goal inclusive; empty when no path was found.
	Path []Cell
	// Moves is Path written as direction symbols.
	Moves   string
	RunTime time.Duration
}

func (s *Stats) reset() {
	s.RunID = uuid.New()
	s.MaxQueueSize = 0
	s.Expansions = s.Expansions[:0]
	s.Path = nil
	s.Moves = ""
	s.RunTime = 0
}

func (s Stats) clone() Stats {
	s.Expansions = slices.Clone(s.Expansions)
	s.Path = slices.Clone(s.Path)
	return s
}
