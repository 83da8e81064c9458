package dstar

import (
	"context"
	"errors"
	"testing"
)

func TestPlanAll(t *testing.T) {
	requests := []Request{
		{ID: "open", Config: Config{Rows: 5, Cols: 5, Start: Cell{0, 0}, Goal: Cell{4, 4}, Heuristic: "chebyshev"}},
		{ID: "bad-heuristic", Config: Config{Rows: 5, Cols: 5, Start: Cell{0, 0}, Goal: Cell{4, 4}, Heuristic: "nope"}},
		{Config: Config{Rows: 3, Cols: 3, Start: Cell{0, 0}, Goal: Cell{2, 2}, Heuristic: "chebyshev", Obstacles: []Cell{{1, 1}}}},
		{ID: "walled", Config: Config{Rows: 3, Cols: 3, Start: Cell{0, 0}, Goal: Cell{2, 2}, Heuristic: "chebyshev", Obstacles: []Cell{{1, 0}, {1, 1}, {1, 2}}}},
	}

	responses := PlanAll(context.Background(), requests, WithWorkers(2))
	if len(responses) != len(requests) {
		t.Fatalf("Expected %d responses, got %d", len(requests), len(responses))
	}

	if responses[0].ID != "open" || responses[0].Err != nil || len(responses[0].Path) != 5 {
		t.Errorf("Unexpected response for open grid: %+v", responses[0])
	}
	if !errors.Is(responses[1].Err, ErrUnknownHeuristic) {
		t.Errorf("Expected ErrUnknownHeuristic, got %v", responses[1].Err)
	}
	if responses[2].ID == "" {
		t.Error("Expected a generated id")
	}
	if responses[2].Err != nil || responses[2].Stats.Moves != "3355" {
		t.Errorf("Unexpected response for obstacle grid: %+v", responses[2])
	}
	if !errors.Is(responses[3].Err, ErrNoPath) || len(responses[3].Stats.Expansions) == 0 {
		t.Errorf("Expected ErrNoPath with expansions, got %+v", responses[3])
	}
}

func TestPlanAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	requests := make([]Request, 6)
	for i := range requests {
		requests[i].Config = Config{Rows: 4, Cols: 4, Start: Cell{0, 0}, Goal: Cell{3, 3}, Heuristic: "chebyshev"}
	}
	for i, response := range PlanAll(ctx, requests, WithWorkers(3)) {
		if !errors.Is(response.Err, context.Canceled) {
			t.Errorf("Response %d: expected context.Canceled, got %v", i, response.Err)
		}
	}
}

func TestPlanAllEmpty(t *testing.T) {
	if responses := PlanAll(context.Background(), nil); len(responses) != 0 {
		t.Errorf("Expected no responses, got %d", len(responses))
	}
}
