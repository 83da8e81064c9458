package dstar

import (
	"errors"
	"testing"
)

func TestParseHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		want    Heuristic
		wantErr bool
	}{
		{"chebyshev", Chebyshev, false},
		{"Manhattan", Manhattan, false},
		{" euclidean ", Euclidean, false},
		{"OCTILE", Octile, false},
		{"zero", Zero, false},
		{"dijkstra", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHeuristic(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownHeuristic) {
				t.Errorf("ParseHeuristic(%q) error = %v, want ErrUnknownHeuristic", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHeuristic(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
}

func TestHeuristicValues(t *testing.T) {
	from, to := Cell{0, 0}, Cell{3, 4}
	tests := []struct {
		heuristic Heuristic
		want      int
	}{
		{Chebyshev, 4},
		{Manhattan, 7},
		{Euclidean, 5},
		{Octile, 5},
		{Zero, 0},
	}
	for _, tt := range tests {
		fn := tt.heuristic.Func()
		if got := fn(from, to); got != tt.want {
			t.Errorf("%s(%v, %v) = %d, want %d", tt.heuristic, from, to, got, tt.want)
		}
		if got := fn(to, from); got != tt.want {
			t.Errorf("%s is not symmetric: got %d", tt.heuristic, got)
		}
	}
}
