package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdrpinto/dstar"
)

// config is everything the command line controls. Every flag falls back to a
// DSTAR_* environment variable, which may come from a .env file.
type config struct {
	Planner       dstar.Config
	Hidden        []dstar.Cell
	Radius        int
	MaxSteps      int
	MaxExpansions int
	CornerCutting bool
	JSON          bool
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("dstar", flag.ContinueOnError)

	rows := fs.Int("rows", envInt("DSTAR_ROWS", 10), "grid rows")
	cols := fs.Int("cols", envInt("DSTAR_COLS", 10), "grid columns")
	start := fs.String("start", envString("DSTAR_START", "0,0"), "start cell as row,col")
	goal := fs.String("goal", envString("DSTAR_GOAL", ""), "goal cell as row,col (default: bottom-right corner)")
	heuristic := fs.String("heuristic", envString("DSTAR_HEURISTIC", "chebyshev"), "manhattan, euclidean, chebyshev, octile or zero")
	obstacles := fs.String("obstacles", envString("DSTAR_OBSTACLES", ""), "known obstacles as row,col;row,col")
	hidden := fs.String("hidden", envString("DSTAR_HIDDEN", ""), "obstacles the agent must discover while navigating")
	radius := fs.Int("radius", envInt("DSTAR_RADIUS", 1), "sensor radius used while navigating")
	maxSteps := fs.Int("max-steps", envInt("DSTAR_MAX_STEPS", 1000), "navigation step limit")
	maxExpansions := fs.Int("max-expansions", envInt("DSTAR_MAX_EXPANSIONS", 0), "expansion cap per planning call (0: none)")
	cornerCutting := fs.Bool("corner-cutting", envBool("DSTAR_CORNER_CUTTING", false), "allow diagonal moves past obstacle corners")
	jsonOutput := fs.Bool("json", envBool("DSTAR_JSON", false), "print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		Radius:        *radius,
		MaxSteps:      *maxSteps,
		MaxExpansions: *maxExpansions,
		CornerCutting: *cornerCutting,
		JSON:          *jsonOutput,
	}
	cfg.Planner.Rows, cfg.Planner.Cols = *rows, *cols
	cfg.Planner.Heuristic = *heuristic

	var err error
	if cfg.Planner.Start, err = parseCell(*start); err != nil {
		return config{}, fmt.Errorf("start: %w", err)
	}
	if *goal == "" {
		cfg.Planner.Goal = dstar.Cell{Row: *rows - 1, Col: *cols - 1}
	} else if cfg.Planner.Goal, err = parseCell(*goal); err != nil {
		return config{}, fmt.Errorf("goal: %w", err)
	}
	if cfg.Planner.Obstacles, err = parseCells(*obstacles); err != nil {
		return config{}, fmt.Errorf("obstacles: %w", err)
	}
	if cfg.Hidden, err = parseCells(*hidden); err != nil {
		return config{}, fmt.Errorf("hidden: %w", err)
	}
	return cfg, nil
}

func (cfg config) options() []dstar.Option {
	return []dstar.Option{
		dstar.WithMaxExpansions(cfg.MaxExpansions),
		dstar.WithCornerCutting(cfg.CornerCutting),
	}
}

func parseCell(s string) (dstar.Cell, error) {
	row, col, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return dstar.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return dstar.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return dstar.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return dstar.Cell{Row: r, Col: c}, nil
}

func parseCells(s string) ([]dstar.Cell, error) {
	var cells []dstar.Cell
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCell(part)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
