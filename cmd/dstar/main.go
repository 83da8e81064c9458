package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/dstar"
	"github.com/pdrpinto/dstar/internal/logger"
)

type summary struct {
	Start        dstar.Cell   `json:"start"`
	Goal         dstar.Cell   `json:"goal"`
	Found        bool         `json:"found"`
	Path         []dstar.Cell `json:"path"`
	Moves        string       `json:"moves"`
	Expansions   int          `json:"expansions"`
	MaxQueueSize int          `json:"max_queue_size"`
	RunTime      string       `json:"run_time"`
	Steps        int          `json:"steps,omitempty"`
	KeyModifier  int          `json:"km"`
}

func main() {
	_ = godotenv.Load(".env")
	log := logger.Init()

	err := run(os.Args[1:], os.Stdout, log)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, dstar.ErrNoPath):
		log.WithError(err).Warn("Goal is unreachable")
		os.Exit(2)
	default:
		log.WithError(err).Fatal("Planning failed")
	}
}

func run(args []string, stdout io.Writer, log logrus.FieldLogger) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	planner, err := dstar.New(cfg.Planner, append(cfg.options(), dstar.WithLogger(log))...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"planner_id": planner.ID().String(),
		"grid":       fmt.Sprintf("%dx%d", cfg.Planner.Rows, cfg.Planner.Cols),
		"heuristic":  planner.Heuristic().String(),
		"obstacles":  len(cfg.Planner.Obstacles),
		"hidden":     len(cfg.Hidden),
	}).Info("Planner ready")

	if len(cfg.Hidden) > 0 {
		return navigate(cfg, planner, stdout, log)
	}

	path, planErr := planner.Plan()
	if planErr != nil && !errors.Is(planErr, dstar.ErrNoPath) {
		return planErr
	}
	if err := report(cfg, planner, path, 0, nil, stdout); err != nil {
		return err
	}
	return planErr
}

func navigate(cfg config, planner *dstar.Planner, stdout io.Writer, log logrus.FieldLogger) error {
	hidden := make(map[dstar.Cell]bool, len(cfg.Hidden))
	for _, c := range cfg.Hidden {
		hidden[c] = true
	}
	navigator := dstar.NewNavigator(planner, func(c dstar.Cell) bool { return hidden[c] }, cfg.Radius)

	var snapshot dstar.StepSnapshot
	for step := 0; step < cfg.MaxSteps && !snapshot.Done; step++ {
		var err error
		if snapshot, err = navigator.Step(); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"step":       snapshot.StepIndex,
			"agent":      snapshot.Agent.String(),
			"discovered": len(snapshot.Discovered),
			"expansions": snapshot.Expansions,
			"km":         snapshot.KeyModifier,
		}).Debug("Agent stepped")
	}

	unknown := make(map[dstar.Cell]bool, len(hidden))
	for c := range hidden {
		if !planner.IsObstacle(c) {
			unknown[c] = true
		}
	}
	if err := report(cfg, planner, snapshot.Path, snapshot.StepIndex, unknown, stdout); err != nil {
		return err
	}
	if snapshot.Done && !snapshot.Found {
		return fmt.Errorf("%w: agent stuck at %v", dstar.ErrNoPath, snapshot.Agent)
	}
	if !snapshot.Done {
		return fmt.Errorf("navigation stopped after %d steps at %v", snapshot.StepIndex, snapshot.Agent)
	}
	return nil
}

func report(cfg config, planner *dstar.Planner, path []dstar.Cell, steps int, hidden map[dstar.Cell]bool, stdout io.Writer) error {
	stats := planner.Stats()
	out := summary{
		Start:        planner.Start(),
		Goal:         planner.Goal(),
		Found:        len(path) > 0,
		Path:         path,
		Moves:        stats.Moves,
		Expansions:   len(stats.Expansions),
		MaxQueueSize: stats.MaxQueueSize,
		RunTime:      stats.RunTime.String(),
		Steps:        steps,
		KeyModifier:  planner.KeyModifier(),
	}
	if cfg.JSON {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if err := render(stdout, planner, path, hidden); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "found=%v moves=%q expansions=%d max_queue=%d run_time=%s km=%d\n",
		out.Found, out.Moves, out.Expansions, out.MaxQueueSize, out.RunTime, out.KeyModifier)
	return err
}
