package dstar

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Options defines parameters for planning.
type Options struct {
	Logger          logrus.FieldLogger
	MaxExpansions   int
	CornerCutting   bool
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Logger:          logrus.StandardLogger(),
		NumberOfWorkers: runtime.NumCPU(),
	}
}

func applyOptions(options []Option) Options {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.NumberOfWorkers < 1 {
		opts.NumberOfWorkers = 1
	}
	return opts
}

// WithLogger sets the logger planning runs are reported to (at debug level).
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxExpansions caps the expansions of a single planning call. Zero
// means no cap. A capped call returns ErrExpansionLimit and the next call
// resumes where it stopped.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// WithCornerCutting allows diagonal moves that pass the corner of an
// obstacle.
func WithCornerCutting(allowed bool) Option {
	return func(options *Options) { options.CornerCutting = allowed }
}

// WithWorkers specifies how many goroutines PlanAll runs.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}
