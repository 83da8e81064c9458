// Package logger configures the logrus logger shared by the binaries.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init, with logrus
// defaults.
var Log = logrus.New()

// Init configures Log from the environment and returns it.
//
// LOG_LEVEL picks the level ("info" when unset or invalid; "debug" shows
// every planning run). LOG_FORMAT=json switches to JSON output, anything
// else gives colored text.
func Init() *logrus.Logger {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stderr)
	return Log
}
