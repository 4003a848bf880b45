// Package logging configures the process-wide zerolog logger used by the
// experiment driver and CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger to write human-readable,
// colorized console output to w (typically os.Stderr), matching
// spec.md §7's "reported on standard error" policy for non-fatal
// failures (load errors, infeasibility detections).
func Init(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// init gives the package a sane default (stderr, info level) so that
// code paths exercised before Init is explicitly called (tests, library
// callers that never touch the CLI) still produce readable output
// instead of zerolog's default JSON-to-stdout.
func init() {
	Init(os.Stderr, false)
}
