package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// newLogger builds a zerolog.Logger writing to stderr, using
// zerolog.ConsoleWriter for human-friendly colorized output when
// stderr is attached to a terminal, and plain JSON lines otherwise
// (the shape a log aggregator expects when the binary runs
// non-interactively).
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = os.Stderr
	if term.IsTerminal(int(os.Stderr.Fd())) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
