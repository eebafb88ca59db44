// Package logging builds the diagnostic logger of the npmdocs CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Verbosity selects how much the CLI logs.
type Verbosity int

// Verbosity levels.
const (
	Quiet Verbosity = iota - 1
	Normal
	Verbose
)

// New returns a console logger writing to w. Quiet disables logging, Normal
// logs info and above, Verbose adds debug records with caller information.
func New(w io.Writer, v Verbosity, noColor bool) zerolog.Logger {
	if v <= Quiet {
		return zerolog.Nop()
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	logger := zerolog.New(console).With().Timestamp().Logger()
	if v >= Verbose {
		return logger.Level(zerolog.DebugLevel).With().Caller().Logger()
	}
	return logger.Level(zerolog.InfoLevel)
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
