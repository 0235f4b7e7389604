// Package logging configures the zerolog loggers used by the CLI and editor.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Level returns the minimum level for the verbosity flag.
func Level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// NewConsole returns a human-readable logger writing to out. Colour is used
// only when out is a terminal.
func NewConsole(out *os.File, verbose bool) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !term.IsTerminal(int(out.Fd())),
		TimeFormat: time.Kitchen,
	}
	return New(writer, verbose)
}

// New returns a timestamped logger writing to w.
func New(w io.Writer, verbose bool) zerolog.Logger {
	return zerolog.New(w).Level(Level(verbose)).With().Timestamp().Logger()
}

// OpenFile returns a JSON logger appending to path. The editor owns the
// terminal while it runs, so its logs go to a file instead of stderr.
func OpenFile(path string, verbose bool) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(file, verbose), file, nil
}
