// Package log builds the console logger shared by fmthook commands.
package log

import (
	"fmt"
	"io"

	cblog "github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error").
func New(w io.Writer, level string) (*cblog.Logger, error) {
	lvl, err := cblog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	logger := cblog.NewWithOptions(w, cblog.Options{
		Level:  lvl,
		Prefix: "fmthook",
	})

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *cblog.Logger {
	return cblog.New(io.Discard)
}
