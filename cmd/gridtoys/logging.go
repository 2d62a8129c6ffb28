package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger. Full-screen front-ends own the
// terminal, so toFile sends their logs to ~/.gridtoys/gridtoys.log instead.
// The returned close func is never nil.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		f, err := openLogFile()
		if err != nil {
			// Logging must never stop a game; drop the output instead.
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gridtoys",
	})
	return logger, closeFn, nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".gridtoys")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "gridtoys.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
