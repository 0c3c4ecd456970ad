// Package logging builds the session logger. The terminal belongs to the
// TUI, so log output goes to a rotating file or nowhere.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log sink.
type Options struct {
	Path       string // empty disables logging
	Level      string // debug, info, warn, error
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions returns rotation settings for a log file at path.
func DefaultOptions(path string) Options {
	return Options{
		Path:       path,
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// Session is a logger tagged with a fresh session id.
type Session struct {
	*log.Logger
	ID   string
	sink io.Closer
}

// New opens the log sink and returns a session logger.
// Call Close when the session ends.
func New(opts Options) (*Session, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		var err error
		if level, err = log.ParseLevel(opts.Level); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	var (
		w    io.Writer = io.Discard
		sink io.Closer
	)
	if opts.Path != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		w, sink = lj, lj
	}

	id := uuid.NewString()
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pitcourse",
		Level:           level,
	}).With("session", id)

	return &Session{Logger: logger, ID: id, sink: sink}, nil
}

// Close flushes and closes the log file, if any.
func (s *Session) Close() error {
	if s.sink == nil {
		return nil
	}
	if err := s.sink.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}
