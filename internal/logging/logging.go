package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const Prefix = "csv-import-guard"

// DebugFile receives debug logs while a full-screen UI owns the terminal.
const DebugFile = "csv-import-guard.log"

// New builds the application logger. Without debug only warnings and errors
// are written.
func New(w io.Writer, debug bool) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          Prefix,
	}
	level := log.WarnLevel
	if debug {
		opts.ReportCaller = true
		opts.TimeFormat = time.Kitchen
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, opts)
	logger.SetLevel(level)
	return logger
}

// ToFile truncates path and returns a debug logger writing into it. The
// returned close function must be called once logging is done.
func ToFile(fsys afero.Fs, path string) (*log.Logger, func() error, error) {
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("create debug log file: %w", err)
	}
	return New(f, true), f.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// LogMessage records a bubbletea message at debug level.
func LogMessage(l *log.Logger, msg tea.Msg) {
	if l.GetLevel() > log.DebugLevel {
		return
	}
	l.Debug("Message received",
		"type", fmt.Sprintf("%T", msg),
		"content", fmt.Sprintf("%+v", msg),
	)
}

// Testing Helper - NewTestLogger creates a logger that writes to a buffer for testing
func NewTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return logger, &buf
}
