package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Reporter is the logging surface the scraping components depend on
type Reporter interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Logger wraps standard log with level-based output
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger

	closer io.Closer
}

// NewLogger creates a logger writing timestamped, levelled lines to w
func NewLogger(w io.Writer) *Logger {
	flags := log.LstdFlags | log.Lmsgprefix
	return &Logger{
		info:  log.New(w, "[INFO]  ", flags),
		warn:  log.New(w, "[WARN]  ", flags),
		error: log.New(w, "[ERROR] ", flags),
	}
}

// NewFileLogger appends to the log file at path, mirroring to stdout when echo is set
func NewFileLogger(path string, echo bool) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var w io.Writer = file
	if echo {
		w = io.MultiWriter(file, os.Stdout)
	}

	l := NewLogger(w)
	l.closer = file
	return l, nil
}

// Close releases the underlying log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.info.Printf(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.warn.Printf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.error.Printf(msg, args...)
}
