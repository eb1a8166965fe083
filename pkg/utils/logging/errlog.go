package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrorLogOptions controls the append-only error log file
type ErrorLogOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// ErrorLog writes human readable, timestamped failure entries that can be
// examined after a sweep. It is kept apart from the operational logger.
type ErrorLog struct {
	logger *slog.Logger
	closer io.Closer
}

// NewErrorLog opens the error log file. Entries are appended and the file is
// rotated by lumberjack once it grows past MaxSizeMB.
func NewErrorLog(opts ErrorLogOptions) *ErrorLog {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	return &ErrorLog{
		logger: newErrorLogger(w),
		closer: w,
	}
}

// NewErrorLogWithWriter creates an ErrorLog on top of an arbitrary writer
func NewErrorLogWithWriter(w io.Writer) *ErrorLog {
	return &ErrorLog{logger: newErrorLogger(w)}
}

// NopErrorLog returns an ErrorLog discarding every entry
func NopErrorLog() *ErrorLog {
	return NewErrorLogWithWriter(io.Discard)
}

func newErrorLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Record appends a failure entry with the raw error text
func (l *ErrorLog) Record(msg string, err error, attrs ...any) {
	if l == nil {
		return
	}
	args := append([]any{slog.String("error", errorText(err))}, attrs...)
	l.logger.Error(msg, args...)
}

// Close closes the underlying file, if any
func (l *ErrorLog) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
