package config

import (
	"log/slog"

	"github.com/secmon-lab/memsweep/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ErrorLog holds configuration of the file collecting per member failures
type ErrorLog struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Flags returns CLI flags for ErrorLog configuration
func (e *ErrorLog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "error-log",
			Usage:       "File receiving failed removals, empty to disable",
			Category:    "Logging",
			Value:       "error.log",
			Sources:     cli.EnvVars("MEMSWEEP_ERROR_LOG"),
			Destination: &e.Path,
		},
		&cli.IntFlag{
			Name:        "error-log-max-size",
			Usage:       "Rotate the error log after this many megabytes",
			Category:    "Logging",
			Value:       10,
			Sources:     cli.EnvVars("MEMSWEEP_ERROR_LOG_MAX_SIZE"),
			Destination: &e.MaxSizeMB,
		},
		&cli.IntFlag{
			Name:        "error-log-max-backups",
			Usage:       "Number of rotated error logs to keep, 0 keeps all",
			Category:    "Logging",
			Value:       3,
			Sources:     cli.EnvVars("MEMSWEEP_ERROR_LOG_MAX_BACKUPS"),
			Destination: &e.MaxBackups,
		},
	}
}

// Configure opens the error log
func (e *ErrorLog) Configure() *logging.ErrorLog {
	if e.Path == "" {
		return logging.NopErrorLog()
	}
	return logging.NewErrorLog(logging.ErrorLogOptions{
		Path:       e.Path,
		MaxSizeMB:  e.MaxSizeMB,
		MaxBackups: e.MaxBackups,
	})
}

// LogValue returns structured log value
func (e ErrorLog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", e.Path),
		slog.Int("max_size_mb", e.MaxSizeMB),
		slog.Int("max_backups", e.MaxBackups),
	)
}
