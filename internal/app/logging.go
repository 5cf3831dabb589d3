package app

import (
	"log/slog"

	"github.com/showctl/cueline/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// It is pre-configured with the component tag "app" so that all log entries
// produced by this package are easily identifiable in log output. This logger
// is used throughout the app package for operational logging: warnings about
// non-critical failures (e.g. show save errors, keymap parse errors) and
// informational messages about significant state changes.
//
// The log level is controlled by the CUELINE_LOG_LEVEL environment variable
// (see the logging package for details). All output is written to stderr so
// it does not interfere with the Bubble Tea terminal UI on stdout.
var appLog = logging.New("app")

// setStatusError updates the status footer with a user-facing error message
// and simultaneously logs a structured error entry with full context.
//
// The status parameter is displayed verbatim in the UI, while the err and any
// additional key-value attrs are included only in the log entry.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
