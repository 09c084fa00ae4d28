package textatlas

import (
	"log/slog"

	"github.com/gogpu/textatlas/internal/log"
)

// SetLogger configures the logger for textatlas and all its sub-packages.
// By default the module produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by textatlas:
//   - [slog.LevelDebug]: atlas build diagnostics (page counts, scales)
//   - [slog.LevelWarn]: non-fatal issues (surface creation failure)
func SetLogger(l *slog.Logger) {
	log.Set(l)
}

// Logger returns the current logger used by textatlas. Sub-packages share
// the same logger configuration.
func Logger() *slog.Logger {
	return log.Logger()
}
