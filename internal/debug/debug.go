// Package debug is the library's diagnostic logger. It is silent unless
// NATIVEDIALOG_DEBUG is set or a logger is installed with SetLogger.
package debug

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// EnvVar enables diagnostics when non-empty.
const EnvVar = "NATIVEDIALOG_DEBUG"

var logger atomic.Pointer[log.Logger]

func init() {
	out := io.Discard
	if os.Getenv(EnvVar) != "" {
		out = os.Stderr
	}
	logger.Store(log.New(out, "dialog: ", log.LstdFlags))
}

// SetLogger replaces the logger. A nil logger silences diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *log.Logger {
	return logger.Load()
}

// Printf logs through the current logger.
func Printf(format string, args ...any) {
	logger.Load().Printf(format, args...)
}
