package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger returns a stderr logger at the named level. Unknown levels
// fall back to info.
func SetupLogger(level string) *log.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger returns a logger writing to w at the named level.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.New(w)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
