// Package logger sets up charmbracelet/log for the keyboard commands.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a charm log writing to w that respects the global log level.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Setup points the default logger at w. Debug mode logs everything with
// timestamps; otherwise only warnings and errors are shown.
func Setup(w io.Writer, debug bool) {
	log.SetOutput(w)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}
