// Package logging builds the structured logger shared by the binaries.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rohanliston/html5-asteroids/internal/config"
)

// New returns a logger writing to w. Unknown levels fall back to info and
// unknown formats to text.
func New(cfg config.LoggingConfig, w io.Writer) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter(cfg.Format),
		ReportTimestamp: true,
	})
}

func formatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
