// Package logging configures the process-wide logrus logger.
//
// Logs always go to stderr; stdout carries the MCP protocol.
package logging

import (
	"io"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/sirupsen/logrus"
)

// Setup applies the level and format from cfg to the standard logrus logger.
// An unrecognized level falls back to info.
func Setup(cfg config.Config) {
	configure(logrus.StandardLogger(), os.Stderr, cfg)
}

func configure(l *logrus.Logger, out io.Writer, cfg config.Config) {
	l.SetOutput(out)

	if cfg.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
}
