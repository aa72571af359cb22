package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to w. Unknown levels fall back to info.
func NewLogger(w io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log
}
