package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger returns the diagnostics logger. It only reports warnings and
// errors unless debugging is enabled or LOG_LEVEL says otherwise.
func newLogger(s *settings, out io.Writer) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(getLogLevel(s))
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	return logrus.NewEntry(log)
}

// getLogLevel prefers PYTRANS_LOG_LEVEL, then LOG_LEVEL. Unparsable levels
// are ignored.
func getLogLevel(s *settings) logrus.Level {
	for _, strLevel := range []string{s.LogLevel, os.Getenv("LOG_LEVEL")} {
		if level, err := logrus.ParseLevel(strLevel); err == nil && strLevel != "" {
			return level
		}
	}
	if s.Debug {
		return logrus.DebugLevel
	}
	return logrus.WarnLevel
}
