package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the global logger. Call once at startup.
func Init(level string) {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}

// GetLogger returns the global logger, initializing it with defaults if needed.
func GetLogger() *logrus.Logger {
	if log == nil {
		Init("info")
	}
	return log
}
