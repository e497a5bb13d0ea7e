// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Commands configure it once at startup.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Log.SetLevel(logrus.InfoLevel)
}

// SetLevel parses and applies a level name ("debug", "info", ...). Unknown
// names leave the level unchanged and are reported.
func SetLevel(name string) {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		Log.WithField("level", name).Warn("Unknown log level, keeping current")
		return
	}
	Log.SetLevel(lvl)
}
