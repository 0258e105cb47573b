package utils

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets up the standard logrus logger, which every package
// logs through via its own WithFields entry.
func ConfigureLogging(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
