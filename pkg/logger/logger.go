package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger, set up by Init.
var Log = logrus.New()

// Init configures Log once at startup and returns it. A nil out means stderr.
func Init(level, format string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	Log = New(level, format, out)
	return Log
}

// New builds a logger. An unknown level falls back to info; format "json"
// selects the JSON formatter, anything else the text one.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
