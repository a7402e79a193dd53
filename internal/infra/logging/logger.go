package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Production writes JSON, everything else
// writes text; an unknown level falls back to info.
func New(env, level string) *logrus.Logger {
	return newWithOutput(os.Stdout, env, level)
}

func newWithOutput(w io.Writer, env, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	if strings.EqualFold(env, "production") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}

// Discard is a logger for tests and tools that should stay quiet.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
