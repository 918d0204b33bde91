// Package logger configures logrus for an MCP server: stdout belongs to the
// protocol stream, so all logging goes to stderr.
package logger

import (
	"io"
	stdlog "log"
	"os"

	"github.com/sirupsen/logrus"
)

// Entry and Fields alias the logrus types so callers don't import logrus directly.
type Entry = logrus.Entry
type Fields = logrus.Fields

// New returns a logger entry writing to stderr at the given level.
// Unknown level strings fall back to info.
func New(level string) *Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return logrus.NewEntry(l)
}

// StdLogger adapts an entry to a *log.Logger for libraries that require one.
// Lines written to it come out at error level.
func StdLogger(e *Entry) *stdlog.Logger {
	return stdlog.New(e.WriterLevel(logrus.ErrorLevel), "", 0)
}

// Discard returns a logger that drops everything; used in tests.
func Discard() *Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
