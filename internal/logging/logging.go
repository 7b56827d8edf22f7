// Package logging builds the logrus logger shared by the CLI, the store and
// the storage backends.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configure New.
type Options struct {
	// Level is a logrus level name. Unknown names fall back to warn.
	Level string

	// Format is "text" or "json".
	Format string

	// Debug forces the debug level regardless of Level.
	Debug bool
}

// New creates a logger writing to out.
func New(out io.Writer, opts Options) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if strings.EqualFold(opts.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
	}

	level := logrus.WarnLevel
	if opts.Level != "" {
		if lvl, err := logrus.ParseLevel(opts.Level); err == nil {
			level = lvl
		}
	}
	if opts.Debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	return log
}

// Discard returns a logger that drops everything. Used where no logger is
// injected, mostly in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// Component returns an entry tagged with the component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	if log == nil {
		log = Discard()
	}
	return log.WithField("component", name)
}
