package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Entry

func init() {
	Init()
}

// Init configures the process-wide logger. JSON output in release mode so
// log collectors can parse fields, plain text locally.
func Init() {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetLevel(logrus.DebugLevel)
	}

	Log = l.WithField("service", "espora")
}
