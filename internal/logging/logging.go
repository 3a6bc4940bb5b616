package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the portal logger. Unknown levels fall back to info rather than
// failing startup.
func New(level string) *logrus.Logger {
	log := logrus.New()
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}
	log.SetLevel(lv)
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FullTimestamp:   true,
	})
	return log
}
