package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var ginOnce sync.Once

// InitLogger builds the logrus entry used by the http layer. The first call
// also decides gin's mode: debug level routes gin's own output into the
// logger, anything else silences it.
func InitLogger(logLevel string, node string) *logrus.Entry {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).Error("Error parsing log level, using: info")
		level = logrus.InfoLevel
	}

	formattedLogger := logrus.New()
	formattedLogger.Level = level
	formattedLogger.SetReportCaller(true)
	formattedLogger.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return fmt.Sprintf("%s()", filepath.Base(f.Function)), fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	}
	log := logrus.NewEntry(formattedLogger).WithField("node", node)

	ginOnce.Do(func() {
		if gin.Mode() == gin.TestMode {
			return
		}
		if level == logrus.DebugLevel {
			gin.DefaultWriter = log.Writer()
			gin.SetMode(gin.DebugMode)
		} else {
			gin.DefaultWriter = io.Discard
			gin.SetMode(gin.ReleaseMode)
		}
	})

	return log
}

// Discard returns an entry that drops everything, for tests.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard
	return logrus.NewEntry(l)
}
