package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. It is passed down explicitly.
func New(level logrus.Level) *logrus.Logger {
	return NewWithWriter(level, os.Stdout)
}

func NewWithWriter(level logrus.Level, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	l.SetLevel(level)
	l.SetOutput(w)
	return l
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	return NewWithWriter(logrus.PanicLevel, io.Discard)
}

// LogError writes one error line with the module and function that failed.
func LogError(logger logrus.FieldLogger, moduleName, funcName string, fields logrus.Fields, err error) {
	entry := logger.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error(err.Error())
}

// GinLogger is an access log middleware backed by logrus.
func GinLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"status":    c.Writer.Status(),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"client_ip": c.ClientIP(),
			"latency":   time.Since(start).String(),
		})
		if userID := c.GetString("user_id"); userID != "" {
			entry = entry.WithField("user_id", userID)
		}
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("[http] request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("[http] request rejected")
		default:
			entry.Info("[http] request served")
		}
	}
}
