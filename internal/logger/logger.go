package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logg = New(os.Stdout, "info")

// New создаёт JSON-логгер; неизвестный уровень превращается в info.
func New(out io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

func Get() *logrus.Logger {
	return logg
}

// Configure переключает общий логгер на уровень из конфига.
func Configure(level string) *logrus.Logger {
	logg = New(os.Stdout, level)
	return logg
}

func LogError(logger *logrus.Logger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
