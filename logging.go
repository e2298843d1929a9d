package observe

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	WithField(string, interface{}) Logger
	With(map[string]interface{}) Logger

	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})

	Debug(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})
}

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// NewLogger builds a dedicated logrus logger from log.* settings.
// The logrus standard logger is left alone.
func NewLogger(conf Config) Logger {
	return NewLoggerTo(os.Stderr, conf)
}

// NewLoggerTo is NewLogger writing to out.
func NewLoggerTo(out io.Writer, conf Config) Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	switch strings.ToUpper(conf.GetStringDefault("log.level", "INFO")) {
	case "DEBUG":
		logger.SetLevel(logrus.DebugLevel)
	case "WARN":
		logger.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logger.SetLevel(logrus.ErrorLevel)
	case "FATAL":
		logger.SetLevel(logrus.FatalLevel)
	case "PANIC":
		logger.SetLevel(logrus.PanicLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	switch conf.GetStringDefault("log.formatter", "text") {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		})
	}

	return WrapLogger(logger)
}

// WrapLogger adapts an existing logrus logger.
func WrapLogger(logger *logrus.Logger) Logger {
	return &logrusLoggerWrapper{logger}
}

// DiscardLogger drops everything; sources use it unless WithLogger is given.
func DiscardLogger() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return WrapLogger(logger)
}

type logrusLoggerWrapper struct {
	*logrus.Logger
}

func (l *logrusLoggerWrapper) WithField(field string, value interface{}) Logger {
	return &logrusEntryWrapper{l.Logger.WithField(field, value)}
}

func (l *logrusLoggerWrapper) With(fields map[string]interface{}) Logger {
	return &logrusEntryWrapper{l.Logger.WithFields(fields)}
}

type logrusEntryWrapper struct {
	*logrus.Entry
}

func (e *logrusEntryWrapper) WithField(field string, value interface{}) Logger {
	return &logrusEntryWrapper{e.Entry.WithField(field, value)}
}

func (e *logrusEntryWrapper) With(fields map[string]interface{}) Logger {
	return &logrusEntryWrapper{e.Entry.WithFields(fields)}
}
