// Package logger provides a coloured, prefixed logger backed by logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/beka-birhanu/maze-words/config"
	"github.com/sirupsen/logrus"
)

const timeLayout = "2006/01/02 15:04:05"

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes "[PREFIX] [LEVEL] message key=value" lines.
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger that tags every line with prefix in the given colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{log: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

// WithFields returns an entry that appends the fields to its message.
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.log.WithFields(fields)
}

// prefixFormatter renders entries in the "[APP] [INFO]" style.
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	levelColor, level := levelTag(e.Level)

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%s]%s %s[%s]%s %s",
		e.Time.Format(timeLayout),
		f.color, f.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelTag(level logrus.Level) (color, tag string) {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return config.LogErrorColor, "ERROR"
	case logrus.WarnLevel:
		return config.LogWarningColor, "WARNING"
	default:
		return config.LogInfoColor, "INFO"
	}
}
