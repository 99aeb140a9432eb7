package app

import (
	"fmt"
	"io"
	"os"
)

// Logger is the logging contract for packages below the CLI layer
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// quietLogger reports only warnings and errors. It is used until the CLI
// installs its leveled logger, e.g. when the validator is embedded.
type quietLogger struct {
	output io.Writer
}

func (quietLogger) Debug(string, ...interface{}) {}
func (quietLogger) Info(string, ...interface{})  {}

func (l quietLogger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(l.output, "WARN: %s\n", fmt.Sprintf(format, args...))
}

func (l quietLogger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.output, "ERROR: %s\n", fmt.Sprintf(format, args...))
}

var globalLogger Logger = quietLogger{output: os.Stderr}

// SetLogger replaces the shared logger. nil is ignored.
func SetLogger(logger Logger) {
	if logger != nil {
		globalLogger = logger
	}
}

// GetLogger returns the shared logger
func GetLogger() Logger {
	return globalLogger
}
