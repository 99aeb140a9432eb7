package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the prefix printed for the level
func (l LogLevel) String() string {
	if l < LogLevelDebug || l > LogLevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// Logger writes "LEVEL: message" lines at or above a minimum level
type Logger struct {
	mu       sync.RWMutex
	minLevel LogLevel
	output   io.Writer
}

// NewLogger creates a new logger with the specified minimum level
func NewLogger(minLevel LogLevel, output io.Writer) *Logger {
	return &Logger{minLevel: minLevel, output: output}
}

// SetLevel changes the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// GetLevel returns the current minimum log level
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minLevel
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LogLevelError, format, args) }

func (l *Logger) log(level LogLevel, format string, args []interface{}) {
	l.mu.RLock()
	minLevel := l.minLevel
	output := l.output
	l.mu.RUnlock()

	if level < minLevel {
		return
	}
	fmt.Fprintf(output, "%s: %s\n", level, fmt.Sprintf(format, args...))
}

// LogLevelFromString parses a level name, defaulting to WARN
func LogLevelFromString(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "error":
		return LogLevelError
	default:
		// "warn", "warning", "" and anything unknown
		return LogLevelWarn
	}
}

var globalLogger *Logger

// InitGlobalLogger replaces the global logger
func InitGlobalLogger(level string, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}
	globalLogger = NewLogger(LogLevelFromString(level), output)
}

// GetLogger returns the global logger, creating a WARN-level one on first use
func GetLogger() *Logger {
	if globalLogger == nil {
		InitGlobalLogger("warn", os.Stderr)
	}
	return globalLogger
}
