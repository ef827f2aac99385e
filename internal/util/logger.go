package util

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// ParseLogLevel maps a level string to a LogLevel; unknown values fall
// back to info.
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogEntry is one structured log record. The file sink persists it as a
// JSON line; the console sink renders it as text.
type LogEntry struct {
	Time    time.Time              `json:"time"`
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Sink is a log destination.
type Sink interface {
	Write(entry LogEntry) error
	Close() error
}

// Logger fans structured entries out to its sinks.
type Logger struct {
	mu    sync.RWMutex
	level LogLevel
	sinks []Sink
}

// LoggerOptions configures the logging destinations. The log file always
// receives JSON lines so the records stay machine-readable; the console
// mirror is human-oriented text, enabled in debug mode.
type LoggerOptions struct {
	Level           string
	FilePath        string
	ConsoleToStderr bool
}

// NewLogger builds a logger from options. At least one destination must
// be configured; a file path whose directory cannot be created is an
// error, not a panic, so startup can surface it to the user.
func NewLogger(opts LoggerOptions) (*Logger, error) {
	logger := &Logger{level: ParseLogLevel(opts.Level)}

	if opts.ConsoleToStderr {
		logger.sinks = append(logger.sinks, newConsoleSink())
	}

	if opts.FilePath != "" {
		sink, err := newFileSink(opts.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", opts.FilePath, err)
		}
		logger.sinks = append(logger.sinks, sink)
	}

	if len(logger.sinks) == 0 {
		return nil, errors.New("no log destination configured")
	}

	return logger, nil
}

func (l *Logger) write(level LogLevel, msg string, fields map[string]interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	entry := LogEntry{
		Time:    time.Now(),
		Level:   levelNames[level],
		Message: msg,
		Fields:  fields,
	}

	for _, sink := range l.sinks {
		if err := sink.Write(entry); err != nil {
			log.Printf("Failed to write log entry: %v", err)
		}
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.write(LevelDebug, msg, nil)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.write(LevelInfo, msg, nil)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.write(LevelError, msg, nil)
}

// WithFields logs one info entry carrying structured fields, for records
// that downstream tooling filters on.
func (l *Logger) WithFields(msg string, fields map[string]interface{}) {
	l.write(LevelInfo, msg, fields)
}

// Close flushes and closes all sinks.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
