package util

import "sync"

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// InitLogger configures the process-wide logger once; later calls are
// no-ops. The error from the first call is returned so startup can fail
// cleanly when the log file is unwritable.
func InitLogger(logLevel, logFile string, debugToConsole bool) error {
	var err error
	loggerOnce.Do(func() {
		globalLogger, err = NewLogger(LoggerOptions{
			Level:           logLevel,
			FilePath:        logFile,
			ConsoleToStderr: debugToConsole,
		})
	})
	return err
}

// The package-level helpers are safe before InitLogger; they drop entries
// until a logger exists.

func LogDebug(msg string) {
	if globalLogger != nil {
		globalLogger.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

func LogInfo(msg string) {
	if globalLogger != nil {
		globalLogger.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if globalLogger != nil {
		globalLogger.Error(msg)
	}
}

func LogWithFields(msg string, fields map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.WithFields(msg, fields)
	}
}
