package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLogLevel("WARN"))
	assert.Equal(t, LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LevelError, ParseLogLevel("error"))
	assert.Equal(t, LevelInfo, ParseLogLevel("info"))
	assert.Equal(t, LevelInfo, ParseLogLevel("bogus"))
}

func TestNewLoggerRequiresDestination(t *testing.T) {
	_, err := NewLogger(LoggerOptions{Level: "info"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no log destination")
}

func TestNewLoggerUnwritableFilePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// The parent "directory" is a regular file, so the sink cannot open.
	_, err := NewLogger(LoggerOptions{FilePath: filepath.Join(blocker, "logs", "app.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestFileSinkWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := NewLogger(LoggerOptions{Level: "debug", FilePath: path})
	require.NoError(t, err)

	logger.Info("itinerary loaded")
	logger.WithFields("trip parsed", map[string]interface{}{"source": "kyoto.json"})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first, second LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, sonic.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "INFO", first.Level)
	assert.Equal(t, "itinerary loaded", first.Message)
	assert.False(t, first.Time.IsZero())

	assert.Equal(t, "trip parsed", second.Message)
	assert.Equal(t, "kyoto.json", second.Fields["source"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger(LoggerOptions{Level: "warn", FilePath: path})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Infof("also %s", "dropped")
	logger.Warnf("kept: %d", 1)
	logger.Error("kept too")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "kept: 1")
	assert.Contains(t, lines[1], "kept too")
}

func TestRenderText(t *testing.T) {
	entry := LogEntry{
		Time:    time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Level:   "INFO",
		Message: "trip parsed",
		Fields:  map[string]interface{}{"source": "kyoto.json", "days": 3},
	}

	assert.Equal(t,
		"2026/03/02 09:30:00 [INFO] trip parsed days=3 source=kyoto.json",
		renderText(entry))

	entry.Fields = nil
	assert.Equal(t, "2026/03/02 09:30:00 [INFO] trip parsed", renderText(entry))
}
