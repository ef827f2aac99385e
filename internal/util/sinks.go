package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// consoleSink renders entries as single text lines on stderr, keeping the
// debug mirror readable next to the rendered output on stdout.
type consoleSink struct {
	mu     sync.Mutex
	writer io.Writer
}

func newConsoleSink() *consoleSink {
	return &consoleSink{writer: os.Stderr}
}

func (c *consoleSink) Write(entry LogEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintln(c.writer, renderText(entry))
	return err
}

func (c *consoleSink) Close() error {
	return nil
}

// fileSink appends entries as JSON lines. The parent directory is created
// on demand so a fresh install needs no setup step.
type fileSink struct {
	mu   sync.Mutex
	file *os.File
}

func newFileSink(path string) (*fileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &fileSink{file: file}, nil
}

func (f *fileSink) Write(entry LogEntry) error {
	data, err := sonic.Marshal(entry)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	_, err = fmt.Fprintln(f.file, string(data))
	return err
}

func (f *fileSink) Close() error {
	return f.file.Close()
}

// renderText lays an entry out as "timestamp [LEVEL] message k=v ...",
// with fields sorted so lines stay diffable.
func renderText(entry LogEntry) string {
	output := fmt.Sprintf("%s [%s] %s",
		entry.Time.Format("2006/01/02 15:04:05"), entry.Level, entry.Message)

	if len(entry.Fields) == 0 {
		return output
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
	}
	return output + " " + strings.Join(pairs, " ")
}
