package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/triptide/go-trip-timeline/internal/util"
)

// FileEvent is a change notification for one trip file.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher emits events when trip files change on disk, backing the
// timeline watch mode.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileEvent
}

// NewFileWatcher watches the given paths. Directories are added
// recursively; events are filtered to .json files.
func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		events:  make(chan FileEvent, 100),
	}

	for _, path := range paths {
		if err := fw.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		// fsnotify tracks directories more reliably than single files;
		// editors often replace files instead of writing in place.
		return fw.watcher.Add(filepath.Dir(path))
	}

	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return fw.watcher.Add(p)
		}
		return nil
	})
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if strings.EqualFold(filepath.Ext(event.Name), ".json") {
				fw.events <- FileEvent{
					Path:      event.Name,
					Operation: event.Op.String(),
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Trip file monitoring error: " + err.Error())
		}
	}
}

// Events returns the change notification channel.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
