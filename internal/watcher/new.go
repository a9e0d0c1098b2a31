package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
)

// DefaultSettle is how long a new file is left alone before it is read
const DefaultSettle = 500 * time.Millisecond

// New creates a Watcher over inputDir and every directory below it.
// A negative settle selects DefaultSettle.
func New(inputDir string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if settle < 0 {
		settle = DefaultSettle
	}

	w := &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   settle,
		scanned:  make(map[string]struct{}),
	}

	if err := w.addTree(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}

// addTree registers dir and all of its subdirectories
func (w *implWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}
