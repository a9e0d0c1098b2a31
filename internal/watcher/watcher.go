package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/subtitle-lines/internal/discovery"
	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
	// scanned holds files already handled by a new-directory scan whose own
	// CREATE event may still be queued
	scanned map[string]struct{}
}

// Start handles new documents one at a time until ctx is cancelled
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.handleCreate(ctx, event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) handleCreate(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil {
		w.logger.Debug(ctx, "Ignoring vanished path %s: %v", path, err)
		return
	}

	if !info.IsDir() {
		if _, ok := w.scanned[path]; ok {
			delete(w.scanned, path)
			w.logger.Debug(ctx, "Already handled by directory scan: %s", path)
			return
		}
		w.logger.Info(ctx, "New document detected: %s", path)
		if w.settle > 0 {
			time.Sleep(w.settle)
		}
		w.handle(ctx, path)
		return
	}

	if err := w.addTree(path); err != nil {
		w.logger.Error(ctx, "Failed to watch %s: %v", path, err)
		return
	}
	// Files can land in a new directory before its watch is registered
	files, err := discovery.FindFiles(path)
	if err != nil {
		w.logger.Error(ctx, "Failed to list %s: %v", path, err)
		return
	}
	for _, f := range files {
		w.scanned[f] = struct{}{}
		w.handle(ctx, f)
	}
}

func (w *implWatcher) handle(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}
	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}
