package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once for every document that appears under the watched tree
type EventHandler func(ctx context.Context, filePath string) error
