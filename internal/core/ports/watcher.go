package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates the watched file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates the watched file was modified.
	OpWrite
	// OpRemove indicates the watched file was removed.
	OpRemove
	// OpRename indicates the watched file was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching a scene file for changes.
type Watcher interface {
	// Start begins watching the given file. Editors typically replace
	// files on save, so implementations watch the containing directory
	// and filter for the target path.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
