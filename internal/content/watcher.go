package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Reloader is implemented by Provider.
type Reloader interface {
	Reload() error
}

// Watcher reloads content when files in a directory change.
type Watcher struct {
	dir      string
	target   Reloader
	debounce time.Duration
}

// NewWatcher creates a Watcher for dir. Bursts of events within debounce
// trigger a single reload.
func NewWatcher(dir string, target Reloader, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Watcher{dir: dir, target: target, debounce: debounce}
}

// Run watches until ctx is cancelled. It returns an error only if the watcher
// could not be set up.
func (w *Watcher) Run(ctx context.Context) error {
	if _, err := os.Stat(w.dir); err != nil {
		return fmt.Errorf("content directory %s: %w", w.dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	// Add the content directory and all subdirectories to the watcher.
	err = filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return err
			}
			slog.Debug("Added directory to watcher", "path", path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add directories to watcher: %w", err)
	}

	slog.Info("Watching content directory for changes", "directory", w.dir)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			slog.Debug("Content watcher context cancelled")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Content file event", "event", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := w.target.Reload(); err != nil {
				slog.Error("Content reload failed, keeping previous content", "error", err)
				continue
			}
			slog.Info("Content reloaded", "directory", w.dir)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File system watcher error", "error", err)
		}
	}
}

// relevant reports whether event touches a content file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return doublestar.MatchUnvalidated("*.{yaml,yml}", filepath.Base(event.Name))
}
