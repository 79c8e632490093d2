package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/watchman/internal/model"
)

// DefaultDebounce is how long the watcher waits for more events before firing.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher calls a handler whenever a watched file changes.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange after each debounced
	// burst of writes to path.
	Watch(ctx context.Context, path m.Path, onChange func()) error
}

type fsFileWatcher struct {
	debounce time.Duration
	logger   *slog.Logger
}

// NewFileWatcher constructs an fsnotify-backed FileWatcher. A non-positive
// debounce uses DefaultDebounce.
func NewFileWatcher(debounce time.Duration, logger *slog.Logger) FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &fsFileWatcher{debounce: debounce, logger: logger}
}

// Watch observes the file's directory rather than the file itself, so
// editors that save by rename-and-replace keep triggering events.
func (w *fsFileWatcher) Watch(ctx context.Context, path m.Path, onChange func()) error {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != abs {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("line set changed", slog.String("path", abs), slog.String("op", event.Op.String()))
				timer.Reset(w.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", slog.String("path", abs), slog.Any("error", err))

		case <-timer.C:
			onChange()
		}
	}
}
