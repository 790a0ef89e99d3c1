package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/logger"
)

// DefaultDebounce is how long the watcher waits for a burst of editor writes
// to settle before reporting a change.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports edits to configuration, vocabulary and template files so a
// long-running process can rebuild its engine without restarting.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	onChange func(paths []string)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a watcher over the given directories. onChange receives
// the sorted, de-duplicated paths that changed during one debounce window.
func NewWatcher(onChange func(paths []string), dirs []string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		dirs:     dirs,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch blocks until ctx is cancelled. Directories that do not exist are
// skipped; it is an error if none can be watched.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	watched := 0
	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debug("watcher: skipping missing directory %s", dir)
				continue
			}
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("watch: no directories to watch: %w", os.ErrNotExist)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path, relevant := handleEvent(event)
			if !relevant {
				continue
			}
			logger.Debug("watcher: %s", logger.Fields("path", path, "op", event.Op.String()))
			pending[path] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]struct{})
			w.onChange(paths)
		}
	}
}

// handleEvent filters raw filesystem events down to edits the engine cares
// about: config.toml, vocabulary overrides and template files. Chmod-only
// events and hidden or editor swap files are ignored.
func handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return "", false
	}

	switch {
	case base == "config.toml", IsVocabularyFile(base):
		return event.Name, true
	case filepath.Ext(base) == ".txt":
		return event.Name, true
	default:
		return "", false
	}
}
