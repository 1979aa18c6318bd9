package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/targetcheck/internal/logfields"
)

// Watcher monitors filesystem paths and invokes a callback after a debounce
// window. Directories are watched wholesale; file paths are watched through
// their parent directory and filtered to the exact path, which survives
// editors that replace files on save. Parents of watched directories are
// watched too, so a directory removed and recreated mid-session is picked up
// again.
type Watcher struct {
	dirs         []string
	files        map[string]struct{}
	onChange     func(context.Context)
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	stopChan     chan struct{}
	stopOnce     sync.Once
	triggerChan  chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher over the given paths. Paths naming existing
// directories are watched wholesale; all other paths are treated as exact
// files (or directories yet to appear).
func NewWatcher(paths []string, debounce time.Duration, onChange func(context.Context)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher requires a change callback")
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		files:        make(map[string]struct{}),
		onChange:     onChange,
		watcher:      fsw,
		stopChan:     make(chan struct{}),
		triggerChan:  make(chan struct{}, 1),
		debounceTime: debounce,
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to resolve watch path %q: %w", p, err)
		}
		if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
			w.dirs = append(w.dirs, abs)
			continue
		}
		w.files[abs] = struct{}{}
	}

	return w, nil
}

// Start registers the watch paths and begins dispatching events.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	watchSet := make(map[string]struct{})
	for _, dir := range w.dirs {
		watchSet[dir] = struct{}{}
		// The parent sees the directory itself being removed or recreated.
		watchSet[filepath.Dir(dir)] = struct{}{}
	}
	for f := range w.files {
		watchSet[filepath.Dir(f)] = struct{}{}
	}

	for path := range watchSet {
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	slog.Info("Starting filesystem watcher",
		slog.Int("dirs", len(w.dirs)), slog.Int("files", len(w.files)))

	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)

	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopOnce.Do(func() {
		close(w.stopChan)
		if w.watcher != nil {
			if err := w.watcher.Close(); err != nil {
				slog.Error("Error closing file watcher", logfields.Error(err))
			}
		}
	})
	return nil
}

// watchLoop filters raw filesystem events down to relevant ones.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.refreshWatch(event)
			slog.Debug("Filesystem change detected",
				logfields.Path(event.Name), slog.String("op", event.Op.String()))
			w.trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Filesystem watcher error", logfields.Error(err))
		}
	}
}

// debounceLoop coalesces bursts of triggers into one callback.
func (w *Watcher) debounceLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.triggerChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				w.onChange(ctx)
			})
		}
	}
}

// trigger requests a debounced callback without blocking.
func (w *Watcher) trigger() {
	select {
	case w.triggerChan <- struct{}{}:
	default:
		// Callback already pending
	}
}

// relevant reports whether an event path belongs to a watched dir or file.
func (w *Watcher) relevant(name string) bool {
	if _, ok := w.files[name]; ok {
		return true
	}
	dir := filepath.Dir(name)
	for _, d := range w.dirs {
		if name == d || dir == d {
			return true
		}
	}
	return false
}

// refreshWatch re-arms watches for tracked paths that (re)appear as
// directories: fsnotify drops a watch silently when its directory is
// removed. Only called from watchLoop, which also owns dirs and files.
func (w *Watcher) refreshWatch(event fsnotify.Event) {
	if event.Op&fsnotify.Create == 0 {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}

	// A tracked file path that materialized as a directory is promoted to a
	// wholesale watch. The conventional build directory often appears only
	// after the first configure.
	if _, tracked := w.files[event.Name]; tracked {
		if err := w.watcher.Add(event.Name); err != nil {
			slog.Debug("Could not watch new directory",
				logfields.Path(event.Name), logfields.Error(err))
			return
		}
		delete(w.files, event.Name)
		w.dirs = append(w.dirs, event.Name)
		return
	}

	for _, d := range w.dirs {
		if event.Name == d {
			if err := w.watcher.Add(event.Name); err != nil {
				slog.Debug("Could not rewatch recreated directory",
					logfields.Path(event.Name), logfields.Error(err))
			}
			return
		}
	}
}
