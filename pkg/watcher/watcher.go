package watcher

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DirWatcher watches directories and reports changed files once a burst of
// events has settled.
type DirWatcher struct {
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	mu         sync.Mutex
	debounce   time.Duration
	extensions map[string]bool
	pending    map[string]struct{}
	timer      *time.Timer
	callback   func([]string)
	done       chan struct{}
	closeOnce  sync.Once
}

// NewDirWatcher creates a watcher. Only files with one of the given
// extensions are reported; no extensions means every file.
func NewDirWatcher(debounce time.Duration, logger *zap.Logger, extensions ...string) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &DirWatcher{
		watcher:    watcher,
		logger:     logger,
		debounce:   debounce,
		extensions: exts,
		pending:    make(map[string]struct{}),
		done:       make(chan struct{}),
	}, nil
}

// Watch adds directories. callback receives the sorted set of changed files
// and runs on a timer goroutine.
func (dw *DirWatcher) Watch(dirs []string, callback func([]string)) error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	for _, dir := range dirs {
		absPath, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		if err := dw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		dw.logger.Debug("Watching directory", zap.String("path", absPath))
	}

	dw.callback = callback
	return nil
}

// Start begins watching for changes
func (dw *DirWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					dw.handleChange(event.Name)
				}

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				dw.logger.Warn("Watcher error", zap.Error(err))

			case <-dw.done:
				return
			}
		}
	}()
}

func (dw *DirWatcher) matches(path string) bool {
	if len(dw.extensions) == 0 {
		return true
	}
	return dw.extensions[strings.ToLower(filepath.Ext(path))]
}

// handleChange records a change and restarts the debounce timer
func (dw *DirWatcher) handleChange(path string) {
	if !dw.matches(path) {
		return
	}

	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.callback == nil {
		return
	}
	dw.pending[path] = struct{}{}

	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(dw.debounce, dw.flush)
}

func (dw *DirWatcher) flush() {
	dw.mu.Lock()
	changed := make([]string, 0, len(dw.pending))
	for path := range dw.pending {
		changed = append(changed, path)
	}
	dw.pending = make(map[string]struct{})
	callback := dw.callback
	dw.mu.Unlock()

	if len(changed) == 0 || callback == nil {
		return
	}
	slices.Sort(changed)
	dw.logger.Info("Files changed", zap.Strings("files", changed))
	callback(changed)
}

// Close stops the watcher and any pending timer
func (dw *DirWatcher) Close() error {
	var err error
	dw.closeOnce.Do(func() {
		close(dw.done)
		dw.mu.Lock()
		if dw.timer != nil {
			dw.timer.Stop()
		}
		dw.mu.Unlock()
		err = dw.watcher.Close()
	})
	return err
}
