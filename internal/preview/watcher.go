package preview

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/logfields"
)

const defaultDebounce = 300 * time.Millisecond

// MetadataWatcher calls onChange after the watched file is written, created
// or renamed into place. Bursts of events within the debounce window cause a
// single call.
type MetadataWatcher struct {
	path     string
	onChange func()
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	started  bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewMetadataWatcher creates a watcher for path.
func NewMetadataWatcher(path string, onChange func()) (*MetadataWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve metadata path").
			WithContext("path", path).
			Build()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRuntime, "failed to create file watcher").Build()
	}
	return &MetadataWatcher{
		path:     abs,
		onChange: onChange,
		watcher:  w,
		debounce: defaultDebounce,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The containing directory is watched so that editors
// which replace the file are still seen.
func (mw *MetadataWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(mw.path)
	if err := mw.watcher.Add(dir); err != nil {
		_ = mw.watcher.Close()
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch metadata directory").
			WithContext("path", dir).
			Build()
	}
	slog.Info("Watching component metadata", logfields.Path(mw.path))
	mw.mu.Lock()
	mw.started = true
	mw.mu.Unlock()
	go mw.loop(ctx)
	return nil
}

// Stop ends the watch and waits for the event loop to exit.
func (mw *MetadataWatcher) Stop() {
	mw.stopOnce.Do(func() {
		close(mw.stopChan)
		_ = mw.watcher.Close()
		mw.mu.Lock()
		started := mw.started
		mw.mu.Unlock()
		if started {
			<-mw.done
		}
		mw.mu.Lock()
		if mw.timer != nil {
			mw.timer.Stop()
		}
		mw.mu.Unlock()
	})
}

func (mw *MetadataWatcher) loop(ctx context.Context) {
	defer close(mw.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-mw.stopChan:
			return
		case ev, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if !mw.relevant(ev) {
				continue
			}
			slog.Debug("Metadata change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			mw.trigger()
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Metadata watcher error", logfields.Error(err))
		}
	}
}

func (mw *MetadataWatcher) relevant(ev fsnotify.Event) bool {
	if shouldIgnoreEvent(ev.Name) {
		return false
	}
	if filepath.Clean(ev.Name) != mw.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (mw *MetadataWatcher) trigger() {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	if mw.timer != nil {
		mw.timer.Stop()
	}
	mw.timer = time.AfterFunc(mw.debounce, mw.onChange)
}

// shouldIgnoreEvent reports editor swap and temp files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	return strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")
}
