package i18n

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"guestgate/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// LocaleWatcher watches a directory of *.yaml locale files and merges
// changed files into a translator, so translation edits show up without a
// restart.
type LocaleWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	translator  *Translator
	localeDir   string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewLocaleWatcher creates a watcher over localeDir feeding translator.
func NewLocaleWatcher(localeDir string, translator *Translator) (*LocaleWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &LocaleWatcher{
		watcher:     watcher,
		translator:  translator,
		localeDir:   localeDir,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond, // Debounce rapid saves
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching the locale directory. Non-blocking; the watch loop
// runs in its own goroutine until Stop or ctx cancellation.
func (w *LocaleWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.localeDir, 0755); err != nil {
		logging.Get(logging.CategoryI18n).Warn("LocaleWatcher: failed to create locale dir %s: %v", w.localeDir, err)
	}

	if err := w.watcher.Add(w.localeDir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}

	logging.I18n("Watching %s for locale changes", w.localeDir)
	go w.loop(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *LocaleWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}

func (w *LocaleWatcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryI18n).Warn("LocaleWatcher error: %v", err)
		}
	}
}

func (w *LocaleWatcher) handleEvent(event fsnotify.Event) {
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext != ".yaml" && ext != ".yml" {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	// Editors fire bursts of writes for one save; collapse them.
	w.mu.Lock()
	last, seen := w.debounceMap[event.Name]
	now := time.Now()
	if seen && now.Sub(last) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.debounceMap[event.Name] = now
	w.mu.Unlock()

	if err := w.translator.LoadFile(event.Name); err != nil {
		logging.Get(logging.CategoryI18n).Warn("LocaleWatcher: reload of %s failed: %v", event.Name, err)
		return
	}
	logging.I18n("Reloaded locale file %s", event.Name)
}
