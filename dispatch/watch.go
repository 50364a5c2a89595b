package dispatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// KeymapWatcher reloads a keymap file into a Dispatcher whenever it changes.
// A file that fails to load leaves the current keymap in place.
type KeymapWatcher struct {
	path       string
	mouseSpeed int8
	target     *Dispatcher
	logger     zerolog.Logger
	delay      time.Duration

	mu       sync.Mutex
	debounce *time.Timer
}

func NewKeymapWatcher(target *Dispatcher, path string, mouseSpeed int8, logger zerolog.Logger) *KeymapWatcher {
	return &KeymapWatcher{
		path:       path,
		mouseSpeed: mouseSpeed,
		target:     target,
		logger:     logger.With().Str("component", "keymap-watcher").Str("path", path).Logger(),
		delay:      100 * time.Millisecond,
	}
}

// Run watches the keymap's directory until ctx is done. Editors often replace
// files instead of writing them, so the file itself is not watched.
func (w *KeymapWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("keymap watcher: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("keymap watcher: watch %s: %w", dir, err)
	}
	defer w.stop()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *KeymapWatcher) debounceReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		w.reload()
	})
}

func (w *KeymapWatcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *KeymapWatcher) reload() bool {
	m, err := LoadKeymap(w.path, w.mouseSpeed)
	if err != nil {
		w.logger.Warn().Err(err).Msg("keeping previous keymap")
		return false
	}
	w.target.SetKeymap(m)
	w.logger.Info().Int("entries", len(m)).Msg("keymap reloaded")
	return true
}
