package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the polling fallback stats the file.
var pollInterval = 250 * time.Millisecond

// Watch loads the config at path and follows it for changes. The first
// value on the returned channel is the initial config; later values are
// sent only when the file reloads into a valid config that differs from
// the last one sent. Reload failures are logged and the previous config
// stays in effect.
//
// The channel is closed when ctx is cancelled. Uses fsnotify with a
// polling fallback.
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	// Register the watch before the initial load so no change is missed
	// in between.
	fw, err := fsnotify.NewWatcher()
	if err == nil {
		// Watch the directory so editors that replace the file by rename
		// are still seen.
		if err = fw.Add(filepath.Dir(path)); err != nil {
			fw.Close()
		}
	}
	useWatcher := err == nil

	cfg, err := Load(path)
	if err != nil {
		if useWatcher {
			fw.Close()
		}
		return nil, err
	}

	ch := make(chan Config, 1)
	ch <- cfg

	w := newWatcher(path, cfg, ch)
	go func() {
		defer close(ch)

		if !useWatcher {
			w.poll(ctx)
			return
		}
		defer fw.Close()
		w.watch(ctx, fw)
	}()

	return ch, nil
}

type watcher struct {
	path string
	last Config
	ch   chan<- Config

	// Last observed file state, used by the polling fallback.
	modTime time.Time
	size    int64
}

func newWatcher(path string, cfg Config, ch chan<- Config) *watcher {
	w := &watcher{path: path, last: cfg, ch: ch}
	if info, err := os.Stat(path); err == nil {
		w.modTime, w.size = info.ModTime(), info.Size()
	}
	return w
}

func (w *watcher) watch(ctx context.Context, fw *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.reload(ctx) {
				return
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", slog.String("path", w.path), slog.String("error", err.Error()))
		}
	}
}

func (w *watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
				continue
			}
			w.modTime, w.size = info.ModTime(), info.Size()

			if !w.reload(ctx) {
				return
			}
		}
	}
}

// reload loads the file and sends it if it changed. It returns false once
// ctx is cancelled.
func (w *watcher) reload(ctx context.Context) bool {
	cfg, err := Load(w.path)
	if err != nil {
		slog.Warn("config reload failed", slog.String("path", w.path), slog.String("error", err.Error()))
		return true
	}
	if reflect.DeepEqual(cfg, w.last) {
		return true
	}

	select {
	case w.ch <- cfg:
		w.last = cfg
		return true
	case <-ctx.Done():
		return false
	}
}
