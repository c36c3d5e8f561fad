package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of write events from editors that save
// via truncate-then-write or temp-file rename.
const watchDebounce = 200 * time.Millisecond

// Watch reloads the config file whenever it changes and delivers each
// successfully parsed document on the returned channel. Invalid interim
// states are skipped. The watcher stops when ctx is cancelled and the
// channel is closed.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (rename over the path) keep delivering events.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	out := make(chan *Config, 1)

	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()

		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					timerC = timer.C
				} else {
					timer.Reset(watchDebounce)
				}

			case <-timerC:
				cfg, err := Load(path)
				if err != nil {
					slog.Debug("config reload skipped", slog.String("path", path), slog.String("error", err.Error()))
					continue
				}
				select {
				case out <- cfg:
				default:
					// Receiver is behind; drop this snapshot in favor of
					// whatever arrives next.
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("config watch error", slog.String("error", err.Error()))
			}
		}
	}()

	return out, nil
}
