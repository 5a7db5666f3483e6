package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long to wait after a change before reloading, so a
// rapid save burst produces one reload.
const watchDebounce = 250 * time.Millisecond

// Watcher reloads a config file on change and hands the result to a
// callback. Its purpose is live gateway reconfiguration: the callback
// typically converts the file to a gateway.Configuration and applies it
// with Configure, which swaps it atomically.
type Watcher struct {
	path   string
	logger *slog.Logger
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, logger: logger}
}

// Watch blocks until ctx is cancelled, invoking onChange with the freshly
// loaded config after each write to the file. Reload failures are logged
// and skipped; the previous configuration stays in effect.
func (w *Watcher) Watch(ctx context.Context, onChange func(*Config)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watch the directory, not the file: editors often replace the file,
	// which would otherwise drop the watch.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			cfg, err := LoadFromFile(w.path)
			if err != nil {
				w.logger.Warn("Failed to reload config",
					slog.String("path", w.path), slog.String("error", err.Error()))
				continue
			}
			if err := cfg.Validate(); err != nil {
				w.logger.Warn("Reloaded config is invalid",
					slog.String("path", w.path), slog.String("error", err.Error()))
				continue
			}
			w.logger.Info("Config reloaded", slog.String("path", w.path))
			onChange(cfg)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Config watch error", slog.String("error", err.Error()))
		}
	}
}
