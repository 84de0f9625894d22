package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc is called after the knowledge file was changed by someone else.
type ReloadFunc func() error

const debounce = 200 * time.Millisecond

// Watch observes the directory holding f and calls reload whenever the file
// content changes to something this provider did not write itself. Bursts of
// events are debounced. It blocks until ctx is cancelled.
//
// The directory is watched rather than the file because Save replaces the file
// by rename, which drops watches on the old inode.
func Watch(ctx context.Context, f *JSONFile, logger *slog.Logger, reload ReloadFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(f.Path())
	if err := w.Add(dir); err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("path", f.Path()))

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			data, readErr := os.ReadFile(f.Path())
			if readErr != nil {
				logger.Warn("watcher: read failed", slog.String("error", readErr.Error()))
				continue
			}
			if !f.Changed(data) {
				continue
			}
			if reloadErr := reload(); reloadErr != nil {
				logger.Warn("watcher: reload failed", slog.String("error", reloadErr.Error()))
				continue
			}
			logger.Debug("watcher: reloaded", slog.String("path", f.Path()))

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != f.Path() {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
