// Package watch re-runs a callback when a file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"fabcost/internal/logging"
)

// debounce coalesces the bursts of events editors emit on save.
const debounce = 250 * time.Millisecond

// File invokes fn each time path is written, created, or renamed, until
// ctx is cancelled or fn returns an error. The parent directory is
// watched rather than the file itself because editors commonly replace
// the file on save.
func File(ctx context.Context, path string, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-fire:
			fire = nil
			if err := fn(); err != nil {
				return err
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logging.Sugar.Debugw("scenario changed", "path", path, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Sugar.Warnw("watch error", "error", err)
		}
	}
}
