package app

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/BonsaiRobotics/ros2-fabric/internal/fsutil"
)

// watch runs the pipeline once, then re-runs it every time the resolved
// config file is written, until ctx is cancelled. A failing pass is logged
// and the loop keeps going, so the watch behaves as a live lint while the
// fleet definition is being edited.
func (a *App) watch(ctx context.Context) error {
	if err := a.runOnce(ctx); err != nil {
		a.logger.Error("Initial pass failed, watching for changes.", "error", err)
	}

	path, err := fsutil.ResolveConfigPath(a.cfg.ConfigPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	a.logger.Info("Watching fleet definition for changes.", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save atomically via rename, which surfaces as a
			// Create of the new inode rather than a Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := a.runOnce(ctx); err != nil {
				a.logger.Error("Reload failed, keeping previous output.", "error", err)
			} else {
				a.logger.Info("Fleet definition reloaded.", "path", path)
			}

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("Watcher error.", "error", err)
		}
	}
}
