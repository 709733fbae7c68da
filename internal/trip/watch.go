package trip

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Sync reloads the trip file at path, recalculates every day, and writes
// the file back only if some start time changed.
func Sync(path string) (*Trip, int, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	changed := t.RecalculateAll()
	if changed == 0 {
		return t, 0, nil
	}
	if err := WriteFile(path, t); err != nil {
		return nil, 0, err
	}
	return t, changed, nil
}

// Watcher keeps a trip file's timeline consistent while it is edited by
// hand.
type Watcher struct {
	Path   string
	Logger *slog.Logger
	// OnSync, if set, is called after every successful sync that changed
	// the file.
	OnSync func(t *Trip, changed int)
}

// Run syncs the file once, then again on every write until ctx is
// cancelled. The parent directory is watched so editors that save by
// rename are still picked up. Parse errors are logged and skipped; the
// next save gets another chance.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	path := filepath.Clean(w.Path)
	if _, err := os.Stat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	w.sync(path, logger)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Debug("trip file changed", slog.String("path", path), slog.String("op", event.Op.String()))
				w.sync(path, logger)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watcher errors are non-fatal; continue watching.
			logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) sync(path string, logger *slog.Logger) {
	t, changed, err := Sync(path)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			logger.Warn("skipping unparseable trip file", slog.String("path", path), slog.String("error", perr.Err.Error()))
			return
		}
		logger.Error("sync failed", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	if changed == 0 {
		logger.Debug("timeline already consistent", slog.String("path", path))
		return
	}
	logger.Info("timeline recalculated", slog.String("path", path), slog.Int("changed", changed))
	if w.OnSync != nil {
		w.OnSync(t, changed)
	}
}
