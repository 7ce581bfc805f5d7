package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the config file at path whenever it is written or replaced and
// passes the result to onChange. It blocks until ctx is done. Files that fail
// to parse are logged and skipped; the previous config stays in effect.
//
// The parent directory is watched rather than the file, so editors that save
// by renaming a temp file over the original are picked up too.
func Watch(ctx context.Context, path string, onChange func(Config), logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != resolved {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(resolved)
			if err != nil {
				logger.Warn("config reload failed", zap.String("path", resolved), zap.Error(err))
				continue
			}
			logger.Info("config reloaded", zap.String("path", resolved), zap.Int("canteen", cfg.CanteenID))
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", zap.Error(err))
		}
	}
}
