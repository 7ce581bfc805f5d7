package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func writeAtomic(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename: %v", err)
	}
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := filepath.Join(t.TempDir(), "mensa")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	changes := make(chan Config, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg Config) {
			select {
			case changes <- cfg:
			default:
			}
		}, nil)
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	// The watcher may not be registered yet; keep rewriting until it reports.
	for found := false; !found; {
		select {
		case cfg := <-changes:
			found = cfg.CanteenID == 7
		case <-tick.C:
			writeAtomic(t, path, "canteen_id = 7\n")
		case <-deadline:
			t.Fatalf("no reload observed")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
}

func TestWatch_SkipsInvalidFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	changes := make(chan Config, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg Config) {
			select {
			case changes <- cfg:
			default:
			}
		}, nil)
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for found := false; !found; {
		select {
		case cfg := <-changes:
			if cfg.CanteenID == 0 {
				t.Fatalf("onChange called with config from invalid file: %+v", cfg)
			}
			found = true
		case <-tick.C:
			writeAtomic(t, path, "canteen_id = [\n")
			writeAtomic(t, path, "canteen_id = 9\n")
		case <-deadline:
			t.Fatalf("no reload observed")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
}

func TestWatch_CancelledContextReturns(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Watch(ctx, filepath.Join(t.TempDir(), "config.toml"), func(Config) {}, nil); err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
}
