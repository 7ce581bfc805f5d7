package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/mensa/internal/bridge"
	"github.com/five82/mensa/internal/cache"
	"github.com/five82/mensa/internal/config"
	"github.com/five82/mensa/internal/dispatch"
	"github.com/five82/mensa/internal/logging"
	"github.com/five82/mensa/internal/openmensa"
	"github.com/five82/mensa/internal/prefs"
	"github.com/five82/mensa/internal/state"
	"github.com/five82/mensa/internal/ui"
)

// Cached responses older than this are dropped at startup.
const cacheRetention = 14 * 24 * time.Hour

// Options configure the mensa application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/mensa/prefs.toml
	CanteenID  int           // overrides canteen_id when > 0
	Refresh    time.Duration // overrides refresh when > 0
	Verbose    bool
}

// Run boots the mensa TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.CanteenID > 0 {
		cfg.CanteenID = opts.CanteenID
	}
	if opts.Refresh > 0 {
		cfg.Refresh = opts.Refresh
	}

	logger, err := logging.New(cfg.LogPath, opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("config", cfg.Path),
		zap.Int("canteen", cfg.CanteenID),
		zap.Duration("refresh", cfg.Refresh),
	)

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	responses, err := cache.Open(cfg.CachePath)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer responses.Close()
	if n, err := responses.Prune(ctx, cacheRetention); err != nil {
		logger.Warn("cache prune failed", zap.Error(err))
	} else if n > 0 {
		logger.Debug("cache pruned", zap.Int64("entries", n))
	}

	client, err := openmensa.NewClient(cfg.APIURL,
		openmensa.WithCache(responses),
		openmensa.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init openmensa client: %w", err)
	}

	source := bridge.New(client, cfg.CanteenID, logger)
	menu := &state.Menu{}
	defer menu.Reset()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.New(ui.Options{
		Context:   ctx,
		Source:    source,
		Menu:      menu,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		Diet:      userPrefs.DietFilter(),
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	poller := NewPoller(source, func(ev dispatch.Event) {
		program.Send(ui.UpdateMsg{Event: ev})
	}, cfg.Refresh, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return poller.Run(gctx)
	})
	g.Go(func() error {
		err := config.Watch(gctx, cfg.Path, func(next config.Config) {
			if opts.CanteenID > 0 || next.CanteenID == source.Canteen() {
				return
			}
			logger.Info("canteen changed", zap.Int("canteen", next.CanteenID))
			source.SetCanteen(next.CanteenID)
			poller.Trigger()
		}, logger)
		if err != nil {
			// Live reload is a convenience; the app keeps running without it.
			logger.Warn("config watcher stopped", zap.Error(err))
		}
		return nil
	})

	err = g.Wait()
	logger.Info("stopped")
	return err
}
