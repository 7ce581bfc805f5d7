// Package app provides the orchestration layer for the mensa application.
//
// # Overview
//
// This package wires together configuration, logging, the response cache, the
// OpenMensa client, the bridge, the menu state and the UI. It is the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load ~/.config/mensa/config.toml (flags override canteen and refresh)
//  2. Build the zap file logger
//  3. Open the SQLite response cache and prune old entries
//  4. Create the OpenMensa client and the bridge
//  5. Create the menu state and the Bubble Tea program
//  6. Run the UI, the refresh poller and the config watcher in one errgroup
//
// # Components
//
//   - app.go: Run and the goroutine group
//   - poller.go: periodic day list refresh with retry backoff
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> Poller.Run()      bridge.Days() ─> program.Send(UpdateMsg)
//	       ├─────> config.Watch()    canteen_id changed ─> SetCanteen + Trigger
//	       └─────> program.Run()     UI (blocks until quit)
//
//	Inside the UI:
//	  UpdateMsg ─> dispatch.Dispatch() ─> state.Menu ─> renderer signals ─> View()
//
// All update events pass through the Bubble Tea event loop, so the dispatcher
// and the menu state see one event at a time.
//
// # Polling Behavior
//
// The poller fetches the day list immediately and then every refresh interval
// (default: 15 minutes). A failed refresh is delivered to the UI as an
// error_msg event and retried sooner: 2s, 4s, 8s, 16s, then every 30s, but
// never later than the regular interval. A successful refresh resets the
// backoff. Trigger forces an immediate refresh, e.g. after the canteen
// changes.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file
//   - Log file or cache database cannot be created
//   - Invalid api_url
//
// Recoverable errors (logged, the app keeps running):
//   - Network and API failures (cached responses are served when available)
//   - Config watcher failures (live reload is disabled)
//   - Broken config edits while running (the previous config stays)
//
// # Usage Example
//
//	if err := app.Run(ctx, app.Options{CanteenID: 42}); err != nil {
//		fmt.Fprintf(os.Stderr, "mensa: %v\n", err)
//	}
//
// # Shutdown
//
// Quitting the UI cancels the shared context, which stops the poller and the
// watcher. Run then resets the menu state, closes the cache and flushes the
// logger.
package app
