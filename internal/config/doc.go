// Package config handles loading and watching the mensa configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/mensa/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/mensa/config.toml
//   - API endpoint: https://openmensa.org/api/v2
//   - Refresh interval: 15m
//   - Response cache: ~/.cache/mensa/responses.db
//   - Log file: ~/.local/state/mensa/mensa.log
//   - Canteen: none (the UI shows a "No canteen ID" screen)
//
// # TOML Format
//
//	canteen_id = 42
//	api_url = "https://openmensa.org/api/v2"
//	refresh = "15m"
//	cache_path = "~/.cache/mensa/responses.db"
//	log_path = "~/.local/state/mensa/mensa.log"
//
// String values are trimmed and paths starting with ~ are expanded to the
// user's home directory and made absolute. A canteen_id of zero or less is
// treated as unset.
//
// # Error Handling
//
//   - Missing file: defaults, no error
//   - Unreadable file: "open config: ..." / "read config: ..."
//   - Invalid TOML: "parse config: ..."
//   - Invalid or non-positive refresh: "parse refresh: ..."
//
// # Live Reload
//
// Watch follows the config file with fsnotify and hands every successfully
// parsed version to a callback, so changing canteen_id takes effect without a
// restart. Broken edits are logged and ignored.
package config
