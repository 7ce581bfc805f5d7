package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings mensa reads from its config file.
type Config struct {
	CanteenID int
	APIURL    string
	CachePath string
	LogPath   string
	// Path is the resolved location of the config file itself.
	Path    string
	Refresh time.Duration
}

const (
	defaultConfigPath = "~/.config/mensa/config.toml"
	defaultAPIURL     = "https://openmensa.org/api/v2"
	defaultCachePath  = "~/.cache/mensa/responses.db"
	defaultLogPath    = "~/.local/state/mensa/mensa.log"
	defaultRefresh    = 15 * time.Minute
)

// Load locates and parses the mensa config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:    defaultAPIURL,
		CachePath: mustExpand(defaultCachePath),
		LogPath:   mustExpand(defaultLogPath),
		Path:      resolved,
		Refresh:   defaultRefresh,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CanteenID int    `toml:"canteen_id"`
		APIURL    string `toml:"api_url"`
		Refresh   string `toml:"refresh"`
		CachePath string `toml:"cache_path"`
		LogPath   string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.CanteenID > 0 {
		cfg.CanteenID = raw.CanteenID
	}
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.CachePath); v != "" {
		cfg.CachePath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Refresh); v != "" {
		refresh, err := ParseRefresh(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Refresh = refresh
	}

	return cfg, nil
}

// ParseRefresh parses a refresh interval such as "15m".
func ParseRefresh(value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse refresh: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse refresh: %q is not positive", value)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
