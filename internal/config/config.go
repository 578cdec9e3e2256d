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

// Config captures devicedeck's runtime settings.
type Config struct {
	CatalogPath    string
	FeedURL        string
	ReloadEvery    time.Duration
	CurrencySymbol string
	LogFile        string
	LogLevel       string
}

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "DEVICEDECK_CONFIG"

const (
	defaultConfigPath     = "~/.config/devicedeck/config.toml"
	defaultLogFile        = "~/.local/share/devicedeck/devicedeck.log"
	defaultLogLevel       = "info"
	defaultCurrencySymbol = "₹"
	defaultFeedReload     = 60 * time.Second
)

// Load locates and parses the config, falling back to defaults when missing.
// An empty path consults DEVICEDECK_CONFIG before the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CurrencySymbol: defaultCurrencySymbol,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
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
		CatalogPath    string `toml:"catalog_path"`
		FeedURL        string `toml:"feed_url"`
		ReloadSeconds  *int   `toml:"reload_seconds"`
		CurrencySymbol string `toml:"currency_symbol"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.CatalogPath); p != "" {
		cfg.CatalogPath = mustExpand(p)
	}
	cfg.FeedURL = strings.TrimSpace(raw.FeedURL)

	switch {
	case raw.ReloadSeconds != nil && *raw.ReloadSeconds > 0:
		cfg.ReloadEvery = time.Duration(*raw.ReloadSeconds) * time.Second
	case raw.ReloadSeconds == nil && cfg.FeedURL != "":
		cfg.ReloadEvery = defaultFeedReload
	}

	if sym := strings.TrimSpace(raw.CurrencySymbol); sym != "" {
		cfg.CurrencySymbol = sym
	}
	if lf := strings.TrimSpace(raw.LogFile); lf != "" {
		cfg.LogFile = mustExpand(lf)
	}
	if lvl := strings.ToLower(strings.TrimSpace(raw.LogLevel)); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// UsesFeed reports whether the catalog comes from a remote feed.
func (c Config) UsesFeed() bool {
	return strings.TrimSpace(c.FeedURL) != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return expandPath(path)
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return expandPath(env)
	}
	return expandPath(defaultConfigPath)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
