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

// Config holds everything facet reads from config.toml.
type Config struct {
	CatalogURL     string
	CatalogFile    string
	CatalogStale   time.Duration
	StateBackend   string
	StateDir       string
	StateName      string
	ConfirmDismiss string
	Theme          string
	LogFile        string
	LogLevel       string
}

// Backends for the selection record.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	defaultConfigPath     = "~/.config/facet/config.toml"
	defaultCatalogURL     = "127.0.0.1:7488"
	defaultCatalogStale   = 5 * time.Minute
	defaultStateBackend   = BackendFile
	defaultStateDir       = "~/.local/state/facet"
	defaultStateName      = "filter-storage"
	defaultConfirmDismiss = "keep"
	defaultTheme          = "Nightfox"
	defaultLogFile        = "~/.local/state/facet/facet.log"
	defaultLogLevel       = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CatalogURL:     defaultCatalogURL,
		CatalogStale:   defaultCatalogStale,
		StateBackend:   defaultStateBackend,
		StateDir:       mustExpand(defaultStateDir),
		StateName:      defaultStateName,
		ConfirmDismiss: defaultConfirmDismiss,
		Theme:          defaultTheme,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		CatalogURL          string `toml:"catalog_url"`
		CatalogFile         string `toml:"catalog_file"`
		CatalogStaleSeconds int    `toml:"catalog_stale_seconds"`
		StateBackend        string `toml:"state_backend"`
		StateDir            string `toml:"state_dir"`
		StateName           string `toml:"state_name"`
		ConfirmDismiss      string `toml:"confirm_dismiss"`
		Theme               string `toml:"theme"`
		LogFile             string `toml:"log_file"`
		LogLevel            string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.CatalogURL = orDefault(raw.CatalogURL, defaultCatalogURL)
	if catalogFile := strings.TrimSpace(raw.CatalogFile); catalogFile != "" {
		cfg.CatalogFile = mustExpand(catalogFile)
	}
	if raw.CatalogStaleSeconds > 0 {
		cfg.CatalogStale = time.Duration(raw.CatalogStaleSeconds) * time.Second
	}
	cfg.StateBackend = strings.ToLower(orDefault(raw.StateBackend, defaultStateBackend))
	cfg.StateDir = mustExpand(orDefault(raw.StateDir, defaultStateDir))
	cfg.StateName = orDefault(raw.StateName, defaultStateName)
	cfg.ConfirmDismiss = strings.ToLower(orDefault(raw.ConfirmDismiss, defaultConfirmDismiss))
	cfg.Theme = orDefault(raw.Theme, defaultTheme)
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	switch c.StateBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid state_backend %q (want %q or %q)", c.StateBackend, BackendFile, BackendSQLite)
	}
	switch c.ConfirmDismiss {
	case "keep", "cancel":
	default:
		return fmt.Errorf("invalid confirm_dismiss %q (want \"keep\" or \"cancel\")", c.ConfirmDismiss)
	}
	if strings.ContainsAny(c.StateName, `/\`) {
		return fmt.Errorf("invalid state_name %q: must not contain path separators", c.StateName)
	}
	return nil
}

// CatalogSource describes where the catalog comes from, for display.
func (c Config) CatalogSource() string {
	if c.CatalogFile != "" {
		return c.CatalogFile
	}
	return c.CatalogURL
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
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
