// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for formline.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file location:
//   - ~/.formline/config.toml
//   - Built-in defaults when the file is absent
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/ashdowne/formline-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete formline configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version"`

	// Submit gating behavior
	Submit SubmitConfig `toml:"submit"`

	// UI settings
	UI UIConfig `toml:"ui"`

	// History persistence settings
	History HistoryConfig `toml:"history"`
}

// SubmitConfig controls when Enter submits the form.
type SubmitConfig struct {
	// AllowBasicEnter accepts plain Enter (no modifiers) as submit.
	AllowBasicEnter bool `toml:"allow_basic_enter"`

	// AllowPlatformEnter accepts the platform submit chord:
	// Command+Enter on Mac-like hosts, Ctrl+Enter elsewhere.
	AllowPlatformEnter bool `toml:"allow_platform_enter"`

	// Platform overrides host detection: "mac", "other", or "" for auto.
	Platform string `toml:"platform"`

	// MinIntervalMs is the minimum time between accepted submissions.
	// Guards against accidental double Enter. 0 disables the guard.
	MinIntervalMs int `toml:"min_interval_ms"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// Placeholder shown in the empty input field
	Placeholder string `toml:"placeholder"`

	// MaxChars limits input length (0 = unlimited)
	MaxChars int `toml:"max_chars"`

	// ShowCounter toggles the character counter under the input
	ShowCounter bool `toml:"show_counter"`
}

// HistoryConfig controls submission persistence.
type HistoryConfig struct {
	// Enabled toggles persistence entirely
	Enabled bool `toml:"enabled"`

	// Path to the SQLite database. Empty means ~/.formline/history.db.
	Path string `toml:"path"`

	// MaxEntries limits stored submissions (0 = unlimited)
	MaxEntries int `toml:"max_entries"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Submit: SubmitConfig{
			AllowBasicEnter:    true,
			AllowPlatformEnter: true,
			Platform:           "",
			MinIntervalMs:      150,
		},
		UI: UIConfig{
			Placeholder: "Type a message... (Enter to submit)",
			MaxChars:    4096,
			ShowCounter: true,
		},
		History: HistoryConfig{
			Enabled:    true,
			Path:       "",
			MaxEntries: 1000,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the formline configuration directory (~/.formline).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".formline"), nil
}

// ConfigPath returns the path of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath resolves the history database path, falling back to the
// default location when the config leaves it empty.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads configuration from the default path. A missing file is not an
// error: defaults (plus env overrides) are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(path); statErr != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}

	return LoadFromPath(path)
}

// LoadFromPath reads configuration from a specific TOML file, applying
// defaults for absent keys, env overrides, and validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML file: %w", err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default path atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to a specific TOML file atomically.
// Callers holding a --config override use this so writes land on the same
// file reads came from.
func SaveTo(path string, cfg *Config) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}

	return util.AtomicWriteFile(path, []byte(sb.String()), 0600)
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FORMLINE_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if platform := os.Getenv("FORMLINE_PLATFORM"); platform != "" {
		c.Submit.Platform = strings.ToLower(platform)
	}
	if v := os.Getenv("FORMLINE_BASIC_ENTER"); v != "" {
		c.Submit.AllowBasicEnter = isTruthy(v)
	}
	if v := os.Getenv("FORMLINE_PLATFORM_ENTER"); v != "" {
		c.Submit.AllowPlatformEnter = isTruthy(v)
	}
	if path := os.Getenv("FORMLINE_HISTORY"); path != "" {
		c.History.Path = path
	}
	if v := os.Getenv("FORMLINE_NO_HISTORY"); v != "" && isTruthy(v) {
		c.History.Enabled = false
	}
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Submit.Platform {
	case "", "mac", "other":
	default:
		return ValidationError{
			Field:   "submit.platform",
			Message: fmt.Sprintf("must be \"mac\", \"other\" or empty, got %q", c.Submit.Platform),
		}
	}

	if c.Submit.MinIntervalMs < 0 {
		return ValidationError{Field: "submit.min_interval_ms", Message: "must not be negative"}
	}
	if c.UI.MaxChars < 0 {
		return ValidationError{Field: "ui.max_chars", Message: "must not be negative"}
	}
	if c.History.MaxEntries < 0 {
		return ValidationError{Field: "history.max_entries", Message: "must not be negative"}
	}
	return nil
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access unless SetGlobal already supplied
// one. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		globalConfigMu.Lock()
		defer globalConfigMu.Unlock()
		if globalConfig != nil {
			return
		}
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}
