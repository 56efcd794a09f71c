// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for formline.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Submit.AllowBasicEnter {
		t.Error("basic Enter should be allowed by default")
	}
	if !cfg.Submit.AllowPlatformEnter {
		t.Error("platform Enter should be allowed by default")
	}
	if cfg.Submit.Platform != "" {
		t.Error("platform should default to auto-detect")
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "1.0.0"

[submit]
allow_basic_enter = false
allow_platform_enter = true
platform = "mac"
min_interval_ms = 300

[ui]
placeholder = "say something"
max_chars = 100

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Submit.AllowBasicEnter {
		t.Error("allow_basic_enter should be false")
	}
	if cfg.Submit.Platform != "mac" {
		t.Errorf("platform = %q, want mac", cfg.Submit.Platform)
	}
	if cfg.Submit.MinIntervalMs != 300 {
		t.Errorf("min_interval_ms = %d, want 300", cfg.Submit.MinIntervalMs)
	}
	if cfg.UI.Placeholder != "say something" {
		t.Errorf("placeholder = %q", cfg.UI.Placeholder)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled")
	}
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("[submit]\nallow_basic_enter = false\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Submit.AllowBasicEnter {
		t.Error("explicit key should override default")
	}
	if !cfg.Submit.AllowPlatformEnter {
		t.Error("absent keys should keep defaults")
	}
	if cfg.UI.MaxChars != Default().UI.MaxChars {
		t.Error("absent sections should keep defaults")
	}
}

func TestLoadFromPath_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("malformed TOML should fail to load")
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"platform mac", func(c *Config) { c.Submit.Platform = "mac" }, false},
		{"platform other", func(c *Config) { c.Submit.Platform = "other" }, false},
		{"platform junk", func(c *Config) { c.Submit.Platform = "windows" }, true},
		{"negative interval", func(c *Config) { c.Submit.MinIntervalMs = -1 }, true},
		{"negative max chars", func(c *Config) { c.UI.MaxChars = -5 }, true},
		{"negative max entries", func(c *Config) { c.History.MaxEntries = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("FORMLINE_PLATFORM", "MAC")
	t.Setenv("FORMLINE_BASIC_ENTER", "false")
	t.Setenv("FORMLINE_PLATFORM_ENTER", "1")
	t.Setenv("FORMLINE_HISTORY", "/tmp/custom.db")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Submit.Platform != "mac" {
		t.Errorf("platform = %q, want mac", cfg.Submit.Platform)
	}
	if cfg.Submit.AllowBasicEnter {
		t.Error("FORMLINE_BASIC_ENTER=false should disable basic enter")
	}
	if !cfg.Submit.AllowPlatformEnter {
		t.Error("FORMLINE_PLATFORM_ENTER=1 should enable platform enter")
	}
	if cfg.History.Path != "/tmp/custom.db" {
		t.Errorf("history path = %q", cfg.History.Path)
	}
}

// =============================================================================
// SAVE / GLOBAL
// =============================================================================

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Submit.Platform = "mac"
	cfg.UI.MaxChars = 512

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Submit.Platform != "mac" {
		t.Errorf("platform = %q, want mac", loaded.Submit.Platform)
	}
	if loaded.UI.MaxChars != 512 {
		t.Errorf("max_chars = %d, want 512", loaded.UI.MaxChars)
	}
}

func TestSetGlobal(t *testing.T) {
	cfg := Default()
	cfg.UI.Placeholder = "custom"
	SetGlobal(cfg)

	if got := Global(); got != cfg {
		t.Error("Global did not return the config set by SetGlobal")
	}
}
