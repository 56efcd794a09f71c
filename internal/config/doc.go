// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for formline.
//
// Configuration lives at ~/.formline/config.toml. Absent files and absent
// keys fall back to built-in defaults; FORMLINE_* environment variables
// override loaded values; Validate rejects out-of-range settings.
//
// Watcher observes the config file and hands freshly loaded configs to a
// callback, so the running TUI can pick up changes without a restart.
package config
