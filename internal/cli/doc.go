// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and the non-TUI commands for
// formline: submission history inspection and configuration management.
// The TUI itself lives under internal/ui; main.go dispatches between the
// two based on the parsed command.
package cli
