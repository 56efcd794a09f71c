// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists submitted form entries.
//
// Submissions are stored in a local SQLite database (pure Go driver, no
// cgo) so the console can recall and search past entries across sessions.
package history
