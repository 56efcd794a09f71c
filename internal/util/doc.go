// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the formline application.
//
// This package contains common helpers used throughout the application for
// string handling, Unicode normalization, and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width aware truncation with ellipsis
//   - PadRight: display-width aware padding for tabular output
//   - NormalizeNFC: canonical composition of submitted text
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
