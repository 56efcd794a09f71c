// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package submit decides when an Enter key press should submit a form.
package submit

import "runtime"

// =============================================================================
// PLATFORM CLASSIFICATION
// =============================================================================

// Platform classifies the host for modifier-key conventions. Only two
// classes matter: Mac-like hosts submit with Command+Enter, everything
// else with Ctrl+Enter.
type Platform string

const (
	// PlatformMac is a Mac-like host (Command is the submit modifier).
	PlatformMac Platform = "mac"

	// PlatformOther is any non-Mac host (Ctrl is the submit modifier).
	PlatformOther Platform = "other"
)

// Detect classifies the current host. The result never changes within a
// process, so callers resolve it once at gate construction.
func Detect() Platform {
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}

// ParsePlatform resolves a config string to a Platform. Empty or
// unrecognized values fall back to host detection.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformMac:
		return PlatformMac
	case PlatformOther:
		return PlatformOther
	default:
		return Detect()
	}
}
