// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package submit decides when an Enter key press should submit a form.
package submit

import (
	"runtime"
	"testing"
)

func TestDetect_MatchesHost(t *testing.T) {
	got := Detect()
	if runtime.GOOS == "darwin" {
		if got != PlatformMac {
			t.Errorf("Detect() = %v on darwin, want mac", got)
		}
	} else if got != PlatformOther {
		t.Errorf("Detect() = %v on %s, want other", got, runtime.GOOS)
	}
}

func TestDetect_Stable(t *testing.T) {
	if Detect() != Detect() {
		t.Error("Detect must return the same value within a process")
	}
}

func TestParsePlatform(t *testing.T) {
	if ParsePlatform("mac") != PlatformMac {
		t.Error(`ParsePlatform("mac") should be mac`)
	}
	if ParsePlatform("other") != PlatformOther {
		t.Error(`ParsePlatform("other") should be other`)
	}
	// Empty and junk fall back to detection
	if ParsePlatform("") != Detect() {
		t.Error("empty platform should fall back to Detect")
	}
	if ParsePlatform("windows") != Detect() {
		t.Error("unknown platform should fall back to Detect")
	}
}

func TestNewGate_ResolvesPlatformOnce(t *testing.T) {
	g := NewGate(Config{Platform: PlatformMac})
	if g.Platform() != PlatformMac {
		t.Error("explicit platform should be honored")
	}

	g = NewGate(Config{})
	if g.Platform() != Detect() {
		t.Error("zero platform should resolve via Detect")
	}
}
