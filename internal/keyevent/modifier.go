// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keyevent defines the input event model shared by formline's
// form components.
package keyevent

import "strings"

// =============================================================================
// MODIFIER KEYS
// =============================================================================

// Modifier is a bit set of the modifier keys held during an event.
type Modifier uint8

const (
	// ModNone means no modifier keys were held.
	ModNone Modifier = 0

	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl is the Control key.
	ModCtrl

	// ModAlt is the Alt key (Option on macOS).
	ModAlt

	// ModMeta is the Meta key (Command on macOS, Win elsewhere).
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty reports whether no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a "ctrl+shift" style representation, empty for ModNone.
// Modifier order matches bubbletea's key string format.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps spelled-out modifier names (lowercase) to values.
// Aliases cover the spellings used by terminals and by macOS conventions.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
}

// ModifierFromName resolves a modifier name (case-insensitive).
// Returns ModNone for unrecognized names.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(name)]
}
