// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keyevent defines the input event model shared by formline's
// form components.
package keyevent

// =============================================================================
// KEY IDENTIFIERS
// =============================================================================

// Key identifies which key was pressed.
type Key int

const (
	// KeyRune is a printable character key; the character is in Event.Rune.
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// keyNames maps keys to their canonical lowercase names.
// The names match what bubbletea's KeyMsg.String() produces, so the
// adapter and the parser agree on spelling.
var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     " ",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
}

// String returns the canonical name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// keyFromName resolves a canonical name back to a Key.
// Returns (KeyRune, false) for names it does not recognize.
func keyFromName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && k != KeyRune {
			return k, true
		}
	}
	return KeyRune, false
}
