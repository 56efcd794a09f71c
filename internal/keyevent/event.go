// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keyevent defines the input event model shared by formline's
// form components.
package keyevent

import "strings"

// =============================================================================
// EVENT KINDS
// =============================================================================

// Kind distinguishes the three event kinds a text input delivers.
type Kind int

const (
	// KindKeyDown is a key press.
	KindKeyDown Kind = iota

	// KindCompositionStart marks the beginning of an IME composition.
	KindCompositionStart

	// KindCompositionEnd marks the end of an IME composition.
	KindCompositionEnd
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "keydown"
	case KindCompositionStart:
		return "compositionstart"
	case KindCompositionEnd:
		return "compositionend"
	default:
		return "unknown"
	}
}

// =============================================================================
// EVENT
// =============================================================================

// Event is a single input event on a text-input element.
//
// Events are mutable only through PreventDefault; handlers communicate by
// marking the event handled, never by return values.
type Event struct {
	// Kind is the event kind.
	Kind Kind

	// Key identifies the key for KindKeyDown events.
	Key Key

	// Rune is the character for KeyRune key events.
	Rune rune

	// Modifiers holds the modifier keys active during the event.
	Modifiers Modifier

	// Text is the composed text for KindCompositionEnd events.
	Text string

	defaultPrevented bool
}

// NewKeyDown creates a key press event.
func NewKeyDown(key Key, mods Modifier) *Event {
	return &Event{Kind: KindKeyDown, Key: key, Modifiers: mods}
}

// NewRuneDown creates a key press event for a printable character.
func NewRuneDown(r rune, mods Modifier) *Event {
	return &Event{Kind: KindKeyDown, Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewCompositionStart creates a composition start event.
func NewCompositionStart() *Event {
	return &Event{Kind: KindCompositionStart}
}

// NewCompositionEnd creates a composition end event carrying the composed
// text.
func NewCompositionEnd(text string) *Event {
	return &Event{Kind: KindCompositionEnd, Text: text}
}

// PreventDefault marks the event's default action as suppressed.
// The flag is sticky; there is no way to clear it.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// IsKey reports whether the event is a key press of key with exactly the
// given modifiers.
func (e *Event) IsKey(key Key, mods Modifier) bool {
	return e.Kind == KindKeyDown && e.Key == key && e.Modifiers == mods
}

// String returns a "ctrl+enter" style description, or the kind name for
// composition events.
func (e *Event) String() string {
	if e.Kind != KindKeyDown {
		return e.Kind.String()
	}

	var key string
	if e.Key == KeyRune {
		key = string(e.Rune)
	} else {
		key = e.Key.String()
	}

	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + key
	}
	return key
}

// =============================================================================
// KEY SPEC PARSING
// =============================================================================

// Parse builds a key press event from a spec string like "enter",
// "ctrl+enter" or "shift+a". The last "+"-separated token is the key; every
// token before it must be a modifier name. Returns false if any token is
// unrecognized.
func Parse(spec string) (*Event, bool) {
	if spec == "" {
		return nil, false
	}

	parts := strings.Split(spec, "+")
	keyPart := parts[0]
	var mods Modifier

	if len(parts) > 1 {
		keyPart = parts[len(parts)-1]
		for _, part := range parts[:len(parts)-1] {
			mod := ModifierFromName(part)
			if mod == ModNone {
				return nil, false
			}
			mods = mods.With(mod)
		}
	}

	if key, ok := keyFromName(keyPart); ok {
		return NewKeyDown(key, mods), true
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return nil, false
	}
	return NewRuneDown(runes[0], mods), true
}
