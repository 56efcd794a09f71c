// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for formline TUI.
package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashdowne/formline-tui/internal/keyevent"
)

// =============================================================================
// BUBBLE TEA KEY ADAPTER
// =============================================================================

// FromKeyMsg translates a Bubble Tea key message into a keyevent event.
//
// Character keys map directly; everything else goes through the key
// string, which bubbletea renders in the same "ctrl+shift+enter" spelling
// the keyevent parser accepts. Returns nil for keys the event model does
// not cover, which callers should pass through to the underlying input
// untouched.
func FromKeyMsg(msg tea.KeyMsg) *keyevent.Event {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) == 0 {
			return nil
		}
		var mods keyevent.Modifier
		if msg.Alt {
			mods = mods.With(keyevent.ModAlt)
		}
		return keyevent.NewRuneDown(msg.Runes[0], mods)
	}

	if ev, ok := keyevent.Parse(msg.String()); ok {
		return ev
	}
	return nil
}
