// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package submit decides when an Enter key press should submit a form.
package submit

import (
	"github.com/ashdowne/formline-tui/internal/keyevent"
)

// =============================================================================
// GATE CONFIGURATION
// =============================================================================

// Config describes one gate. It is copied at construction and immutable
// for the gate's lifetime.
type Config struct {
	// OnSubmit is called when an Enter press qualifies as a submit.
	// It is the gate's only side effect. The gate never calls
	// PreventDefault on the event; if submission should consume the key,
	// OnSubmit must do that itself.
	OnSubmit keyevent.Handler

	// AllowBasicEnter accepts Enter with no modifier keys held.
	AllowBasicEnter bool

	// AllowPlatformEnter accepts Enter with the platform submit modifier
	// held: Command on Mac-like hosts, Ctrl elsewhere.
	AllowPlatformEnter bool

	// Platform overrides host detection. Zero value means detect.
	Platform Platform
}

// =============================================================================
// ENTER-SUBMIT GATE
// =============================================================================

// Gate converts raw keyboard and composition events into submit decisions.
//
// A gate belongs to exactly one text input and is not safe for concurrent
// use; UI event delivery is single-threaded, so no locking is needed. The
// composing flag is plain mutable state read and written only by the
// gate's own handlers.
type Gate struct {
	cfg       Config
	platform  Platform
	composing bool
}

// NewGate creates a gate from cfg, resolving the platform once.
func NewGate(cfg Config) *Gate {
	platform := cfg.Platform
	if platform == "" {
		platform = Detect()
	}
	return &Gate{cfg: cfg, platform: platform}
}

// Platform returns the platform the gate resolved at construction.
func (g *Gate) Platform() Platform {
	return g.platform
}

// Composing reports whether an IME composition is in progress.
func (g *Gate) Composing() bool {
	return g.composing
}

// =============================================================================
// EVENT HANDLERS
// =============================================================================

// HandleCompositionStart records that an IME composition began.
// No other effect.
func (g *Gate) HandleCompositionStart(_ *keyevent.Event) {
	g.composing = true
}

// HandleCompositionEnd records that the IME composition finished.
// No other effect.
func (g *Gate) HandleCompositionEnd(_ *keyevent.Event) {
	g.composing = false
}

// HandleKeyDown applies the submit decision to a key press.
//
// Non-Enter keys are ignored. Enter is ignored while composing - IME input
// methods use Enter to finalize character choices - and otherwise fires
// OnSubmit exactly once when the modifier state matches an allowed form:
//
//   - basic Enter: no modifiers held, if AllowBasicEnter
//   - platform Enter: Meta held on Mac-like hosts, Ctrl held elsewhere,
//     if AllowPlatformEnter
//
// The gate never panics and never fires for any other combination.
func (g *Gate) HandleKeyDown(e *keyevent.Event) {
	if e == nil || e.Key != keyevent.KeyEnter {
		return
	}
	if g.composing {
		return
	}
	if !g.cfg.AllowBasicEnter && !g.cfg.AllowPlatformEnter {
		return
	}

	mods := e.Modifiers
	basicEnter := g.cfg.AllowBasicEnter && mods.IsEmpty()

	platformMod := keyevent.ModCtrl
	if g.platform == PlatformMac {
		platformMod = keyevent.ModMeta
	}
	platformEnter := g.cfg.AllowPlatformEnter && mods.Has(platformMod)

	if (basicEnter || platformEnter) && g.cfg.OnSubmit != nil {
		g.cfg.OnSubmit(e)
	}
}

// Handler returns a single handler that routes all three event kinds to
// the gate. Useful when the caller attaches one merged handler chain to
// an input instead of three separate callbacks.
func (g *Gate) Handler() keyevent.Handler {
	return func(e *keyevent.Event) {
		if e == nil {
			return
		}
		switch e.Kind {
		case keyevent.KindCompositionStart:
			g.HandleCompositionStart(e)
		case keyevent.KindCompositionEnd:
			g.HandleCompositionEnd(e)
		case keyevent.KindKeyDown:
			g.HandleKeyDown(e)
		}
	}
}
