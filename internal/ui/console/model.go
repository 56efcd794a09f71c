// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides the form console view for the TUI.
package console

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/ashdowne/formline-tui/internal/config"
	"github.com/ashdowne/formline-tui/internal/history"
	"github.com/ashdowne/formline-tui/internal/submit"
	"github.com/ashdowne/formline-tui/internal/ui/components"
	"github.com/ashdowne/formline-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a freshly loaded configuration into the model.
// The config watcher sends it from outside the Bubble Tea loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// TranscriptEntry is one line of the console transcript.
type TranscriptEntry struct {
	// Time the entry was added.
	Time time.Time

	// Content is the submitted (or system) text.
	Content string

	// Via records how the entry was submitted: "basic", "platform", or
	// "" for system notes.
	Via string

	// System marks notes the console itself added (reload notices,
	// rejected submissions).
	System bool

	// Error marks system notes reporting a failure, such as a history
	// write that did not land.
	Error bool
}

// =============================================================================
// CONSOLE MODEL
// =============================================================================

// Model is the Bubble Tea model for the form console.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Configuration snapshot the UI was built from
	cfg *config.Config

	// UI components
	input    *components.InputArea
	viewport viewport.Model

	// Key bindings
	keyMap KeyMap

	// Transcript
	entries []TranscriptEntry

	// Submission persistence. Nil when history is disabled.
	store *history.Store

	// limiter guards against accidental double submits. Nil when the
	// configured minimum interval is zero.
	limiter *rate.Limiter

	// Help overlay
	showHelp bool

	// quitting is set on the final update before tea.Quit.
	quitting bool
}

// New creates a console model from cfg. The store may be nil to disable
// persistence.
func New(cfg *config.Config, store *history.Store, theme *styles.Theme) Model {
	vp := viewport.New(80, 20)
	vp.SetContent("")

	m := Model{
		theme:    theme,
		cfg:      cfg,
		viewport: vp,
		keyMap:   DefaultKeyMap(),
		store:    store,
		limiter:  newSubmitLimiter(cfg),
		width:    80,
		height:   24,
	}
	m.input = buildInput(cfg, theme)
	return m
}

// buildInput constructs the gated input area for cfg. The gate's submit
// allowances and platform are fixed per instance, so a config change means
// building a replacement rather than mutating in place.
func buildInput(cfg *config.Config, theme *styles.Theme) *components.InputArea {
	ia := components.New(components.Config{
		Field:              "message",
		Placeholder:        cfg.UI.Placeholder,
		MaxChars:           cfg.UI.MaxChars,
		AllowBasicEnter:    cfg.Submit.AllowBasicEnter,
		AllowPlatformEnter: cfg.Submit.AllowPlatformEnter,
		Platform:           submit.ParsePlatform(cfg.Submit.Platform),
		ShowCounter:        cfg.UI.ShowCounter,
		Theme:              theme,
	})
	ia.Focus()
	return ia
}

// newSubmitLimiter builds the double-submit guard from the configured
// minimum interval. Returns nil when the guard is disabled.
func newSubmitLimiter(cfg *config.Config) *rate.Limiter {
	if cfg.Submit.MinIntervalMs <= 0 {
		return nil
	}
	interval := time.Duration(cfg.Submit.MinIntervalMs) * time.Millisecond
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Platform returns the platform the input's gate resolved.
func (m Model) Platform() submit.Platform {
	return m.input.Platform()
}

// Entries returns the transcript entries.
func (m Model) Entries() []TranscriptEntry {
	return m.entries
}
