// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides the form console view for the TUI.
package console

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashdowne/formline-tui/internal/config"
	"github.com/ashdowne/formline-tui/internal/history"
	"github.com/ashdowne/formline-tui/internal/ui/components"
	"github.com/ashdowne/formline-tui/internal/util"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the console model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.SubmittedMsg:
		return m.handleSubmission(msg), nil

	case components.CompositionStartMsg, components.CompositionEndMsg:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg.Config), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResize recomputes component dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	// Header, input block and status bar take the fixed rows.
	viewportHeight := msg.Height - 8
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	m.viewport.Width = msg.Width
	m.viewport.Height = viewportHeight
	m.input.SetWidth(msg.Width)
	m.refreshTranscript()
	return m
}

// handleKey routes a key press: console-level bindings first, everything
// else to the input area.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keyMap.Close):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

	case key.Matches(msg, m.keyMap.Clear):
		m.entries = nil
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keyMap.Up),
		key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp),
		key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		// The overlay swallows everything except the bindings above.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMISSION PIPELINE
// =============================================================================

// handleSubmission runs an accepted submission through the console
// pipeline: trim, normalize, double-submit guard, persist, transcript.
func (m Model) handleSubmission(msg components.SubmittedMsg) Model {
	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return m
	}
	content = util.NormalizeNFC(content)

	if m.limiter != nil && !m.limiter.Allow() {
		m.addSystemNote("submission dropped: too soon after the last one")
		return m
	}

	now := time.Now()
	if m.store != nil {
		if _, err := m.store.Append(history.Entry{
			Field:     msg.Field,
			Content:   content,
			Via:       msg.Via,
			CreatedAt: now,
		}); err != nil {
			m.addErrorNote("history write failed: " + err.Error())
		}
	}

	m.entries = append(m.entries, TranscriptEntry{
		Time:    now,
		Content: content,
		Via:     msg.Via,
	})
	m.refreshTranscript()
	return m
}

// addSystemNote appends a console-generated note to the transcript.
func (m *Model) addSystemNote(text string) {
	m.entries = append(m.entries, TranscriptEntry{
		Time:    time.Now(),
		Content: text,
		System:  true,
	})
	m.refreshTranscript()
}

// addErrorNote appends a failure note, rendered in the error style.
func (m *Model) addErrorNote(text string) {
	m.entries = append(m.entries, TranscriptEntry{
		Time:    time.Now(),
		Content: text,
		System:  true,
		Error:   true,
	})
	m.refreshTranscript()
}

// refreshTranscript re-renders the viewport content and follows the tail.
func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

// handleConfigReload swaps in a new configuration. The input area is
// rebuilt because gate allowances and platform are per-instance; typed
// text carries over so a reload never eats a draft.
func (m Model) handleConfigReload(cfg *config.Config) Model {
	if cfg == nil {
		return m
	}

	draft := m.input.Value()
	m.cfg = cfg
	m.limiter = newSubmitLimiter(cfg)
	m.input = buildInput(cfg, m.theme)
	m.input.SetWidth(m.width)
	m.input.SetValue(draft)

	m.addSystemNote("configuration reloaded")
	return m
}
