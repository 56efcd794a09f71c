// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for formline TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application.
// It detects the terminal's color capability once and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER / STATUS STYLES
	// ==========================================================================

	Header    lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT STYLES
	// ==========================================================================

	EntryTime    lipgloss.Style
	EntryContent lipgloss.Style
	EntryVia     lipgloss.Style
	SystemNote   lipgloss.Style
	ErrorText    lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	Composing        lipgloss.Style
}

// NewTheme creates a theme after probing the terminal.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles builds the style set from the shared palette.
func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(Cyan)

	t.EntryTime = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.EntryContent = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.EntryVia = lipgloss.NewStyle().
		Foreground(Emerald).
		Italic(true)

	t.SystemNote = lipgloss.NewStyle().
		Foreground(Amber)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Composing = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)
}
