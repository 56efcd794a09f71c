// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides the form console view for the TUI.
package console

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashdowne/formline-tui/internal/submit"
	"github.com/ashdowne/formline-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the console.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
		m.input.View(),
		m.renderStatusBar(),
	}
	return strings.Join(sections, "\n")
}

// renderHeader renders the title line.
func (m Model) renderHeader() string {
	title := m.theme.Header.Render("formline")
	subtitle := m.theme.StatusBar.Render("  form console")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, subtitle)
}

// renderTranscript renders all transcript entries for the viewport.
func (m Model) renderTranscript() string {
	if len(m.entries) == 0 {
		return m.theme.StatusBar.Render("No submissions yet.")
	}

	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderEntry(e))
	}
	return b.String()
}

// renderEntry renders one transcript line.
func (m Model) renderEntry(e TranscriptEntry) string {
	ts := m.theme.EntryTime.Render(e.Time.Format("15:04:05"))

	if e.System {
		style := m.theme.SystemNote
		if e.Error {
			style = m.theme.ErrorText
		}
		return ts + " " + style.Render(e.Content)
	}

	content := m.theme.EntryContent.Render(util.CollapseNewlines(e.Content))
	via := m.theme.EntryVia.Render("(" + e.Via + ")")
	return ts + " " + content + " " + via
}

// renderStatusBar renders the bottom hint line.
func (m Model) renderStatusBar() string {
	var hints []string

	if m.cfg.Submit.AllowBasicEnter {
		hints = append(hints, m.submitHint("Enter", "submit"))
	}
	if m.cfg.Submit.AllowPlatformEnter {
		hints = append(hints, m.submitHint(m.platformChord(), "submit"))
	}
	for _, b := range m.keyMap.ShortHelp() {
		hints = append(hints, m.submitHint(b.Help().Key, b.Help().Desc))
	}

	bar := strings.Join(hints, "  ")
	return m.theme.StatusBar.Render(util.TruncateWidth(bar, m.width))
}

// submitHint formats one "key action" hint pair.
func (m Model) submitHint(chord, action string) string {
	return m.theme.StatusKey.Render(chord) + " " + action
}

// platformChord names the platform submit chord for the resolved platform.
func (m Model) platformChord() string {
	if m.input.Platform() == submit.PlatformMac {
		return "Cmd+Enter"
	}
	return "Ctrl+Enter"
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

// helpGroupTitles labels the groups FullHelp returns, in order.
var helpGroupTitles = []string{"Navigation", "Actions"}

// renderHelpOverlay renders the keyboard help as markdown through
// glamour, with a plain-text fallback when the renderer cannot start.
func (m Model) renderHelpOverlay() string {
	md := m.helpMarkdown()

	wrap := m.width - 4
	if wrap < 40 {
		wrap = 40
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, rerr := renderer.Render(md); rerr == nil {
			return out + m.theme.StatusBar.Render("Esc or C-g to close")
		}
	}

	// Plain fallback
	return md + "\n" + "Esc or C-g to close"
}

// helpMarkdown builds the help overlay content from the key map.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# formline keys\n\n")

	b.WriteString("## Submitting\n\n")
	if m.cfg.Submit.AllowBasicEnter {
		b.WriteString("- `Enter` — submit\n")
	}
	if m.cfg.Submit.AllowPlatformEnter {
		b.WriteString("- `" + m.platformChord() + "` — submit\n")
	}
	b.WriteString("- Enter never submits while an IME composition is in progress\n\n")

	for i, group := range m.keyMap.FullHelp() {
		title := "Other"
		if i < len(helpGroupTitles) {
			title = helpGroupTitles[i]
		}
		b.WriteString("## " + title + "\n\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("- `" + h.Key + "` — " + h.Desc + "\n")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
