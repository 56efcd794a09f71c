// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for formline TUI.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashdowne/formline-tui/internal/keyevent"
	"github.com/ashdowne/formline-tui/internal/submit"
	"github.com/ashdowne/formline-tui/internal/ui/styles"
	"github.com/ashdowne/formline-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SubmittedMsg is emitted when the gate accepts an Enter press.
type SubmittedMsg struct {
	// Field names the input area that submitted.
	Field string

	// Content is the raw input value at submit time.
	Content string

	// Via records the accepted form: "basic" or "platform".
	Via string
}

// CompositionStartMsg reports that an IME composition began on the
// focused input.
type CompositionStartMsg struct{}

// CompositionEndMsg reports that the IME composition finished, carrying
// the composed text.
type CompositionEndMsg struct {
	Text string
}

// =============================================================================
// INPUT AREA CONFIGURATION
// =============================================================================

// Config describes one InputArea. Submit allowances and platform are
// fixed for the life of the component; changing them means building a new
// InputArea (the gate's configuration is immutable per instance).
type Config struct {
	// Field names this input in SubmittedMsg.
	Field string

	// Placeholder shown while empty.
	Placeholder string

	// MaxChars limits input length (0 = unlimited).
	MaxChars int

	// AllowBasicEnter / AllowPlatformEnter select the accepted submit
	// forms, passed through to the gate.
	AllowBasicEnter    bool
	AllowPlatformEnter bool

	// Platform overrides host detection for the gate. Zero means detect.
	Platform submit.Platform

	// Handlers run before the gate on every event, in order. A handler
	// that calls PreventDefault stops the chain, keeping the event from
	// the gate and from the underlying text input.
	Handlers []keyevent.Handler

	// ShowCounter toggles the character counter.
	ShowCounter bool

	// Theme provides styling. Required.
	Theme *styles.Theme
}

// =============================================================================
// INPUT AREA COMPONENT
// =============================================================================

// InputArea is a styled text input with Enter-submit gating.
type InputArea struct {
	cfg   Config
	input textinput.Model
	gate  *submit.Gate
	chain keyevent.Handler
	width int

	// pendingVia holds the accepted submit form between the gate callback
	// and the Update that drains it into a SubmittedMsg.
	pendingVia string

	focused bool
}

// New creates an InputArea from cfg.
func New(cfg Config) *InputArea {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.MaxChars
	ti.Width = 70
	ti.Prompt = "> "
	ti.PromptStyle = cfg.Theme.InputPrompt
	ti.TextStyle = cfg.Theme.InputText
	ti.PlaceholderStyle = cfg.Theme.InputPlaceholder

	ia := &InputArea{
		cfg:   cfg,
		input: ti,
		width: 80,
	}

	ia.gate = submit.NewGate(submit.Config{
		OnSubmit:           ia.acceptSubmit,
		AllowBasicEnter:    cfg.AllowBasicEnter,
		AllowPlatformEnter: cfg.AllowPlatformEnter,
		Platform:           cfg.Platform,
	})

	handlers := append([]keyevent.Handler{}, cfg.Handlers...)
	handlers = append(handlers, ia.gate.Handler())
	ia.chain = keyevent.Chain(true, handlers...)

	return ia
}

// acceptSubmit is the gate callback: it records the accepted form and
// consumes the Enter key so it never reaches the text input.
func (ia *InputArea) acceptSubmit(e *keyevent.Event) {
	if e.Modifiers.IsEmpty() {
		ia.pendingVia = "basic"
	} else {
		ia.pendingVia = "platform"
	}
	e.PreventDefault()
}

// =============================================================================
// FOCUS / VALUE ACCESSORS
// =============================================================================

// Focus focuses the input.
func (ia *InputArea) Focus() tea.Cmd {
	ia.focused = true
	return ia.input.Focus()
}

// Blur removes focus from the input.
func (ia *InputArea) Blur() {
	ia.focused = false
	ia.input.Blur()
}

// Focused returns whether the input is focused.
func (ia *InputArea) Focused() bool {
	return ia.focused
}

// Value returns the current input value.
func (ia *InputArea) Value() string {
	return ia.input.Value()
}

// SetValue sets the input value.
func (ia *InputArea) SetValue(value string) {
	ia.input.SetValue(value)
}

// Reset clears the input.
func (ia *InputArea) Reset() {
	ia.input.Reset()
}

// Composing reports whether an IME composition is in progress.
func (ia *InputArea) Composing() bool {
	return ia.gate.Composing()
}

// Platform returns the platform the gate resolved at construction.
func (ia *InputArea) Platform() submit.Platform {
	return ia.gate.Platform()
}

// SetWidth sets the input area width.
func (ia *InputArea) SetWidth(width int) {
	ia.width = width
	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	ia.input.Width = inputWidth
}

// =============================================================================
// COMPOSITION DRIVING
// =============================================================================

// BeginComposition routes a composition start through the handler chain.
func (ia *InputArea) BeginComposition() {
	ia.chain(keyevent.NewCompositionStart())
}

// EndComposition routes a composition end through the handler chain and
// inserts the composed text at the cursor.
func (ia *InputArea) EndComposition(text string) {
	ia.chain(keyevent.NewCompositionEnd(text))
	if text == "" {
		return
	}

	value := []rune(ia.input.Value())
	pos := ia.input.Position()
	if pos < 0 || pos > len(value) {
		pos = len(value)
	}
	ia.input.SetValue(string(value[:pos]) + text + string(value[pos:]))
	ia.input.SetCursor(pos + len([]rune(text)))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles input updates. Key messages run through the handler
// chain first; consumed events (default prevented) stop there, and an
// accepted submit drains into a SubmittedMsg command.
func (ia *InputArea) Update(msg tea.Msg) (*InputArea, tea.Cmd) {
	switch msg := msg.(type) {
	case CompositionStartMsg:
		ia.BeginComposition()
		return ia, nil

	case CompositionEndMsg:
		ia.EndComposition(msg.Text)
		return ia, nil

	case tea.KeyMsg:
		if !ia.focused {
			return ia, nil
		}

		if ev := FromKeyMsg(msg); ev != nil {
			if cmd := ia.ProcessEvent(ev); cmd != nil {
				return ia, cmd
			}
			if ev.DefaultPrevented() {
				return ia, nil
			}
		}
	}

	var cmd tea.Cmd
	ia.input, cmd = ia.input.Update(msg)
	return ia, cmd
}

// ProcessEvent runs a raw event through the handler chain and drains any
// accepted submission into a command. Callers use this for events that
// terminals cannot deliver as key messages, such as platform-modified
// Enter injected by an outer layer; Update uses it for translated keys.
func (ia *InputArea) ProcessEvent(ev *keyevent.Event) tea.Cmd {
	ia.chain(ev)

	if ia.pendingVia == "" {
		return nil
	}
	via := ia.pendingVia
	ia.pendingVia = ""
	content := ia.input.Value()
	ia.input.Reset()
	return submittedCmd(ia.cfg.Field, content, via)
}

// submittedCmd wraps a submission in a command.
func submittedCmd(field, content, via string) tea.Cmd {
	return func() tea.Msg {
		return SubmittedMsg{Field: field, Content: content, Via: via}
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the input area with its border and optional counter.
func (ia *InputArea) View() string {
	borderColor := styles.Overlay
	if ia.focused {
		borderColor = styles.FocusRing
	}

	containerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(ia.width - 2)

	section := containerStyle.Render(ia.input.View())

	statusLine := ia.renderStatusLine()
	if statusLine == "" {
		return section
	}

	return lipgloss.JoinVertical(lipgloss.Left, section, statusLine)
}

// renderStatusLine renders the char counter and composition indicator.
func (ia *InputArea) renderStatusLine() string {
	var parts []string

	if ia.gate.Composing() {
		parts = append(parts, ia.cfg.Theme.Composing.Render("composing..."))
	}

	if ia.cfg.ShowCounter && ia.cfg.MaxChars > 0 {
		count := util.RuneLen(ia.input.Value())
		counter := fmtNumber(count) + " / " + fmtNumber(ia.cfg.MaxChars) + " chars"
		parts = append(parts, ia.counterStyle(count).Render(counter))
	}

	if len(parts) == 0 {
		return ""
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(parts)...)
	return lipgloss.NewStyle().
		Width(ia.width - 4).
		Align(lipgloss.Right).
		Render(line)
}

// counterStyle color-codes the character counter by usage.
func (ia *InputArea) counterStyle(count int) lipgloss.Style {
	percent := float64(count) / float64(ia.cfg.MaxChars) * 100

	switch {
	case percent >= 90:
		return lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	case percent >= 75:
		return lipgloss.NewStyle().Foreground(styles.Amber)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}

// joinWithGap interleaves two-space gaps between rendered fragments.
func joinWithGap(parts []string) []string {
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
