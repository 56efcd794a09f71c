// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for formline TUI.
//
// The centerpiece is InputArea, a text input that owns an Enter-submit
// gate: key presses are translated to keyevent events, run through any
// caller-supplied handlers merged with the gate via keyevent.Chain, and
// only qualifying Enter presses produce a SubmittedMsg. IME composition
// state flows through the same chain, so Enter presses that finalize a
// composed character never submit.
package components
