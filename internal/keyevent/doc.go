// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keyevent defines the input event model shared by formline's
// form components.
//
// An Event describes one of three things delivered by a text-input
// primitive: a key press, the start of an IME composition, or the end of
// one. Events carry modifier state and a default-prevented flag that
// downstream handlers use to coordinate, mirroring the contract of
// browser keyboard events so the same gating logic works against any
// input backend.
//
// The package also provides Handler chaining (Chain), which merges an
// ordered list of optional handlers into a single handler with a
// well-defined short-circuit rule.
package keyevent
