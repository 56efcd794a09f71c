// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package submit decides when an Enter key press should submit a form.
//
// The central type is Gate, which watches the raw keydown and composition
// events of one text input and fires a submit callback only for Enter
// presses that really mean "submit": never mid-IME-composition (where
// Enter finalizes a character choice, not the form), and only with the
// modifier combinations the gate was configured to accept. Platform
// conventions differ - Command+Enter on macOS, Ctrl+Enter elsewhere - so
// the platform is resolved once per gate and injectable for tests.
package submit
