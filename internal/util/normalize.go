// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the formline application.
package util

import "golang.org/x/text/unicode/norm"

// NormalizeNFC returns s in Unicode Normalization Form C.
//
// IME input methods can deliver text in decomposed form (separate base
// characters and combining marks). Persisting and searching submissions
// in composed form keeps equal-looking strings byte-equal.
func NormalizeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
