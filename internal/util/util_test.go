// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the formline application.
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	// CJK characters are two columns wide
	if got := TruncateWidth("日本語", 10); got != "日本語" {
		t.Errorf("TruncateWidth should not truncate within width, got %q", got)
	}
	if got := TruncateWidth("日本語テキスト", 9); RuneLen(got) >= 7 {
		t.Errorf("TruncateWidth did not truncate: %q", got)
	}
	if got := TruncateWidth("abc", 0); got != "" {
		t.Errorf("TruncateWidth(_, 0) = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "abcde"},
		{"日本", 6, "日本  "}, // 4 columns + 2 spaces
	}

	for _, tc := range tests {
		if got := PadRight(tc.input, tc.width); got != tc.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tc.input, tc.width, got, tc.want)
		}
	}
}

func TestCollapseNewlines(t *testing.T) {
	if got := CollapseNewlines("a\nb\r\nc\rd"); got != "a b c d" {
		t.Errorf("CollapseNewlines = %q", got)
	}
}

// =============================================================================
// NORMALIZATION TESTS
// =============================================================================

func TestNormalizeNFC(t *testing.T) {
	// "é" decomposed (e + combining acute) composes to a single rune
	decomposed := "é"
	got := NormalizeNFC(decomposed)
	if got != "é" {
		t.Errorf("NormalizeNFC(%q) = %q, want %q", decomposed, got, "é")
	}

	// Already-composed text passes through unchanged
	if got := NormalizeNFC("café 東京"); got != "café 東京" {
		t.Errorf("NormalizeNFC changed composed text: %q", got)
	}
}

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")

	if err := AtomicWriteFile(path, []byte("test data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("updated"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", string(content))
	}
}
