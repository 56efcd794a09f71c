// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package submit decides when an Enter key press should submit a form.
package submit

import (
	"testing"

	"github.com/ashdowne/formline-tui/internal/keyevent"
)

// countingGate builds a gate whose submit callback counts invocations.
func countingGate(cfg Config) (*Gate, *int) {
	count := 0
	cfg.OnSubmit = func(*keyevent.Event) { count++ }
	return NewGate(cfg), &count
}

// =============================================================================
// NON-ENTER KEYS
// =============================================================================

func TestGate_IgnoresNonEnterKeys(t *testing.T) {
	g, count := countingGate(Config{
		AllowBasicEnter:    true,
		AllowPlatformEnter: true,
		Platform:           PlatformOther,
	})

	for _, spec := range []string{"a", "tab", "esc", "ctrl+a", "meta+x", "up"} {
		e, ok := keyevent.Parse(spec)
		if !ok {
			t.Fatalf("bad spec %q", spec)
		}
		g.HandleKeyDown(e)
	}

	if *count != 0 {
		t.Errorf("callback fired %d times for non-Enter keys", *count)
	}
}

func TestGate_NilEvent(t *testing.T) {
	g, count := countingGate(Config{AllowBasicEnter: true})

	// Must not panic
	g.HandleKeyDown(nil)

	if *count != 0 {
		t.Error("callback fired for nil event")
	}
}

// =============================================================================
// BASIC ENTER
// =============================================================================

func TestGate_BasicEnter(t *testing.T) {
	tests := []struct {
		spec string
		want int
	}{
		{"enter", 1},
		{"shift+enter", 0},
		{"ctrl+enter", 0},
		{"alt+enter", 0},
		{"meta+enter", 0},
	}

	for _, tc := range tests {
		g, count := countingGate(Config{
			AllowBasicEnter: true,
			Platform:        PlatformOther,
		})

		e, _ := keyevent.Parse(tc.spec)
		g.HandleKeyDown(e)

		if *count != tc.want {
			t.Errorf("%s: callback fired %d times, want %d", tc.spec, *count, tc.want)
		}
	}
}

func TestGate_NothingAllowed(t *testing.T) {
	g, count := countingGate(Config{Platform: PlatformOther})

	e, _ := keyevent.Parse("enter")
	g.HandleKeyDown(e)
	e, _ = keyevent.Parse("ctrl+enter")
	g.HandleKeyDown(e)

	if *count != 0 {
		t.Error("callback fired with both allowances disabled")
	}
}

// =============================================================================
// PLATFORM ENTER
// =============================================================================

func TestGate_PlatformEnter(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		spec     string
		want     int
	}{
		{"mac meta+enter", PlatformMac, "meta+enter", 1},
		{"mac ctrl+enter", PlatformMac, "ctrl+enter", 0},
		{"mac plain enter", PlatformMac, "enter", 0},
		{"other ctrl+enter", PlatformOther, "ctrl+enter", 1},
		{"other meta+enter", PlatformOther, "meta+enter", 0},
		{"other plain enter", PlatformOther, "enter", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, count := countingGate(Config{
				AllowPlatformEnter: true,
				Platform:           tc.platform,
			})

			e, ok := keyevent.Parse(tc.spec)
			if !ok {
				t.Fatalf("bad spec %q", tc.spec)
			}
			g.HandleKeyDown(e)

			if *count != tc.want {
				t.Errorf("callback fired %d times, want %d", *count, tc.want)
			}
		})
	}
}

func TestGate_BothAllowed(t *testing.T) {
	g, count := countingGate(Config{
		AllowBasicEnter:    true,
		AllowPlatformEnter: true,
		Platform:           PlatformMac,
	})

	// Both forms accepted, each firing exactly once
	e, _ := keyevent.Parse("enter")
	g.HandleKeyDown(e)
	e, _ = keyevent.Parse("meta+enter")
	g.HandleKeyDown(e)

	if *count != 2 {
		t.Errorf("callback fired %d times, want 2", *count)
	}
}

// =============================================================================
// IME COMPOSITION
// =============================================================================

func TestGate_SuppressesEnterWhileComposing(t *testing.T) {
	g, count := countingGate(Config{
		AllowBasicEnter:    true,
		AllowPlatformEnter: true,
		Platform:           PlatformOther,
	})

	g.HandleCompositionStart(keyevent.NewCompositionStart())
	if !g.Composing() {
		t.Fatal("gate should report composing")
	}

	// Any modifier combination is suppressed during composition
	for _, spec := range []string{"enter", "ctrl+enter", "meta+enter", "shift+enter"} {
		e, _ := keyevent.Parse(spec)
		g.HandleKeyDown(e)
	}

	if *count != 0 {
		t.Errorf("callback fired %d times during composition", *count)
	}
}

func TestGate_CompositionLifecycle(t *testing.T) {
	// compositionstart -> Enter (ignored) -> compositionend -> Enter (fires)
	g, count := countingGate(Config{
		AllowBasicEnter: true,
		Platform:        PlatformOther,
	})

	g.HandleCompositionStart(keyevent.NewCompositionStart())

	e, _ := keyevent.Parse("enter")
	g.HandleKeyDown(e)
	if *count != 0 {
		t.Fatal("Enter during composition must not submit")
	}

	g.HandleCompositionEnd(keyevent.NewCompositionEnd("日本語"))
	if g.Composing() {
		t.Fatal("gate should have left composing state")
	}

	e, _ = keyevent.Parse("enter")
	g.HandleKeyDown(e)
	if *count != 1 {
		t.Fatalf("Enter after composition fired %d times, want 1", *count)
	}
}

// =============================================================================
// MERGED HANDLER
// =============================================================================

func TestGate_Handler_RoutesAllKinds(t *testing.T) {
	g, count := countingGate(Config{
		AllowBasicEnter: true,
		Platform:        PlatformOther,
	})
	h := g.Handler()

	h(keyevent.NewCompositionStart())
	enter, _ := keyevent.Parse("enter")
	h(enter)
	h(keyevent.NewCompositionEnd("あ"))
	enter, _ = keyevent.Parse("enter")
	h(enter)

	if *count != 1 {
		t.Errorf("callback fired %d times, want 1", *count)
	}
}

func TestGate_DoesNotPreventDefault(t *testing.T) {
	g, _ := countingGate(Config{
		AllowBasicEnter: true,
		Platform:        PlatformOther,
	})

	e, _ := keyevent.Parse("enter")
	g.HandleKeyDown(e)

	if e.DefaultPrevented() {
		t.Error("gate must leave default-prevented to the callback")
	}
}

func TestGate_ChainsWithUserHandlers(t *testing.T) {
	// A user handler that prevents default stops the gate when chained
	// with short-circuit enabled.
	g, count := countingGate(Config{
		AllowBasicEnter: true,
		Platform:        PlatformOther,
	})

	chain := keyevent.Chain(true,
		func(e *keyevent.Event) { e.PreventDefault() },
		g.Handler(),
	)

	e, _ := keyevent.Parse("enter")
	chain(e)

	if *count != 0 {
		t.Error("gate should not fire after a user handler consumed the event")
	}
}
