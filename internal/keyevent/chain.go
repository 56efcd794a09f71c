// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keyevent defines the input event model shared by formline's
// form components.
package keyevent

// =============================================================================
// HANDLER CHAINING
// =============================================================================

// Handler processes one input event. Handlers communicate only by mutating
// the event (PreventDefault); they return nothing.
type Handler func(*Event)

// Chain merges an ordered list of optional handlers into one handler.
//
// Handlers run synchronously in list order. Nil entries are skipped. When
// stopOnPrevented is true, the chain stops before invoking any handler
// after the first one that runs if a prior handler marked the event's
// default as prevented. The first handler to run always runs, even if the
// event arrives with the flag already set.
//
// Chain is pure: the same handler list always yields the same behavior for
// a given event sequence.
func Chain(stopOnPrevented bool, handlers ...Handler) Handler {
	return func(e *Event) {
		invoked := false
		for _, h := range handlers {
			if h == nil {
				continue
			}
			if invoked && stopOnPrevented && e.DefaultPrevented() {
				return
			}
			h(e)
			invoked = true
		}
	}
}
