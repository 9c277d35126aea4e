package tui

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// HoldTracker derives held keys from press events. Terminals report presses
// and auto-repeats but never releases, so an action counts as held until
// window has passed since its last press or the press is released. A
// released press needs a new key event (a tap or an auto-repeat) to count
// again.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event for the action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.last[a] = now
}

// Release forgets the action immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.last, a)
}

// Held reports whether the action was pressed within the window before now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
