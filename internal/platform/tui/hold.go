package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DefaultHoldTimeout is how long a movement key counts as held after its
// last key message. It must exceed the terminal's autorepeat delay, or a
// held key would stutter before repeats start.
const DefaultHoldTimeout = 550 * time.Millisecond

// HoldTracker synthesizes key releases. Terminals only report presses, and
// a held key arrives as a stream of repeated presses. A key is considered
// released once no press has been seen for the timeout.
type HoldTracker struct {
	timeout  time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive timeout uses DefaultHoldTimeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{
		timeout:  timeout,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key message for the action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.lastSeen[a] = now
}

// Held reports whether the action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.lastSeen[a]
	return ok
}

// Expire returns the actions whose hold lapsed by now, in action order,
// and stops tracking them.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, seen := range h.lastSeen {
		if now.Sub(seen) >= h.timeout {
			released = append(released, a)
			delete(h.lastSeen, a)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Forget stops tracking the action without reporting a release.
func (h *HoldTracker) Forget(a core.Action) {
	delete(h.lastSeen, a)
}

// ReleaseAll returns every held action in action order and stops tracking them.
func (h *HoldTracker) ReleaseAll() []core.Action {
	held := make([]core.Action, 0, len(h.lastSeen))
	for a := range h.lastSeen {
		held = append(held, a)
	}
	sort.Slice(held, func(i, j int) bool { return held[i] < held[j] })
	clear(h.lastSeen)
	return held
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
}
