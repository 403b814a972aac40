package tui

import (
	"time"

	"github.com/vovakirdan/bike-rush/internal/core"
)

// DefaultHoldWindow is how long a key stays down after its last press or
// auto-repeat. Terminals report presses only, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker rebuilds held-key state from a terminal's stream of key
// presses. A key is down from its first press until no repeat has arrived
// for the hold window; only that first press counts as a press edge.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Key]time.Time
	edges    map[core.Key]bool
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Key]time.Time),
		edges:    make(map[core.Key]bool),
	}
}

// Observe records a key press or auto-repeat at now.
func (h *HoldTracker) Observe(k core.Key, now time.Time) {
	if !h.down(k, now) {
		h.edges[k] = true
	}
	h.lastSeen[k] = now
}

func (h *HoldTracker) down(k core.Key, now time.Time) bool {
	seen, ok := h.lastSeen[k]
	return ok && now.Sub(seen) <= h.window
}

// Frame builds the input for one simulation frame and consumes the press edges.
func (h *HoldTracker) Frame(now time.Time, delta time.Duration) core.InputFrame {
	in := core.NewInputFrame(delta)
	for k := range h.edges {
		in.Press(k)
	}
	for k := range h.lastSeen {
		if h.down(k, now) {
			in.Hold(k)
		} else {
			delete(h.lastSeen, k)
		}
	}
	clear(h.edges)
	return in
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
	clear(h.edges)
}
