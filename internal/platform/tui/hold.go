package tui

import (
	"slices"

	"github.com/vovakirdan/frog-chase/internal/core"
)

// HoldTracker fakes key-up events. Terminals only report presses, repeating
// them while a key is held, so a key counts as released once no press has
// arrived for ttl ticks.
type HoldTracker struct {
	ttl  int
	left map[core.Key]int
}

// NewHoldTracker creates a tracker that releases keys after ttl quiet ticks.
func NewHoldTracker(ttl int) *HoldTracker {
	return &HoldTracker{ttl: max(1, ttl), left: make(map[core.Key]int)}
}

// Press records a press. The first press of a key yields a key-down event;
// later presses only extend the hold.
func (h *HoldTracker) Press(k core.Key) []core.KeyEvent {
	_, held := h.left[k]
	h.left[k] = h.ttl
	if held {
		return nil
	}
	return []core.KeyEvent{core.Press(k)}
}

// Tick ages every hold and returns releases for the keys that expired.
func (h *HoldTracker) Tick() []core.KeyEvent {
	var expired []core.Key
	for k := range h.left {
		h.left[k]--
		if h.left[k] <= 0 {
			expired = append(expired, k)
		}
	}
	return h.release(expired)
}

// ReleaseAll drops every hold.
func (h *HoldTracker) ReleaseAll() []core.KeyEvent {
	keys := make([]core.Key, 0, len(h.left))
	for k := range h.left {
		keys = append(keys, k)
	}
	return h.release(keys)
}

// Rearm returns a key-down for every key still held, in key order. Hosts
// push these when the game resumes after forgetting its held keys.
func (h *HoldTracker) Rearm() []core.KeyEvent {
	if len(h.left) == 0 {
		return nil
	}
	keys := make([]core.Key, 0, len(h.left))
	for k := range h.left {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	events := make([]core.KeyEvent, 0, len(keys))
	for _, k := range keys {
		events = append(events, core.Press(k))
	}
	return events
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.left[k]
	return ok
}

func (h *HoldTracker) release(keys []core.Key) []core.KeyEvent {
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	events := make([]core.KeyEvent, 0, len(keys))
	for _, k := range keys {
		delete(h.left, k)
		events = append(events, core.Release(k))
	}
	return events
}
