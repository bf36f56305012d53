package tui

import (
	"time"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// HeldKeys emulates key-up events, which terminals never send.
// A steering key counts as held for a fixed window after its last press or
// auto-repeat.
type HeldKeys struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHeldKeys returns a tracker that keeps keys held for hold after each event.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = 140 * time.Millisecond
	}
	return &HeldKeys{hold: hold, until: make(map[core.Action]time.Time)}
}

// Press records a key event at now. Turning one way releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !a.IsHeld() {
		return
	}
	switch a {
	case core.ActionRotateLeft:
		delete(h.until, core.ActionRotateRight)
	case core.ActionRotateRight:
		delete(h.until, core.ActionRotateLeft)
	}
	h.until[a] = now.Add(h.hold)
}

// IsHeld reports whether a is held at now.
func (h *HeldKeys) IsHeld(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Fill marks every key held at now in frame and forgets expired ones.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if !now.Before(t) {
			delete(h.until, a)
			continue
		}
		frame.Hold(a)
	}
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
}
