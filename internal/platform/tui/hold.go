package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Terminals report presses only. A held key shows up as a first press, a
// pause of about half a second, then a stream of repeats. Releases are
// inferred when the stream stops.
const (
	DefaultInitialHold = 600 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

type hold struct {
	last     time.Time
	repeated bool
}

// HoldTracker turns key-repeat streams into press and release events.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Action]*hold
}

// NewHoldTracker creates a tracker. initial is how long a single press is
// held before the first repeat is expected; repeat is the gap allowed
// between repeats.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]*hold),
	}
}

// Press records a key event for a held action at now. The action is set in
// frame on every event so a game that cleared its flags picks it up again.
// Pressing a direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if opp, ok := opposite[a]; ok {
		if h.Held(opp) {
			delete(h.held, opp)
			frame.Release(opp)
		}
	}

	if st, ok := h.held[a]; ok {
		st.last = now
		st.repeated = true
	} else {
		h.held[a] = &hold{last: now}
	}
	frame.Set(a)
}

// Expire releases every action whose repeat stream has gone quiet.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, st := range h.held {
		timeout := h.initial
		if st.repeated {
			timeout = h.repeat
		}
		if now.Sub(st.last) > timeout {
			delete(h.held, a)
			frame.Release(a)
		}
	}
}

// ReleaseAll releases every held action.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for a := range h.held {
		delete(h.held, a)
		frame.Release(a)
	}
}

// Held reports whether an action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}
