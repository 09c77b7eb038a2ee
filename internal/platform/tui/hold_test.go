package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHoldTrackerSinglePress(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	start := time.Unix(0, 0)

	frame := core.NewInputFrame()
	h.Press(core.ActionLeft, start, &frame)
	if !frame.Has(core.ActionLeft) || !h.Held(core.ActionLeft) {
		t.Fatal("Press should set and hold the action")
	}

	// A lone press waits out the initial delay
	frame = core.NewInputFrame()
	h.Expire(start.Add(400*time.Millisecond), &frame)
	if frame.WasReleased(core.ActionLeft) {
		t.Error("Released before the initial hold elapsed")
	}

	h.Expire(start.Add(501*time.Millisecond), &frame)
	if !frame.WasReleased(core.ActionLeft) || h.Held(core.ActionLeft) {
		t.Error("Expected a release after the initial hold")
	}
}

func TestHoldTrackerRepeats(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	now := time.Unix(0, 0)
	frame := core.NewInputFrame()

	h.Press(core.ActionRight, now, &frame)
	for range 10 {
		now = now.Add(50 * time.Millisecond)
		h.Press(core.ActionRight, now, &frame)
		h.Expire(now, &frame)
	}
	if frame.WasReleased(core.ActionRight) {
		t.Fatal("Repeating key should stay held")
	}

	// Once repeating, the shorter timeout applies
	frame = core.NewInputFrame()
	h.Expire(now.Add(150*time.Millisecond), &frame)
	if !frame.WasReleased(core.ActionRight) {
		t.Error("Expected release once repeats stop")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	now := time.Unix(0, 0)

	frame := core.NewInputFrame()
	h.Press(core.ActionLeft, now, &frame)

	frame = core.NewInputFrame()
	h.Press(core.ActionRight, now, &frame)

	if !frame.WasReleased(core.ActionLeft) {
		t.Error("Pressing right should release left")
	}
	if h.Held(core.ActionLeft) || !h.Held(core.ActionRight) {
		t.Error("Only right should be held")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	frame := core.NewInputFrame()
	h.Press(core.ActionRight, time.Unix(0, 0), &frame)

	frame = core.NewInputFrame()
	h.ReleaseAll(&frame)
	if !frame.WasReleased(core.ActionRight) || h.Held(core.ActionRight) {
		t.Error("ReleaseAll should release every held action")
	}
}
