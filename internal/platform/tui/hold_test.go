package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestHoldTrackerExpire(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionLeft, t0.Add(300*time.Millisecond))

	if got := h.Expire(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Errorf("nothing should expire yet, got %v", got)
	}

	got := h.Expire(t0.Add(500 * time.Millisecond))
	if !slices.Equal(got, []core.Action{core.ActionRight}) {
		t.Errorf("Expire = %v, expected [Right]", got)
	}
	if h.Held(core.ActionRight) || !h.Held(core.ActionLeft) {
		t.Error("only Right should have been released")
	}

	got = h.Expire(t0.Add(time.Second))
	if !slices.Equal(got, []core.Action{core.ActionLeft}) {
		t.Errorf("Expire = %v, expected [Left]", got)
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	for i := range 5 {
		h.Press(core.ActionLeft, t0.Add(time.Duration(i)*100*time.Millisecond))
	}
	if got := h.Expire(t0.Add(800 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeats should keep the key held, released %v", got)
	}
	if got := h.Expire(t0.Add(900 * time.Millisecond)); len(got) != 1 {
		t.Errorf("key should release after the last repeat times out, got %v", got)
	}
}

func TestHoldTrackerOrderAndReset(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionLeft, t0)

	got := h.Expire(t0.Add(DefaultHoldTimeout))
	if !slices.Equal(got, []core.Action{core.ActionLeft, core.ActionRight}) {
		t.Errorf("Expire = %v, expected action order", got)
	}

	h.Press(core.ActionLeft, t0)
	h.Reset()
	if h.Held(core.ActionLeft) {
		t.Error("Reset should forget held keys")
	}
}

func TestHoldTrackerForgetAndReleaseAll(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionLeft, t0)

	h.Forget(core.ActionRight)
	if h.Held(core.ActionRight) {
		t.Error("forgotten key should not be held")
	}
	if got := h.Expire(t0.Add(time.Second)); !slices.Equal(got, []core.Action{core.ActionLeft}) {
		t.Errorf("Expire = %v, forgotten key should not be released", got)
	}

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionLeft, t0)
	if got := h.ReleaseAll(); !slices.Equal(got, []core.Action{core.ActionLeft, core.ActionRight}) {
		t.Errorf("ReleaseAll = %v, expected action order", got)
	}
	if h.Held(core.ActionLeft) || h.Held(core.ActionRight) {
		t.Error("ReleaseAll should stop tracking every key")
	}
	if got := h.ReleaseAll(); len(got) != 0 {
		t.Errorf("second ReleaseAll = %v, expected nothing", got)
	}
}
