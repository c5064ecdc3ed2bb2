package tiltcard

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionRetarget(t *testing.T) {
	tr := NewTransition(0, 1, ease.Linear)
	if !tr.Done || tr.Value() != 0 {
		t.Fatalf("new transition should be at rest at 0, got value=%v done=%v", tr.Value(), tr.Done)
	}
	tr.Retarget(10)
	if tr.Done {
		t.Fatal("retarget should start the transition")
	}
	tr.Update(0.5)
	if !approxEqual(tr.Value(), 5, 1e-4) {
		t.Errorf("value at half time = %v, want 5", tr.Value())
	}
	tr.Update(0.6)
	if !tr.Done || tr.Value() != 10 {
		t.Errorf("after full duration: value=%v done=%v", tr.Value(), tr.Done)
	}
}

func TestTransitionRetargetMidFlight(t *testing.T) {
	tr := NewTransition(0, 1, ease.Linear)
	tr.Retarget(10)
	tr.Update(0.5)
	mid := tr.Value()

	tr.Retarget(0)
	if tr.Value() != mid {
		t.Errorf("retarget jumped from %v to %v", mid, tr.Value())
	}
	tr.Update(0.5)
	if !approxEqual(tr.Value(), mid/2, 1e-4) {
		t.Errorf("value = %v, want %v", tr.Value(), mid/2)
	}
}

func TestTransitionRetargetSameTarget(t *testing.T) {
	tr := NewTransition(0, 1, ease.Linear)
	tr.Retarget(10)
	tr.Update(0.5)
	tr.Retarget(10) // must not restart
	tr.Update(0.5)
	if !tr.Done {
		t.Errorf("transition restarted: value=%v", tr.Value())
	}
}

func TestDelayedTransition(t *testing.T) {
	tr := NewDelayedTransition(0, 1, 0.5, 1, ease.Linear)
	tr.Update(0.4)
	if tr.Value() != 0 {
		t.Errorf("value during delay = %v, want 0", tr.Value())
	}
	// 0.1 remaining delay, 0.5 into the tween.
	tr.Update(0.6)
	if !approxEqual(tr.Value(), 0.5, 1e-4) {
		t.Errorf("value = %v, want 0.5", tr.Value())
	}
	tr.Update(1)
	if !tr.Done || tr.Value() != 1 {
		t.Errorf("value=%v done=%v, want 1 done", tr.Value(), tr.Done)
	}
}

func TestTransitionCancelAndJump(t *testing.T) {
	tr := NewTransition(0, 1, ease.Linear)
	tr.Retarget(10)
	tr.Update(0.25)
	v := tr.Value()
	tr.Cancel()
	tr.Update(1)
	if tr.Value() != v || tr.To() != v {
		t.Errorf("cancelled transition moved: value=%v to=%v, want %v", tr.Value(), tr.To(), v)
	}

	tr.Jump(3)
	if tr.Value() != 3 || !tr.Done {
		t.Errorf("Jump: value=%v done=%v", tr.Value(), tr.Done)
	}
}

func TestTransitionZeroDuration(t *testing.T) {
	tr := NewTransition(0, 0, nil)
	tr.Retarget(4)
	if tr.Value() != 4 || !tr.Done {
		t.Errorf("zero duration: value=%v done=%v", tr.Value(), tr.Done)
	}
}
