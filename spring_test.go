package tiltcard

import (
	"math"
	"testing"
)

const frame = 1.0 / 60

func TestSpringConverges(t *testing.T) {
	s := NewSpring(DefaultStiffness, DefaultDamping)
	s.SetTarget(7.5)
	for i := 0; i < 120; i++ {
		s.Update(frame)
	}
	if !approxEqual(s.Value(), 7.5, 0.01) {
		t.Errorf("Value after 2s = %v, want ~7.5", s.Value())
	}
	if !s.Settled(0.05) {
		t.Errorf("spring not settled: value=%v velocity=%v", s.Value(), s.Velocity())
	}
}

func TestSpringNoJump(t *testing.T) {
	s := NewSpring(DefaultStiffness, DefaultDamping)
	s.SetTarget(15)
	if s.Value() != 0 {
		t.Fatalf("SetTarget moved the value to %v", s.Value())
	}
	s.Update(frame)
	if s.Value() <= 0 || s.Value() >= 15 {
		t.Errorf("after one frame value = %v, want strictly between 0 and 15", s.Value())
	}

	// Each frame moves by at most |velocity|*dt, which stays well below
	// the full distance for the default parameters.
	prev := s.Value()
	for i := 0; i < 60; i++ {
		s.Update(frame)
		if d := math.Abs(s.Value() - prev); d > 5 {
			t.Fatalf("frame %d jumped by %v", i, d)
		}
		prev = s.Value()
	}
}

func TestSpringRetargetToZero(t *testing.T) {
	s := NewSpring(DefaultStiffness, DefaultDamping)
	s.Snap(10)
	s.SetTarget(0)
	s.Update(frame)
	if s.Value() == 0 {
		t.Fatal("spring snapped to target instead of relaxing")
	}
	if s.Value() >= 10 {
		t.Errorf("spring did not move toward zero: %v", s.Value())
	}
	for i := 0; i < 180; i++ {
		s.Update(frame)
	}
	if !approxEqual(s.Value(), 0, 0.01) {
		t.Errorf("Value after 3s = %v, want ~0", s.Value())
	}
}

func TestSpringIgnoresNonPositiveDt(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		s := NewSpring(DefaultStiffness, DefaultDamping)
		s.SetTarget(1)
		s.Update(dt)
		if s.Value() != 0 || s.Velocity() != 0 {
			t.Errorf("Update(%v) changed state: value=%v velocity=%v", dt, s.Value(), s.Velocity())
		}
	}
}

func TestSpringSubsteps(t *testing.T) {
	// A long frame integrates the same as many short ones.
	a := NewSpring(DefaultStiffness, DefaultDamping)
	b := NewSpring(DefaultStiffness, DefaultDamping)
	a.SetTarget(1)
	b.SetTarget(1)
	a.Update(0.5)
	for i := 0; i < 120; i++ {
		b.Update(maxSpringStep)
	}
	if !approxEqual(a.Value(), b.Value(), 1e-6) {
		t.Errorf("long frame = %v, short frames = %v", a.Value(), b.Value())
	}
	if math.IsNaN(a.Value()) || math.IsInf(a.Value(), 0) {
		t.Errorf("long frame diverged: %v", a.Value())
	}
}

func TestSpringSnap(t *testing.T) {
	s := NewSpring(DefaultStiffness, DefaultDamping)
	s.SetTarget(3)
	s.Update(frame)
	s.Snap(-180)
	if s.Value() != -180 || s.Target() != -180 || s.Velocity() != 0 {
		t.Errorf("Snap: value=%v target=%v velocity=%v", s.Value(), s.Target(), s.Velocity())
	}
}

func TestStepResponse(t *testing.T) {
	p := SpringParams{Stiffness: DefaultStiffness, Damping: DefaultDamping}
	samples := StepResponse(p, 0.01, 1)
	if len(samples) != 101 {
		t.Fatalf("len = %d, want 101", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %v, want 0", samples[0])
	}
	if last := samples[len(samples)-1]; !approxEqual(last, 1, 0.01) {
		t.Errorf("last sample = %v, want ~1", last)
	}
	if StepResponse(p, 0, 1) != nil {
		t.Error("zero dt should return nil")
	}
	if StepResponse(p, 0.01, 0) != nil {
		t.Error("zero duration should return nil")
	}
}
