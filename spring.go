package tiltcard

import "math"

// Default spring parameters for the tilt axes.
const (
	DefaultStiffness = 300.0
	DefaultDamping   = 30.0

	// maxSpringStep bounds a single integration step. Longer frames are
	// split into sub-steps of at most this length.
	maxSpringStep = 1.0 / 240
)

// SpringParams configures a Spring.
type SpringParams struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

// Spring is a damped harmonic oscillator that follows a moving target.
// The output never jumps: each Update moves value by velocity*dt, and the
// spring keeps integrating until value reaches the target with zero velocity.
//
// Spring has no notion of completion. Callers read Value every frame.
type Spring struct {
	Stiffness float64
	Damping   float64

	value    float64
	velocity float64
	target   float64
}

// NewSpring creates a spring at rest at zero.
func NewSpring(stiffness, damping float64) *Spring {
	return &Spring{Stiffness: stiffness, Damping: damping}
}

// NewSpringParams creates a spring at rest at zero from p.
func NewSpringParams(p SpringParams) *Spring {
	return NewSpring(p.Stiffness, p.Damping)
}

// Value returns the current smoothed output.
func (s *Spring) Value() float64 { return s.value }

// Velocity returns the current rate of change of Value per second.
func (s *Spring) Velocity() float64 { return s.velocity }

// Target returns the value the spring is moving toward.
func (s *Spring) Target() float64 { return s.target }

// SetTarget changes the value the spring moves toward. The output is not
// affected until the next Update.
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Snap places the spring at rest at v, with v as its target.
func (s *Spring) Snap(v float64) {
	s.value = v
	s.target = v
	s.velocity = 0
}

// Update advances the spring by dt seconds using semi-implicit Euler:
//
//	a = k(target - value) - c*velocity
//	velocity += a*dt
//	value += velocity*dt
//
// Non-positive and non-finite dt are ignored.
func (s *Spring) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	for dt > 0 {
		h := math.Min(dt, maxSpringStep)
		a := s.Stiffness*(s.target-s.value) - s.Damping*s.velocity
		s.velocity += a * h
		s.value += s.velocity * h
		dt -= h
	}
}

// Settled reports whether the spring is within eps of its target with a
// velocity smaller than eps.
func (s *Spring) Settled(eps float64) bool {
	return math.Abs(s.target-s.value) <= eps && math.Abs(s.velocity) <= eps
}

// StepResponse simulates a spring starting at rest at 0 with target 1 and
// returns samples of its value every dt seconds for the given duration.
// Used by the response command to plot a parameter set.
func StepResponse(p SpringParams, dt, duration float64) []float64 {
	if !(dt > 0) || !(duration > 0) {
		return nil
	}
	s := NewSpringParams(p)
	s.SetTarget(1)
	n := int(duration/dt) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Value())
		s.Update(dt)
	}
	return out
}
