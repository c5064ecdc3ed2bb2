package tiltcard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates one float64 toward a target over a fixed duration.
// Retargeting starts a new tween from the current value, so the output never
// jumps when the target changes mid-flight.
//
// There is no global animation manager; the card calls Update each frame.
type Transition struct {
	tween    *gween.Tween
	value    float64
	to       float64
	delay    float32
	duration float32
	fn       ease.TweenFunc
	Done     bool
}

// NewTransition creates a transition at rest at v. Retarget uses the given
// duration (seconds) and easing function.
func NewTransition(v float64, duration float32, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.Linear
	}
	return &Transition{value: v, to: v, duration: duration, fn: fn, Done: true}
}

// NewDelayedTransition creates a transition that holds from for delay seconds
// and then animates to over duration seconds.
func NewDelayedTransition(from, to float64, delay, duration float32, fn ease.TweenFunc) *Transition {
	t := NewTransition(from, duration, fn)
	t.delay = delay
	t.start(to)
	return t
}

// Value returns the current animated value.
func (t *Transition) Value() float64 { return t.value }

// To returns the value the transition is moving toward.
func (t *Transition) To() float64 { return t.to }

// Retarget animates from the current value to v. A target equal to the
// current one is ignored so a running tween is not restarted every frame.
func (t *Transition) Retarget(v float64) {
	if v == t.to {
		return
	}
	t.start(v)
}

func (t *Transition) start(v float64) {
	t.to = v
	if t.duration <= 0 {
		t.value = v
		t.tween = nil
		t.Done = true
		return
	}
	t.tween = gween.New(float32(t.value), float32(v), t.duration, t.fn)
	t.Done = false
}

// Update advances the transition by dt seconds.
func (t *Transition) Update(dt float32) {
	if t.Done || t.tween == nil {
		return
	}
	if t.delay > 0 {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		dt = -t.delay
		t.delay = 0
	}
	val, finished := t.tween.Update(dt)
	t.value = float64(val)
	if finished {
		t.value = t.to
		t.Done = true
	}
}

// Jump stops any running tween and places the value at v.
func (t *Transition) Jump(v float64) {
	t.value = v
	t.to = v
	t.tween = nil
	t.delay = 0
	t.Done = true
}

// Cancel stops the transition where it is.
func (t *Transition) Cancel() {
	t.tween = nil
	t.to = t.value
	t.delay = 0
	t.Done = true
}
