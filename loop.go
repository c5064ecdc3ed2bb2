package tiltcard

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Loop is an infinitely repeating keyframe animation expressed as a pure
// function of elapsed time. Keyframes are evenly spaced over Period; Ease is
// applied to each segment between neighbouring keyframes.
//
// Before Delay has elapsed the loop holds its first keyframe.
type Loop struct {
	Period    float64
	Delay     float64
	Keyframes []float64
	Ease      ease.TweenFunc
}

// Phase returns the position within the current cycle in [0, 1).
func (l Loop) Phase(elapsed float64) float64 {
	if l.Period <= 0 || elapsed <= l.Delay {
		return 0
	}
	p := math.Mod((elapsed-l.Delay)/l.Period, 1)
	if p < 0 {
		p += 1
	}
	return p
}

// Sample returns the loop's value at the given elapsed time.
func (l Loop) Sample(elapsed float64) float64 {
	n := len(l.Keyframes)
	switch n {
	case 0:
		return 0
	case 1:
		return l.Keyframes[0]
	}
	seg := l.Phase(elapsed) * float64(n-1)
	i := int(seg)
	if i >= n-1 {
		i = n - 2
	}
	local := seg - float64(i)
	fn := l.Ease
	if fn == nil {
		fn = ease.Linear
	}
	from, to := l.Keyframes[i], l.Keyframes[i+1]
	return float64(fn(float32(local), float32(from), float32(to-from), 1))
}
