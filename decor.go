package tiltcard

import (
	"github.com/tanema/gween/ease"
)

const (
	particleCount = 6
	dotCount      = 3
)

// particle is one floating dot on the card face. Anchor is a fraction of the
// face size; drift and fade loop independently of pointer input.
type particle struct {
	anchor Vec2
	drift  Loop
	fade   Loop
}

// dot is one of the pulsing dots in the bottom row.
type dot struct {
	scale Loop
	fade  Loop
}

// decorations holds every self-looping effect on the card. All of them are
// sampled from the card clock; none of them hold state.
type decorations struct {
	particles [particleCount]particle
	dots      [dotCount]dot
	ring      Loop
	pulse     Loop
	pulseFade Loop
}

func newDecorations() decorations {
	var d decorations
	for i := range d.particles {
		fi := float64(i)
		d.particles[i] = particle{
			anchor: Vec2{X: (20 + fi*15) / 100, Y: (10 + fi*10) / 100},
			drift: Loop{
				Period:    3 + fi*0.5,
				Delay:     fi * 0.2,
				Keyframes: []float64{-10, 10, -10},
				Ease:      ease.InOutSine,
			},
			fade: Loop{
				Period:    3 + fi*0.5,
				Delay:     fi * 0.2,
				Keyframes: []float64{0.3, 0.8, 0.3},
				Ease:      ease.InOutSine,
			},
		}
	}
	for i := range d.dots {
		fi := float64(i)
		d.dots[i] = dot{
			scale: Loop{Period: 1.5, Delay: fi * 0.2, Keyframes: []float64{1, 1.2, 1}, Ease: ease.InOutSine},
			fade:  Loop{Period: 1.5, Delay: fi * 0.2, Keyframes: []float64{0.5, 1, 0.5}, Ease: ease.InOutSine},
		}
	}
	d.ring = Loop{Period: 8, Keyframes: []float64{0, 360}}
	d.pulse = Loop{Period: 2, Keyframes: []float64{1, 1.2, 1}, Ease: ease.InOutSine}
	d.pulseFade = Loop{Period: 2, Keyframes: []float64{0.5, 0, 0.5}, Ease: ease.InOutSine}
	return d
}

// ParticleStyle is the sampled state of one floating particle.
type ParticleStyle struct {
	Anchor  Vec2 // fraction of face width/height
	OffsetY float64
	Alpha   float64
}

// DotStyle is the sampled state of one pulsing dot.
type DotStyle struct {
	Scale float64
	Alpha float64
}

func (d *decorations) sample(elapsed float64, st *Style) {
	for i := range d.particles {
		p := &d.particles[i]
		st.Particles[i] = ParticleStyle{
			Anchor:  p.anchor,
			OffsetY: p.drift.Sample(elapsed),
			Alpha:   p.fade.Sample(elapsed),
		}
	}
	for i := range d.dots {
		st.Dots[i] = DotStyle{
			Scale: d.dots[i].scale.Sample(elapsed),
			Alpha: d.dots[i].fade.Sample(elapsed),
		}
	}
	st.RingRotation = d.ring.Sample(elapsed)
	st.PulseScale = d.pulse.Sample(elapsed)
	st.PulseAlpha = d.pulseFade.Sample(elapsed)
}
