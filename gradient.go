package tiltcard

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette used by the card.
var (
	ColorBlue400   = hexColor("#60a5fa")
	ColorBlue500   = hexColor("#3b82f6")
	ColorBlue600   = hexColor("#2563eb")
	ColorPurple500 = hexColor("#8b5cf6")
	ColorPurple600 = hexColor("#9333ea")
	ColorPink500   = hexColor("#ec4899")
	ColorSlate200  = hexColor("#e2e8f0")
	ColorSlate600  = hexColor("#475569")
	ColorSlate700  = hexColor("#334155")
	ColorSlate800  = hexColor("#1e293b")
)

// hexColor parses a #rrggbb literal. Only used for the fixed palette above,
// so a bad literal panics at init.
func hexColor(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Gradient is a list of evenly spaced color stops. Neighbouring stops are
// blended in CIE L*a*b*.
type Gradient []Color

// Brand is the blue → purple → pink gradient used throughout the card.
var Brand = Gradient{ColorBlue500, ColorPurple500, ColorPink500}

// Gradients used by the renderer. The looping ones are closed once here.
var (
	brandRing      = Brand.Closed()
	avatarGradient = Gradient{ColorBlue500, ColorPurple600, ColorPink500}
	dotGradient    = Gradient{ColorBlue400, ColorPurple500}
	titleSweep     = Gradient{ColorSlate800, ColorSlate700, ColorSlate800}
	highlightSweep = Gradient{ColorBlue600, ColorPurple600}.Closed()
)

// At returns the color at position t in [0, 1]. Values outside are clamped.
func (g Gradient) At(t float64) Color {
	switch len(g) {
	case 0:
		return Color{}
	case 1:
		return g[0]
	}
	t = clamp01(t)
	seg := t * float64(len(g)-1)
	i := int(seg)
	if i >= len(g)-1 {
		i = len(g) - 2
	}
	local := seg - float64(i)
	a, b := g[i], g[i+1]
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	m := ca.BlendLab(cb, local).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(a.A, b.A, local)}
}

// Closed returns a copy of g with its first stop appended, so the gradient
// blends back into its start. Use the result with Cyclic.
func (g Gradient) Closed() Gradient {
	if len(g) == 0 {
		return nil
	}
	out := make(Gradient, len(g)+1)
	copy(out, g)
	out[len(g)] = g[0]
	return out
}

// Cyclic returns the color at position t wrapped into [0, 1). g should be
// closed (see Closed) for the wrap to be seamless.
func (g Gradient) Cyclic(t float64) Color {
	t = math.Mod(t, 1)
	if t < 0 {
		t += 1
	}
	return g.At(t)
}
