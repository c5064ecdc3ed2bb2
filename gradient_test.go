package tiltcard

import "testing"

func colorsClose(a, b Color, eps float64) bool {
	return approxEqual(a.R, b.R, eps) && approxEqual(a.G, b.G, eps) &&
		approxEqual(a.B, b.B, eps) && approxEqual(a.A, b.A, eps)
}

func TestGradientEndpoints(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, ColorBlue500},
		{"middle", 0.5, ColorPurple500},
		{"end", 1, ColorPink500},
		{"clamped below", -3, ColorBlue500},
		{"clamped above", 2, ColorPink500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brand.At(tt.t); !colorsClose(got, tt.want, 1e-6) {
				t.Errorf("At(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestGradientInRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		c := Brand.At(float64(i) / 100)
		for _, v := range []float64{c.R, c.G, c.B, c.A} {
			if v < 0 || v > 1 {
				t.Fatalf("At(%v) = %+v has a component outside [0, 1]", float64(i)/100, c)
			}
		}
	}
}

func TestGradientCyclic(t *testing.T) {
	ring := Brand.Closed()
	if got := ring.Cyclic(1); !colorsClose(got, ColorBlue500, 1e-6) {
		t.Errorf("Cyclic(1) = %+v, want first stop", got)
	}
	if got := ring.Cyclic(-0.25); !colorsClose(got, ring.Cyclic(0.75), 1e-9) {
		t.Errorf("Cyclic(-0.25) = %+v, want Cyclic(0.75)", got)
	}
	if got := ring.Cyclic(1.0 / 3); !colorsClose(got, ColorPurple500, 1e-6) {
		t.Errorf("Cyclic(1/3) = %+v, want second stop", got)
	}
	// The seam is continuous: just below 1 is close to the first stop.
	if got := ring.Cyclic(0.9999); !colorsClose(got, ColorBlue500, 5e-3) {
		t.Errorf("Cyclic(0.9999) = %+v, want close to first stop", got)
	}
}

func TestGradientClosed(t *testing.T) {
	g := Gradient{ColorBlue500, ColorPink500}
	closed := g.Closed()
	if len(closed) != 3 || closed[2] != ColorBlue500 {
		t.Fatalf("Closed = %+v", closed)
	}
	closed[0] = ColorWhite
	if g[0] != ColorBlue500 {
		t.Error("Closed aliases the original gradient")
	}
	if (Gradient{}).Closed() != nil {
		t.Error("closing an empty gradient should give nil")
	}
}

func TestGradientCyclicNoAlloc(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = brandRing.Cyclic(0.37)
		_ = highlightSweep.Cyclic(1.6)
	})
	if allocs != 0 {
		t.Errorf("Cyclic allocates %v times per call pair, want 0", allocs)
	}
}

func TestGradientDegenerate(t *testing.T) {
	if got := (Gradient{}).At(0.5); got != (Color{}) {
		t.Errorf("empty gradient = %+v", got)
	}
	if got := (Gradient{ColorWhite}).At(0.7); got != ColorWhite {
		t.Errorf("single stop = %+v", got)
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.A != 128 || c.R != 128 || c.B != 0 {
		t.Errorf("toRGBA = %+v, want premultiplied R=128 A=128", c)
	}
	if w := ColorWhite.WithAlpha(0.25); w.A != 0.25 || w.R != 1 {
		t.Errorf("WithAlpha = %+v", w)
	}
}
