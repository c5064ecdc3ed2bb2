package tiltcard

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestAxisMapperMap(t *testing.T) {
	rx := RotateXMapper()
	ry := RotateYMapper()

	tests := []struct {
		name string
		m    AxisMapper
		v    float64
		want float64
	}{
		{"x center", rx, 0, 0},
		{"x domain min", rx, -300, 15},
		{"x domain max", rx, 300, -15},
		{"x half", rx, 150, -7.5},
		{"x clamped below", rx, -1000, 15},
		{"x clamped above", rx, 1000, -15},
		{"y center", ry, 0, 0},
		{"y half", ry, 150, 7.5},
		{"y negative half", ry, -150, -7.5},
		{"y clamped", ry, 301, 15},
		{"degenerate domain", AxisMapper{Domain: [2]float64{5, 5}, Range: [2]float64{2, 9}}, 100, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Map(tt.v); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("Map(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestAxisMapperMonotonic(t *testing.T) {
	rx := RotateXMapper()
	ry := RotateYMapper()
	prevX, prevY := rx.Map(-400), ry.Map(-400)
	for v := -399.0; v <= 400; v++ {
		x, y := rx.Map(v), ry.Map(v)
		if x > prevX {
			t.Fatalf("rotate-x mapper increased at %v: %v > %v", v, x, prevX)
		}
		if y < prevY {
			t.Fatalf("rotate-y mapper decreased at %v: %v < %v", v, y, prevY)
		}
		if math.Abs(x) > DefaultTiltAngle || math.Abs(y) > DefaultTiltAngle {
			t.Fatalf("mapped value outside range at %v: x=%v y=%v", v, x, y)
		}
		prevX, prevY = x, y
	}
}

func TestAxisMapperPure(t *testing.T) {
	m := RotateYMapper()
	a := m.Map(123)
	_ = m.Map(-999)
	if b := m.Map(123); a != b {
		t.Errorf("Map(123) changed between calls: %v then %v", a, b)
	}
}

func TestAxisMapperValid(t *testing.T) {
	if !RotateXMapper().valid() {
		t.Error("default mapper should be valid")
	}
	if (AxisMapper{}).valid() {
		t.Error("zero mapper should be invalid")
	}
}
