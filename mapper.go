package tiltcard

// Default mapping constants for the card tilt.
const (
	DefaultTiltDomain = 300.0 // pixels from center at which tilt saturates
	DefaultTiltAngle  = 15.0  // degrees of tilt at saturation
)

// AxisMapper maps a pointer offset on one axis to a raw rotation angle.
// Domain[0] maps to Range[0] and Domain[1] maps to Range[1]; Range may be
// descending to invert the sign. Inputs outside the domain are clamped to
// the nearest endpoint before interpolation.
//
// AxisMapper is a value type with no state; Map is pure.
type AxisMapper struct {
	Domain [2]float64 `yaml:"domain"`
	Range  [2]float64 `yaml:"range"`
}

// RotateXMapper maps the vertical offset to rotation about the X axis.
// The output range is descending: moving the pointer down produces a
// negative rotation.
func RotateXMapper() AxisMapper {
	return AxisMapper{
		Domain: [2]float64{-DefaultTiltDomain, DefaultTiltDomain},
		Range:  [2]float64{DefaultTiltAngle, -DefaultTiltAngle},
	}
}

// RotateYMapper maps the horizontal offset to rotation about the Y axis.
func RotateYMapper() AxisMapper {
	return AxisMapper{
		Domain: [2]float64{-DefaultTiltDomain, DefaultTiltDomain},
		Range:  [2]float64{-DefaultTiltAngle, DefaultTiltAngle},
	}
}

// Map returns the rotation in degrees for offset v.
func (m AxisMapper) Map(v float64) float64 {
	d0, d1 := m.Domain[0], m.Domain[1]
	if d0 == d1 {
		return m.Range[0]
	}
	t := clamp01((v - d0) / (d1 - d0))
	return lerp(m.Range[0], m.Range[1], t)
}

// valid reports whether the mapper has a usable domain.
func (m AxisMapper) valid() bool {
	return m.Domain[0] != m.Domain[1]
}
