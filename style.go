package tiltcard

// StyleTargets are the discrete values selected by the interaction flags.
// Transitions animate toward them; nothing here is smoothed.
type StyleTargets struct {
	Scale           float64
	GlowOpacity     float64
	GlowScale       float64
	PatternRotation float64
	Shadow          float64 // 0 = resting shadow, 1 = hover glow
	LetterScale     float64
	LetterGlow      float64
	TitleGradient   float64
	UnderlineWidth  float64
	Highlight       bool
}

// Targets selects the presentation values for an interaction state.
// Press takes precedence over hover for the card scale.
func Targets(s InteractionState) StyleTargets {
	t := StyleTargets{
		Scale:          1,
		GlowScale:      1,
		LetterScale:    1,
		UnderlineWidth: 64,
	}
	if s.Hovered {
		t.Scale = 1.02
		t.GlowOpacity = 1
		t.GlowScale = 1.1
		t.PatternRotation = 180
		t.Shadow = 1
		t.LetterGlow = 1
		t.TitleGradient = 2
		t.UnderlineWidth = 80
		t.Highlight = true
	}
	if s.Pressed {
		t.Scale = 0.98
		t.LetterScale = 0.9
	}
	return t
}

// Style is every renderable property of the card for one frame. It is
// produced by Card.Style from the current springs, transitions, loops and
// interaction flags.
type Style struct {
	// Tilt, in degrees.
	RotateX float64
	RotateY float64

	// Whole-card entrance and gesture state.
	Opacity float64
	OffsetY float64
	Scale   float64

	GlowOpacity float64
	GlowScale   float64

	PatternRotation float64 // degrees

	AvatarScale    float64
	AvatarRotation float64 // degrees
	Shadow         float64
	LetterScale    float64
	LetterGlow     float64
	RingRotation   float64 // degrees
	PulseScale     float64
	PulseAlpha     float64

	TitleAlpha     float64
	TitleOffsetY   float64
	TitleGradient  float64 // gradient position as a fraction of text width
	UnderlineWidth float64

	DescriptionAlpha   float64
	DescriptionOffsetY float64
	Highlight          float64 // highlight gradient position in [0, 1]

	RowAlpha float64
	RowScale float64

	Particles [particleCount]ParticleStyle
	Dots      [dotCount]DotStyle

	Hovered bool
	Pressed bool
}
