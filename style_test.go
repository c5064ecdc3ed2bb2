package tiltcard

import "testing"

func TestTargets(t *testing.T) {
	tests := []struct {
		name  string
		state InteractionState
		want  StyleTargets
	}{
		{
			name:  "idle",
			state: InteractionState{},
			want:  StyleTargets{Scale: 1, GlowScale: 1, LetterScale: 1, UnderlineWidth: 64},
		},
		{
			name:  "hovered",
			state: InteractionState{Hovered: true},
			want: StyleTargets{
				Scale: 1.02, GlowOpacity: 1, GlowScale: 1.1, PatternRotation: 180,
				Shadow: 1, LetterScale: 1, LetterGlow: 1, TitleGradient: 2,
				UnderlineWidth: 80, Highlight: true,
			},
		},
		{
			name:  "pressed without hover",
			state: InteractionState{Pressed: true},
			want:  StyleTargets{Scale: 0.98, GlowScale: 1, LetterScale: 0.9, UnderlineWidth: 64},
		},
		{
			name:  "pressed wins over hover",
			state: InteractionState{Hovered: true, Pressed: true},
			want: StyleTargets{
				Scale: 0.98, GlowOpacity: 1, GlowScale: 1.1, PatternRotation: 180,
				Shadow: 1, LetterScale: 0.9, LetterGlow: 1, TitleGradient: 2,
				UnderlineWidth: 80, Highlight: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Targets(tt.state); got != tt.want {
				t.Errorf("Targets(%+v) =\n%+v\nwant\n%+v", tt.state, got, tt.want)
			}
		})
	}
}

func TestTargetsIgnoreOffset(t *testing.T) {
	a := Targets(InteractionState{Hovered: true})
	b := Targets(InteractionState{Hovered: true, Offset: Vec2{X: 250, Y: -80}})
	if a != b {
		t.Error("offset should not affect style targets")
	}
}
