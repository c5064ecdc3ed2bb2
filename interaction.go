package tiltcard

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PressPolicy decides what happens to the pressed flag when the pointer
// leaves the card while a button is held.
type PressPolicy uint8

const (
	// PressHoldUntilUp keeps the card pressed until a pointer-up arrives.
	// The input layer captures the pointer while pressed, so the up event
	// is delivered even when it happens outside the card.
	PressHoldUntilUp PressPolicy = iota
	// PressReleaseOnLeave clears the pressed flag on pointer-leave.
	PressReleaseOnLeave
)

// String returns the policy's config name.
func (p PressPolicy) String() string {
	switch p {
	case PressReleaseOnLeave:
		return "release-on-leave"
	default:
		return "hold-until-up"
	}
}

// ParsePressPolicy parses a policy name as written in config files.
func ParsePressPolicy(s string) (PressPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hold-until-up":
		return PressHoldUntilUp, nil
	case "release-on-leave":
		return PressReleaseOnLeave, nil
	}
	return PressHoldUntilUp, fmt.Errorf("unknown press policy %q", s)
}

// MarshalYAML implements yaml.Marshaler.
func (p PressPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler through the text form.
func (p *PressPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParsePressPolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PointerOffset returns the position (x, y) relative to the center of bounds.
// No clamping is applied.
func PointerOffset(bounds Rect, x, y float64) Vec2 {
	c := bounds.Center()
	return Vec2{X: x - c.X, Y: y - c.Y}
}

// InteractionState is the card's pointer record. Hovered and Pressed are
// independent; any combination is valid.
type InteractionState struct {
	Offset  Vec2
	Hovered bool
	Pressed bool
}

// enter marks the card hovered.
func (s *InteractionState) enter() bool {
	if s.Hovered {
		return false
	}
	s.Hovered = true
	return true
}

// leave clears hover and the offset. Press is only cleared under
// PressReleaseOnLeave.
func (s *InteractionState) leave(policy PressPolicy) {
	s.Hovered = false
	s.Offset = Vec2{}
	if policy == PressReleaseOnLeave {
		s.Pressed = false
	}
}

func (s *InteractionState) down() { s.Pressed = true }

func (s *InteractionState) up() { s.Pressed = false }
