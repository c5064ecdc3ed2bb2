package tiltcard

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action  string  `yaml:"action"`
	Label   string  `yaml:"label,omitempty"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	ToX     float64 `yaml:"toX,omitempty"`
	ToY     float64 `yaml:"toY,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
	Pressed bool    `yaml:"pressed,omitempty"`
}

// script is the top-level structure of an input script. Scripts are YAML;
// JSON scripts parse unchanged.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true, "path": true,
	"leave": true, "wait": true, "screenshot": true, "unmount": true,
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated visual checks. Attach it to a Game via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses an input script and returns a runner ready to attach.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has run and all injected input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// scriptHost is what a runner drives. *Game implements it.
type scriptHost interface {
	pointerInput() *PointerInput
	Screenshot(label string)
	unmountCard()
	leavePoint() (float64, float64)
}

// step advances the runner by one frame. Called before input processing.
func (r *ScriptRunner) step(h scriptHost) {
	if r.done {
		return
	}
	in := h.pointerInput()
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "move":
		if st.Pressed {
			in.InjectPress(st.X, st.Y)
		} else {
			in.InjectMove(st.X, st.Y)
		}
	case "press":
		in.InjectPress(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "path":
		in.InjectPath(st.X, st.Y, st.ToX, st.ToY, st.Frames, st.Pressed)
	case "leave":
		x, y := h.leavePoint()
		if st.Pressed {
			in.InjectPress(x, y)
		} else {
			in.InjectMove(x, y)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "unmount":
		h.unmountCard()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
