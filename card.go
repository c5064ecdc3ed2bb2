package tiltcard

import (
	"math"

	"github.com/tanema/gween/ease"
)

// BoundsFunc reports the card's current on-screen bounding rectangle. It
// returns false while the card has not been laid out.
type BoundsFunc func() (Rect, bool)

// EntityStore is the interface for optional ECS integration. When set on a
// Card, every handled interaction is forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type    EventType
	X, Y    float64 // last pointer position in screen space
	Offset  Vec2
	Hovered bool
	Pressed bool
	Button  MouseButton // set on pointer-down and pointer-up
}

// Entrance timing, in seconds from mount.
const (
	cardEnterDelay        = 0.1
	avatarEnterDelay      = 0.3
	titleEnterDelay       = 0.5
	descriptionEnterDelay = 0.7
	rowEnterDelay         = 0.9
)

// Card is the tilt card component. It owns the interaction record, the two
// tilt pipelines (AxisMapper then Spring per axis), the state-driven
// transitions and the decorative loops.
//
// A Card is driven from a single goroutine: the host calls the pointer
// handlers as events arrive and Update once per frame, then pulls a Style.
// Handlers and Update are no-ops while the card is not mounted.
type Card struct {
	cfg    Config
	bounds BoundsFunc
	store  EntityStore

	mounted bool
	clock   float64
	lastX   float64
	lastY   float64

	state InteractionState
	rotX  *Spring
	rotY  *Spring

	// entrance
	opacity      *Spring
	offsetY      *Spring
	scale        *Spring
	avatarScale  *Spring
	avatarRotate *Spring
	titleIn      *Transition
	descIn       *Transition
	rowIn        *Transition

	// state-driven
	glowOpacity *Transition
	glowScale   *Transition
	pattern     *Transition
	shadow      *Transition
	letterScale *Transition
	letterGlow  *Transition
	titleGrad   *Transition
	underline   *Transition
	highlight   *Transition
	underlineIn bool // mount tween of the underline has finished

	// highlightStart is the loop origin; it is chosen when hover begins so
	// the loop continues from the highlight's value at that moment.
	highlightStart float64
	highlightOn    bool

	decor decorations
}

// NewCard creates an unmounted card. cfg is used as given; callers loading
// untrusted config should Validate it first.
func NewCard(cfg Config) *Card {
	return &Card{cfg: cfg, decor: newDecorations()}
}

// Config returns the card's current configuration.
func (c *Card) Config() Config { return c.cfg }

// SetEntityStore sets the optional ECS bridge.
func (c *Card) SetEntityStore(store EntityStore) {
	c.store = store
}

// Mount starts a fresh lifecycle: interaction state is reset, springs are
// created at their initial values and the entrance sequence begins. bounds is
// queried on every pointer move.
func (c *Card) Mount(bounds BoundsFunc) {
	c.bounds = bounds
	c.mounted = true
	c.clock = 0
	c.state = InteractionState{}
	c.highlightOn = false
	c.highlightStart = 0
	c.underlineIn = false

	c.rotX = NewSpringParams(c.cfg.Tilt)
	c.rotY = NewSpringParams(c.cfg.Tilt)

	c.opacity = NewSpringParams(c.cfg.Entrance)
	c.offsetY = NewSpringParams(c.cfg.Entrance)
	c.scale = NewSpringParams(c.cfg.Entrance)
	c.offsetY.Snap(50)
	c.scale.Snap(0.9)
	c.avatarScale = NewSpringParams(c.cfg.Entrance)
	c.avatarRotate = NewSpringParams(c.cfg.Entrance)
	c.avatarRotate.Snap(-180)

	c.titleIn = NewDelayedTransition(0, 1, titleEnterDelay, 0.6, ease.OutQuad)
	c.descIn = NewDelayedTransition(0, 1, descriptionEnterDelay, 0.6, ease.OutQuad)
	c.rowIn = NewDelayedTransition(0, 1, rowEnterDelay, 0.5, ease.OutQuad)

	c.glowOpacity = NewTransition(0, 0.7, ease.InOutQuad)
	c.glowScale = NewTransition(1, 0.6, ease.InOutQuad)
	c.pattern = NewTransition(0, 8, ease.Linear)
	c.shadow = NewTransition(0, 0.3, ease.InOutQuad)
	c.letterScale = NewTransition(1, 0.2, ease.InOutQuad)
	c.letterGlow = NewTransition(0, 0.2, ease.InOutQuad)
	c.titleGrad = NewTransition(0, 0.8, ease.InOutQuad)
	c.underline = NewTransition(0, 0.4, ease.InOutQuad)
	c.underline.Retarget(64)
	c.highlight = NewTransition(0, 1.2, ease.InOutSine)
}

// Unmount ends the lifecycle. Running transitions are cancelled and every
// later handler call or Update is ignored until the next Mount.
func (c *Card) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.bounds = nil
	for _, t := range c.transitions() {
		t.Cancel()
	}
}

// Mounted reports whether the card is mounted.
func (c *Card) Mounted() bool { return c.mounted }

// State returns a copy of the interaction record.
func (c *Card) State() InteractionState { return c.state }

// Elapsed returns seconds since Mount.
func (c *Card) Elapsed() float64 { return c.clock }

// Bounds measures the card through its BoundsFunc.
func (c *Card) Bounds() (Rect, bool) {
	if !c.mounted || c.bounds == nil {
		return Rect{}, false
	}
	return c.bounds()
}

// ApplyConfig swaps in a new configuration without resetting the interaction
// state or the springs' current values. Used by config hot reload.
func (c *Card) ApplyConfig(cfg Config) {
	c.cfg = cfg
	if !c.mounted {
		return
	}
	for _, s := range []*Spring{c.rotX, c.rotY} {
		s.Stiffness, s.Damping = cfg.Tilt.Stiffness, cfg.Tilt.Damping
	}
	for _, s := range []*Spring{c.opacity, c.offsetY, c.scale, c.avatarScale, c.avatarRotate} {
		s.Stiffness, s.Damping = cfg.Entrance.Stiffness, cfg.Entrance.Damping
	}
	c.retargetTilt()
}

// --- Pointer handlers ---

// PointerEnter marks the card hovered.
func (c *Card) PointerEnter() {
	if !c.mounted {
		return
	}
	c.state.enter()
	c.emit(EventPointerEnter, 0)
}

// PointerLeave clears hover and resets the offset so both tilt springs relax
// toward zero.
func (c *Card) PointerLeave() {
	if !c.mounted {
		return
	}
	c.state.leave(c.cfg.PressPolicy)
	c.retargetTilt()
	c.emit(EventPointerLeave, 0)
}

// PointerDown marks the card pressed by button.
func (c *Card) PointerDown(button MouseButton) {
	if !c.mounted {
		return
	}
	c.state.down()
	c.emit(EventPointerDown, button)
}

// PointerUp releases the card; button is the one that was released.
func (c *Card) PointerUp(button MouseButton) {
	if !c.mounted {
		return
	}
	c.state.up()
	c.emit(EventPointerUp, button)
}

// PointerMove records a pointer position in screen coordinates. The offset is
// computed against bounds measured now; if the card cannot be measured the
// event is dropped.
func (c *Card) PointerMove(x, y float64) {
	if !c.mounted || c.bounds == nil {
		return
	}
	r, ok := c.bounds()
	if !ok || r.Empty() {
		return
	}
	c.lastX, c.lastY = x, y
	c.state.Offset = PointerOffset(r, x, y)
	c.retargetTilt()
	c.emit(EventPointerMove, 0)
}

// retargetTilt feeds the current offset through both axis mappers.
func (c *Card) retargetTilt() {
	c.rotX.SetTarget(c.cfg.RotateX.Map(c.state.Offset.Y))
	c.rotY.SetTarget(c.cfg.RotateY.Map(c.state.Offset.X))
}

func (c *Card) emit(t EventType, button MouseButton) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(InteractionEvent{
		Type:    t,
		X:       c.lastX,
		Y:       c.lastY,
		Offset:  c.state.Offset,
		Hovered: c.state.Hovered,
		Pressed: c.state.Pressed,
		Button:  button,
	})
}

// --- Frame ---

// Update advances the card by dt seconds of real elapsed time.
func (c *Card) Update(dt float64) {
	if !c.mounted || !(dt > 0) {
		return
	}
	c.clock += dt

	targets := Targets(c.state)

	c.rotX.Update(dt)
	c.rotY.Update(dt)

	if c.clock >= cardEnterDelay {
		c.opacity.SetTarget(1)
		c.offsetY.SetTarget(0)
		c.scale.SetTarget(targets.Scale)
	}
	if c.clock >= avatarEnterDelay {
		c.avatarScale.SetTarget(1)
		c.avatarRotate.SetTarget(0)
	}
	for _, s := range []*Spring{c.opacity, c.offsetY, c.scale, c.avatarScale, c.avatarRotate} {
		s.Update(dt)
	}

	c.glowOpacity.Retarget(targets.GlowOpacity)
	c.glowScale.Retarget(targets.GlowScale)
	c.pattern.Retarget(targets.PatternRotation)
	c.shadow.Retarget(targets.Shadow)
	c.letterScale.Retarget(targets.LetterScale)
	c.letterGlow.Retarget(targets.LetterGlow)
	c.titleGrad.Retarget(targets.TitleGradient)
	if !c.underlineIn && c.underline.Done {
		c.underlineIn = true
	}
	if c.underlineIn {
		c.underline.Retarget(targets.UnderlineWidth)
	}
	c.updateHighlight(targets.Highlight)

	fdt := float32(dt)
	for _, t := range c.transitions() {
		t.Update(fdt)
	}
}

// updateHighlight switches the description highlight between a yoyo loop
// while hovered and a transition back to rest otherwise.
func (c *Card) updateHighlight(on bool) {
	if on == c.highlightOn {
		return
	}
	c.highlightOn = on
	if on {
		v := clamp01(c.highlight.Value())
		c.highlight.Cancel()
		c.highlightStart = c.clock - highlightPhase(v)*highlightPeriod
		return
	}
	c.highlight.Jump(c.highlightLoop().Sample(c.clock))
	c.highlight.Retarget(0)
}

const highlightPeriod = 2.4

func (c *Card) highlightLoop() Loop {
	return Loop{Period: highlightPeriod, Delay: c.highlightStart, Keyframes: []float64{0, 1, 0}, Ease: ease.InOutSine}
}

// highlightPhase is the phase on the rising half of the highlight loop at
// which it reads v. Inverts the InOutSine segment.
func highlightPhase(v float64) float64 {
	return math.Acos(1-2*clamp01(v)) / (2 * math.Pi)
}

func (c *Card) transitions() []*Transition {
	return []*Transition{
		c.titleIn, c.descIn, c.rowIn,
		c.glowOpacity, c.glowScale, c.pattern, c.shadow,
		c.letterScale, c.letterGlow, c.titleGrad, c.underline, c.highlight,
	}
}

// RotateX returns the smoothed X-axis rotation in degrees.
func (c *Card) RotateX() float64 {
	if c.rotX == nil {
		return 0
	}
	return c.rotX.Value()
}

// RotateY returns the smoothed Y-axis rotation in degrees.
func (c *Card) RotateY() float64 {
	if c.rotY == nil {
		return 0
	}
	return c.rotY.Value()
}

// Style samples every renderable property for the current frame. An
// unmounted card returns the zero Style.
func (c *Card) Style() Style {
	if !c.mounted {
		return Style{}
	}
	st := Style{
		RotateX: c.rotX.Value(),
		RotateY: c.rotY.Value(),
		Opacity: clamp01(c.opacity.Value()),
		OffsetY: c.offsetY.Value(),
		Scale:   c.scale.Value(),

		GlowOpacity:     c.glowOpacity.Value(),
		GlowScale:       c.glowScale.Value(),
		PatternRotation: c.pattern.Value(),

		AvatarScale:    c.avatarScale.Value(),
		AvatarRotation: c.avatarRotate.Value(),
		Shadow:         c.shadow.Value(),
		LetterScale:    c.letterScale.Value(),
		LetterGlow:     c.letterGlow.Value(),

		TitleAlpha:     c.titleIn.Value(),
		TitleOffsetY:   20 * (1 - c.titleIn.Value()),
		TitleGradient:  c.titleGrad.Value(),
		UnderlineWidth: c.underline.Value(),

		DescriptionAlpha:   c.descIn.Value(),
		DescriptionOffsetY: 20 * (1 - c.descIn.Value()),

		RowAlpha: c.rowIn.Value(),
		RowScale: lerp(0.8, 1, c.rowIn.Value()),

		Hovered: c.state.Hovered,
		Pressed: c.state.Pressed,
	}
	if c.highlightOn {
		st.Highlight = c.highlightLoop().Sample(c.clock)
	} else {
		st.Highlight = c.highlight.Value()
	}
	c.decor.sample(c.clock, &st)
	return st
}
