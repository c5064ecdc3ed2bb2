package tiltcard

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState is the per-pointer record of the input state machine.
type pointerState struct {
	down     bool
	over     bool // pointer is inside the card bounds
	captured bool // press started on the card; up is delivered wherever it lands
	lastX    float64
	lastY    float64
	button   MouseButton
	seen     bool
}

// PointerInput turns raw pointer samples into card events. Each tick it
// hit-tests every pointer against the card's bounds and fires enter/leave,
// move, down and up on the card.
//
// The card has a single hover and press record, so pointers are counted:
// enter fires when the first pointer moves over the card and leave when the
// last one moves off. Likewise down fires for the first capturing press and
// up when the last captured pointer is released.
//
// A press that starts on the card captures that pointer: the matching up is
// delivered even if the pointer has left the card.
type PointerInput struct {
	card     *Card
	pointers [maxPointers]pointerState
	over     int // pointers inside the card
	captured int // pointers holding a press that started on the card

	// synthetic disables the hardware mouse and touches; only injected
	// samples reach the card.
	synthetic bool

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// NewPointerInput creates an input state machine bound to card.
func NewPointerInput(card *Card) *PointerInput {
	return &PointerInput{card: card}
}

// Update processes one tick of input. Queued synthetic events take priority
// over the real mouse: while the queue is non-empty one event is consumed per
// tick and the hardware mouse is ignored. In synthetic mode the hardware is
// ignored even when the queue is empty.
func (in *PointerInput) Update() {
	if in.processInjected() || in.synthetic {
		return
	}
	in.processMouse()
	in.processTouches()
}

// SetSynthetic switches hardware input off (true) or back on (false).
// Pointer state built up by injected samples is kept either way.
func (in *PointerInput) SetSynthetic(enabled bool) {
	in.synthetic = enabled
}

// Pending reports the number of queued synthetic events.
func (in *PointerInput) Pending() int {
	return len(in.injectQueue)
}

// processMouse handles mouse input (pointer 0).
func (in *PointerInput) processMouse() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	in.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouches handles touch input (pointers 1-9).
func (in *PointerInput) processTouches() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// A lifted finger releases and leaves in the same tick.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !active[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			if ps.over {
				in.pointerOff(ps)
			}
			*ps = pointerState{}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *PointerInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// Enter is followed by a move at the entry position, so the card's offset is
// correct from the first frame it is hovered.
func (in *PointerInput) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &in.pointers[pointerID]
	card := in.card

	over := false
	if r, ok := card.Bounds(); ok {
		over = r.Contains(x, y)
	}
	moved := !ps.seen || x != ps.lastX || y != ps.lastY
	ps.seen = true
	ps.lastX = x
	ps.lastY = y

	switch {
	case over && !ps.over:
		ps.over = true
		in.over++
		if in.over == 1 {
			card.PointerEnter()
		}
		card.PointerMove(x, y)
	case !over && ps.over:
		in.pointerOff(ps)
	case over && moved:
		card.PointerMove(x, y)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		if over {
			ps.captured = true
			in.captured++
			if in.captured == 1 {
				card.PointerDown(button)
			}
		}
	case !pressed && ps.down:
		if ps.captured {
			in.captured--
			if in.captured == 0 {
				card.PointerUp(ps.button)
			}
		}
		ps.down = false
		ps.captured = false
	}
}

// pointerOff moves ps off the card. The card leaves only with the last
// pointer; otherwise the offset follows a pointer that is still over it.
func (in *PointerInput) pointerOff(ps *pointerState) {
	ps.over = false
	in.over--
	if in.over > 0 {
		for i := range in.pointers {
			if p := &in.pointers[i]; p.over {
				in.card.PointerMove(p.lastX, p.lastY)
				break
			}
		}
		return
	}
	in.over = 0
	in.card.PointerLeave()
}
