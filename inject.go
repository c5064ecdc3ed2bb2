package tiltcard

// syntheticPointerEvent represents a single injected pointer sample in
// screen coordinates. Synthetic samples run through the same state machine
// as the hardware mouse.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectMove queues a pointer sample at (x, y) with no button held.
// The sample is consumed on a following Update, one per tick.
func (in *PointerInput) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a pointer sample at (x, y) with the left button held.
func (in *PointerInput) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a button release at (x, y).
func (in *PointerInput) InjectRelease(x, y float64) {
	in.InjectMove(x, y)
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks.
func (in *PointerInput) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectPath queues samples linearly interpolated from (fromX, fromY) to
// (toX, toY) over the given number of ticks (at least 2), optionally with the
// button held throughout.
func (in *PointerInput) InjectPath(fromX, fromY, toX, toY float64, frames int, pressed bool) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
			x:       fromX + (toX-fromX)*t,
			y:       fromY + (toY-fromY)*t,
			pressed: pressed,
		})
	}
}

// processInjected pops one queued sample and feeds it to pointer 0.
// Returns true if a sample was consumed.
func (in *PointerInput) processInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(0, evt.x, evt.y, evt.pressed, MouseButtonLeft)
	return true
}
