package tiltcard

import (
	"fmt"
	"os"
	"time"
)

// logf writes a prefixed line to stderr. Used for non-fatal runtime
// failures (screenshots, config reload).
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tiltcard] "+format+"\n", args...)
}

// debugStats holds per-frame timing and card metrics.
// Only populated when the game runs in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	dt         float64
	vertices   int
	style      Style
	state      InteractionState
}

// debugLogInterval throttles debug output to a couple of lines per second.
const debugLogInterval = 0.5

// debugLog prints timing and card state to stderr.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	g.debugAccum += stats.dt
	if g.debugAccum < debugLogInterval {
		return
	}
	g.debugAccum = 0
	logf("update: %v | draw: %v | dt: %.4fs | vertices: %d",
		stats.updateTime, stats.drawTime, stats.dt, stats.vertices)
	logf("offset: (%.1f, %.1f) | rotate: (%.2f°, %.2f°) | hovered: %v | pressed: %v",
		stats.state.Offset.X, stats.state.Offset.Y,
		stats.style.RotateX, stats.style.RotateY,
		stats.state.Hovered, stats.state.Pressed)
}
