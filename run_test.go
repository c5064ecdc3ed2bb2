package tiltcard

import (
	"testing"
	"time"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(NewCard(cfg))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGameMountsCard(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	if !g.Card().Mounted() {
		t.Fatal("NewGame should mount the card")
	}
	if _, ok := g.Card().Bounds(); ok {
		t.Error("bounds should be unavailable before Layout")
	}
	if g.Input() == nil {
		t.Error("Input is nil")
	}
	if g.fps != nil {
		t.Error("FPS overlay created without show_fps")
	}
}

func TestGameLayoutCentersCard(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	w, h := g.Layout(960, 720)
	if w != 960 || h != 720 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	r, ok := g.Card().Bounds()
	if !ok {
		t.Fatal("bounds unavailable after Layout")
	}
	want := Rect{X: 256, Y: 80, Width: DefaultCardWidth, Height: DefaultCardHeight}
	if r != want {
		t.Errorf("bounds = %+v, want %+v", r, want)
	}

	// Bounds are measured on demand, so a resize is seen by the next move.
	g.Layout(1200, 720)
	g.Card().PointerMove(600, 360)
	if off := g.Card().State().Offset; off != (Vec2{}) {
		t.Errorf("offset at new center = %v", off)
	}
}

func TestGameTick(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	start := time.Unix(1000, 0)
	now := start
	g.now = func() time.Time { return now }

	if dt := g.tick(); dt <= 0 {
		t.Errorf("first tick = %v, want nominal tick length", dt)
	}
	now = start.Add(40 * time.Millisecond)
	if dt := g.tick(); !approxEqual(dt, 0.04, 1e-9) {
		t.Errorf("tick = %v, want 0.04", dt)
	}
	now = now.Add(5 * time.Millisecond)
	if dt := g.tick(); !approxEqual(dt, 0.005, 1e-9) {
		t.Errorf("tick = %v, want 0.005", dt)
	}
	now = now.Add(10 * time.Second) // window dragged or process suspended
	if dt := g.tick(); dt != maxFrameTime {
		t.Errorf("tick after stall = %v, want %v", dt, maxFrameTime)
	}
}

func TestGameDrainReload(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	ch := make(chan Config, 2)
	g.SetReload(ch)

	cfg := DefaultConfig()
	cfg.Tessellation = 12
	cfg.Debug = true
	ch <- cfg
	g.drainReload()

	if g.Card().Config().Tessellation != 12 || g.renderer.tessellation != 12 {
		t.Error("reloaded config not applied")
	}
	if !g.debug {
		t.Error("debug flag not applied")
	}

	close(ch)
	g.drainReload()
	if g.reload != nil {
		t.Error("closed reload channel should be dropped")
	}
}

func TestGameLeavePoint(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.Layout(960, 720)
	x, y := g.leavePoint()
	if g.bounds.Contains(x, y) {
		t.Errorf("leave point (%v, %v) is inside the card", x, y)
	}
	g.unmountCard()
	if g.Card().Mounted() {
		t.Error("unmountCard did not unmount")
	}
}

func TestGameDebugLogThrottle(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.SetDebugMode(true)
	g.debugLog(debugStats{dt: 0.1})
	if g.debugAccum != 0.1 {
		t.Errorf("debugAccum = %v, want 0.1", g.debugAccum)
	}
	g.debugLog(debugStats{dt: 0.5})
	if g.debugAccum != 0 {
		t.Errorf("debugAccum = %v, want reset after logging", g.debugAccum)
	}
}

func TestFPSOverlayRefresh(t *testing.T) {
	o := newFPSOverlay()
	o.dirty = false
	o.update(0.2)
	if o.dirty {
		t.Error("overlay refreshed too early")
	}
	o.update(0.4)
	if !o.dirty {
		t.Error("overlay not marked dirty after 0.5s")
	}
}

func TestGameScriptHoldsPointer(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.Layout(960, 720)
	runner, err := LoadScript([]byte(`
steps:
  - action: press
    x: 480
    y: 360
  - action: wait
    frames: 10
`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner, false)

	ticks := 0
	for ; !runner.Done() && ticks < 30; ticks++ {
		if err := g.stepScript(); err != nil {
			t.Fatal(err)
		}
		if runner.Done() {
			break
		}
		if !g.input.synthetic {
			t.Fatalf("tick %d: hardware input enabled while the script runs", ticks)
		}
		g.input.Update()
		if ticks > 0 && !g.card.State().Pressed {
			t.Fatalf("tick %d: scripted press lost during wait", ticks)
		}
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
	if g.input.synthetic {
		t.Error("hardware input still disabled after the script finished")
	}

	g.SetScript(nil, false)
	g.input.SetSynthetic(true)
	if err := g.stepScript(); err != nil || g.input.synthetic {
		t.Errorf("without a script: err=%v synthetic=%v", err, g.input.synthetic)
	}
}
