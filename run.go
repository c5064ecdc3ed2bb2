package tiltcard

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultScreenshotDir is where screenshots land unless overridden.
const defaultScreenshotDir = "screenshots"

// ClearColorDefault is the page background behind the card.
var ClearColorDefault = Color{R: 0.945, G: 0.961, B: 0.976, A: 1}

// RunConfig configures Run.
type RunConfig struct {
	// Script, when set, drives synthetic input instead of the hardware mouse
	// while it has steps left.
	Script *ScriptRunner
	// ExitWhenScriptDone terminates the game one frame after Script finishes.
	ExitWhenScriptDone bool
	// ScreenshotDir overrides the screenshot output directory.
	ScreenshotDir string
	// Reload delivers replacement configs, typically from a ConfigWatcher.
	Reload <-chan Config
}

// Game implements ebiten.Game for a single card. It owns the layout, the
// input state machine and the renderer, and measures real elapsed time
// between ticks to drive the card.
type Game struct {
	card     *Card
	input    *PointerInput
	renderer *Renderer

	ClearColor    Color
	ScreenshotDir string

	bounds  Rect
	laidOut bool

	now  func() time.Time
	last time.Time

	script          *ScriptRunner
	exitWhenDone    bool
	scriptDoneTicks int
	screenshotQueue []string
	reload          <-chan Config

	debug      bool
	debugAccum float64
	stats      debugStats
	fps        *fpsOverlay
}

// NewGame creates a game around card and mounts it. The card's bounds come
// from the game's layout and are unavailable until Layout has run once.
func NewGame(card *Card) (*Game, error) {
	cfg := card.Config()
	renderer, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		card:          card,
		input:         NewPointerInput(card),
		renderer:      renderer,
		ClearColor:    ClearColorDefault,
		ScreenshotDir: defaultScreenshotDir,
		now:           time.Now,
		debug:         cfg.Debug,
	}
	if cfg.Window.ShowFPS {
		g.fps = newFPSOverlay()
	}
	card.Mount(g.cardBounds)
	return g, nil
}

// Card returns the game's card.
func (g *Game) Card() *Card { return g.card }

// Input returns the game's pointer state machine, for injecting events.
func (g *Game) Input() *PointerInput { return g.input }

// SetScript attaches a script runner. Its steps run before input each tick.
func (g *Game) SetScript(r *ScriptRunner, exitWhenDone bool) {
	g.script = r
	g.exitWhenDone = exitWhenDone
}

// SetReload sets the channel of replacement configs drained each tick.
func (g *Game) SetReload(ch <-chan Config) {
	g.reload = ch
}

// SetDebugMode enables or disables per-frame stats on stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

func (g *Game) cardBounds() (Rect, bool) {
	return g.bounds, g.laidOut
}

// maxFrameTime caps the elapsed time of one tick, e.g. after the process was
// suspended. Longer gaps are treated as a single slow frame.
const maxFrameTime = 0.25

// tick returns seconds since the previous tick. The first tick uses the
// nominal tick length since there is no previous sample.
func (g *Game) tick() float64 {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 1 / float64(ebiten.TPS())
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return min(dt, maxFrameTime)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	t0 := time.Now()
	dt := g.tick()

	g.drainReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.card.Unmount()
	}
	if !g.card.Mounted() {
		return ebiten.Termination
	}

	if err := g.stepScript(); err != nil {
		return err
	}
	g.input.Update()
	g.card.Update(dt)

	if g.fps != nil {
		g.fps.update(dt)
	}
	g.stats.dt = dt
	g.stats.updateTime = time.Since(t0)
	return nil
}

// stepScript runs one script step. While the script has steps left the
// hardware mouse is kept away from the card, so waits hold the scripted
// pointer state.
func (g *Game) stepScript() error {
	if g.script == nil {
		g.input.SetSynthetic(false)
		return nil
	}
	g.script.step(g)
	done := g.script.Done()
	g.input.SetSynthetic(!done)
	if done && g.exitWhenDone {
		// One extra tick lets a final screenshot flush in Draw.
		g.scriptDoneTicks++
		if g.scriptDoneTicks > 1 {
			g.card.Unmount()
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) drainReload() {
	if g.reload == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.reload:
			if !ok {
				g.reload = nil
				return
			}
			g.card.ApplyConfig(cfg)
			g.renderer.Configure(cfg)
			g.debug = cfg.Debug
			logf("config reloaded")
		default:
			return
		}
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	screen.Fill(g.ClearColor.toRGBA())

	st := g.card.Style()
	g.renderer.Draw(screen, st, g.bounds)

	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)

	if g.debug {
		g.stats.drawTime = time.Since(t0)
		g.stats.vertices = g.renderer.Vertices()
		g.stats.style = st
		g.stats.state = g.card.State()
		g.debugLog(g.stats)
	}
}

// Layout implements ebiten.Game. The card is centered in the window at its
// configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.card.Config()
	w, h := cfg.CardWidth, cfg.CardHeight
	g.bounds = Rect{
		X:      (float64(outsideWidth) - w) / 2,
		Y:      (float64(outsideHeight) - h) / 2,
		Width:  w,
		Height: h,
	}
	g.laidOut = true
	return outsideWidth, outsideHeight
}

// --- scriptHost ---

func (g *Game) pointerInput() *PointerInput { return g.input }

func (g *Game) unmountCard() { g.card.Unmount() }

// leavePoint is a screen position guaranteed to be outside the card.
func (g *Game) leavePoint() (float64, float64) {
	return g.bounds.X - 1, g.bounds.Y - 1
}

// Run creates a window and runs card until the window closes, Escape is
// pressed or the script finishes. The card is unmounted on return.
func Run(card *Card, rc RunConfig) error {
	cfg := card.Config()
	g, err := NewGame(card)
	if err != nil {
		return err
	}
	defer card.Unmount()

	if rc.ScreenshotDir != "" {
		g.ScreenshotDir = rc.ScreenshotDir
	}
	if rc.Script != nil {
		g.SetScript(rc.Script, rc.ExitWhenScriptDone)
	}
	g.SetReload(rc.Reload)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
