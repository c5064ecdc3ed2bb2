package tiltcard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Face layout, in pixels of the unscaled card.
const (
	facePadding      = 48.0
	faceRadius       = 24.0
	avatarBox        = 112.0
	avatarRadius     = 48.0
	ringRadius       = 56.0
	ringWidth        = 2.0
	titleSize        = 30.0
	bodySize         = 18.0
	letterSize       = 36.0
	particleRadius   = 2.0
	dotRadius        = 6.0
	dotGap           = 16.0
	underlineHeight  = 4.0
	circleSegments   = 48
	roundedSegments  = 8
	descriptionLineH = 1.6
)

// Renderer draws a card Style: the face is painted offscreen, then mapped
// onto a tessellated, perspective-projected mesh.
type Renderer struct {
	width, height float64
	perspective   float64
	tessellation  int
	content       ContentConfig

	face       *ebiten.Image
	whiteImage *ebiten.Image
	whiteSub   *ebiten.Image
	mesh       faceMesh

	titleFace  *text.GoTextFace
	bodyFace   *text.GoTextFace
	letterFace *text.GoTextFace

	fanVerts   []ebiten.Vertex
	fanIndices []uint16
	glyphs     []text.Glyph
}

// NewRenderer loads the card fonts. Images are allocated on first Draw.
func NewRenderer(cfg Config) (*Renderer, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	r := &Renderer{
		titleFace:  &text.GoTextFace{Source: bold, Size: titleSize},
		bodyFace:   &text.GoTextFace{Source: regular, Size: bodySize},
		letterFace: &text.GoTextFace{Source: bold, Size: letterSize},
	}
	r.Configure(cfg)
	return r, nil
}

// Configure applies size, perspective and content changes. The face image is
// reallocated on the next Draw if the card size changed.
func (r *Renderer) Configure(cfg Config) {
	if r.face != nil && (cfg.CardWidth != r.width || cfg.CardHeight != r.height) {
		r.face.Deallocate()
		r.face = nil
	}
	r.width, r.height = cfg.CardWidth, cfg.CardHeight
	r.perspective = cfg.Perspective
	r.tessellation = cfg.Tessellation
	r.content = cfg.Content
}

// Vertices returns the vertex count of the last projected mesh.
func (r *Renderer) Vertices() int {
	return len(r.mesh.verts)
}

func (r *Renderer) ensureImages() {
	if r.whiteImage == nil {
		r.whiteImage = ebiten.NewImage(3, 3)
		r.whiteImage.Fill(color.White)
		r.whiteSub = r.whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	if r.face == nil {
		r.face = ebiten.NewImage(int(math.Ceil(r.width)), int(math.Ceil(r.height)))
	}
}

// Draw renders st with the card centered in bounds.
func (r *Renderer) Draw(dst *ebiten.Image, st Style, bounds Rect) {
	if st.Opacity <= 0 || bounds.Empty() {
		return
	}
	r.ensureImages()
	center := bounds.Center()

	r.drawGlow(dst, st, center)
	r.paintFace(st)

	r.mesh.build(r.tessellation, r.width, r.height, st, r.perspective, center)
	r.drawShadow(dst, st)
	dst.DrawTriangles(r.mesh.verts, r.mesh.indices, r.face, &ebiten.DrawTrianglesOptions{
		Filter:         ebiten.FilterLinear,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// drawGlow paints the ambient glow behind the card as stacked translucent
// rounded rectangles, widening with each layer.
func (r *Renderer) drawGlow(dst *ebiten.Image, st Style, center Vec2) {
	if st.GlowOpacity <= 0 {
		return
	}
	const layers = 6
	for i := 0; i < layers; i++ {
		grow := 4 + float64(i)*4
		w := (r.width + 2*grow) * st.GlowScale * st.Scale
		h := (r.height + 2*grow) * st.GlowScale * st.Scale
		rect := Rect{X: center.X - w/2, Y: center.Y + st.OffsetY - h/2, Width: w, Height: h}
		alpha := 0.2 * st.GlowOpacity * st.Opacity / layers
		pts := roundedRect(rect, faceRadius+grow)
		r.fillFan(dst, rect.Center(), Brand.At(0.5).WithAlpha(alpha), pts, func(p Vec2) Color {
			return Brand.At((p.X - rect.X) / rect.Width).WithAlpha(alpha)
		})
	}
}

// drawShadow paints the card's drop shadow under the projected mesh.
func (r *Renderer) drawShadow(dst *ebiten.Image, st Style) {
	n := r.tessellation
	if len(r.mesh.verts) < (n+1)*(n+1) {
		return
	}
	corner := func(i, j int) Vec2 {
		v := r.mesh.verts[j*(n+1)+i]
		return Vec2{X: float64(v.DstX), Y: float64(v.DstY) + 25}
	}
	pts := []Vec2{corner(0, 0), corner(n, 0), corner(n, n), corner(0, n)}
	c := Vec2{X: (pts[0].X + pts[2].X) / 2, Y: (pts[0].Y + pts[2].Y) / 2}
	shadow := Color{A: 0.12 * st.Opacity}
	r.fillFan(dst, c, shadow, pts, func(Vec2) Color { return shadow.WithAlpha(0.3) })
}

// paintFace redraws the card face offscreen.
func (r *Renderer) paintFace(st Style) {
	f := r.face
	f.Clear()
	w, h := r.width, r.height
	panel := Rect{Width: w, Height: h}
	outline := roundedRect(panel, faceRadius)

	// Panel and border.
	r.fillFan(f, panel.Center(), ColorWhite.WithAlpha(0.92), outline, func(Vec2) Color {
		return ColorWhite.WithAlpha(0.92)
	})
	r.strokeLoop(f, outline, 1, ColorSlate200.WithAlpha(0.5))

	// Background pattern: a diagonal brand gradient turned by PatternRotation.
	angle := deg2rad(45 + st.PatternRotation)
	dir := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	diag := math.Hypot(w, h)
	c := panel.Center()
	r.fillFan(f, c, Brand.At(0.5).WithAlpha(0.05), outline, func(p Vec2) Color {
		t := ((p.X-c.X)*dir.X+(p.Y-c.Y)*dir.Y)/diag + 0.5
		return Brand.At(t).WithAlpha(0.05)
	})

	// Particles.
	for _, p := range st.Particles {
		x := p.Anchor.X * w
		y := p.Anchor.Y*h + p.OffsetY
		vector.FillCircle(f, float32(x), float32(y), particleRadius,
			ColorBlue400.WithAlpha(0.3*p.Alpha).toRGBA(), true)
	}

	r.paintAvatar(f, st)
	r.paintDescription(f, st, r.paintTitle(f, st))
	r.paintDots(f, st)
}

func (r *Renderer) paintAvatar(f *ebiten.Image, st Style) {
	if st.AvatarScale <= 0 {
		return
	}
	c := Vec2{X: r.width / 2, Y: facePadding + avatarBox/2}
	s := st.AvatarScale

	// Pulse.
	pulse := circle(c, ringRadius*s*st.PulseScale)
	r.fillFan(f, c, ColorBlue500.WithAlpha(0.2*st.PulseAlpha), pulse, func(p Vec2) Color {
		return ColorPurple600.WithAlpha(0.2 * st.PulseAlpha)
	})

	// Rotating conic ring.
	rot := st.RingRotation + st.AvatarRotation
	ring := circle(c, ringRadius*s)
	r.fillFan(f, c, ColorWhite, ring, func(p Vec2) Color {
		a := math.Atan2(p.Y-c.Y, p.X-c.X)*180/math.Pi + 90 - rot
		return brandRing.Cyclic(a / 360)
	})
	inner := circle(c, (ringRadius-ringWidth)*s)
	r.fillFan(f, c, ColorWhite, inner, func(Vec2) Color { return ColorWhite })

	// Shadow, blended between the resting and hovered presets.
	shadowColor := Color{A: 0.1}
	hoverColor := ColorPurple500.WithAlpha(0.4)
	sc := Color{
		R: lerp(shadowColor.R, hoverColor.R, st.Shadow),
		G: lerp(shadowColor.G, hoverColor.G, st.Shadow),
		B: lerp(shadowColor.B, hoverColor.B, st.Shadow),
		A: lerp(shadowColor.A, hoverColor.A, st.Shadow),
	}
	const shadowLayers = 4
	sc.A /= shadowLayers
	edge := sc.WithAlpha(0)
	sCenter := Vec2{X: c.X, Y: c.Y + lerp(10, 25, st.Shadow)*s}
	for i := shadowLayers; i > 0; i-- {
		rad := (avatarRadius + float64(i)*lerp(3, 6, st.Shadow)) * s
		r.fillFan(f, sCenter, sc, circle(sCenter, rad), func(Vec2) Color { return edge })
	}

	// Avatar disc with a diagonal gradient.
	disc := circle(c, avatarRadius*s)
	r.fillFan(f, c, avatarGradient.At(0.5), disc, func(p Vec2) Color {
		t := ((p.X-c.X)+(p.Y-c.Y))/(4*avatarRadius*s) + 0.5
		return avatarGradient.At(t)
	})

	// Letter, with a soft glow on hover.
	letter := r.content.Initial
	if letter == "" {
		return
	}
	scale := s * st.LetterScale
	if st.LetterGlow > 0 {
		for i := 3; i > 0; i-- {
			gs := scale * (1 + 0.06*float64(i))
			r.drawCentered(f, letter, r.letterFace, c, gs, st.AvatarRotation,
				ColorWhite.WithAlpha(0.8*st.LetterGlow/float64(i+1)))
		}
	}
	r.drawCentered(f, letter, r.letterFace, Vec2{X: c.X, Y: c.Y + 2*(1-st.LetterGlow)}, scale,
		st.AvatarRotation, Color{A: 0.3 * (1 - st.LetterGlow)})
	r.drawCentered(f, letter, r.letterFace, c, scale, st.AvatarRotation, ColorWhite)
}

// paintTitle draws the title with its sweeping gradient and the underline.
// Returns the y coordinate below the underline.
func (r *Renderer) paintTitle(f *ebiten.Image, st Style) float64 {
	top := facePadding + avatarBox + 32 + st.TitleOffsetY
	if st.TitleAlpha > 0 {
		r.drawGradientText(f, r.content.Title, r.titleFace, Vec2{X: r.width / 2, Y: top},
			st.TitleAlpha, func(u float64) Color {
				// A 200%-wide gradient sliding by TitleGradient text widths.
				return titleSweep.Cyclic(u/2 + st.TitleGradient/2)
			})
	}
	y := top + titleSize*1.2 + 8
	if st.UnderlineWidth > 0 {
		bar := Rect{X: r.width/2 - st.UnderlineWidth/2, Y: y, Width: st.UnderlineWidth, Height: underlineHeight}
		pts := roundedRect(bar, underlineHeight/2)
		r.fillFan(f, bar.Center(), Brand.At(0.5), pts, func(p Vec2) Color {
			return Brand.At((p.X - bar.X) / bar.Width)
		})
	}
	return y + underlineHeight + 24
}

// paintDescription word-wraps the description and colors the highlighted
// phrase with a moving gradient, starting at top.
func (r *Renderer) paintDescription(f *ebiten.Image, st Style, top float64) {
	if st.DescriptionAlpha <= 0 {
		return
	}
	words := describeWords(r.content)
	maxW := r.width - 2*facePadding
	lines := wrapWords(words, maxW, func(s string) float64 { return text.Advance(s, r.bodyFace) })
	lineH := bodySize * descriptionLineH
	space := text.Advance(" ", r.bodyFace)
	y := top + st.DescriptionOffsetY
	for _, line := range lines {
		x := r.width/2 - line.width/2
		for _, w := range line.words {
			adv := text.Advance(w.text, r.bodyFace)
			if w.highlight {
				pos := st.Highlight
				r.drawGradientText(f, w.text, r.bodyFace, Vec2{X: x + adv/2, Y: y}, st.DescriptionAlpha,
					func(u float64) Color { return highlightSweep.Cyclic(u/2 + pos/2) })
			} else {
				op := &text.DrawOptions{}
				op.GeoM.Translate(x, y)
				op.ColorScale.ScaleWithColor(ColorSlate600.WithAlpha(st.DescriptionAlpha).toRGBA())
				text.Draw(f, w.text, r.bodyFace, op)
			}
			x += adv + space
		}
		y += lineH
	}
}

func (r *Renderer) paintDots(f *ebiten.Image, st Style) {
	if st.RowAlpha <= 0 {
		return
	}
	cy := r.height - facePadding - dotRadius
	total := float64(len(st.Dots))*2*dotRadius + float64(len(st.Dots)-1)*dotGap
	x := r.width/2 - total/2*st.RowScale
	for i, d := range st.Dots {
		cx := x + (dotRadius+float64(i)*(2*dotRadius+dotGap))*st.RowScale
		c := Vec2{X: cx, Y: cy}
		pts := circle(c, dotRadius*d.Scale*st.RowScale)
		alpha := d.Alpha * st.RowAlpha
		r.fillFan(f, c, dotGradient.At(0.5).WithAlpha(alpha), pts, func(p Vec2) Color {
			return dotGradient.At((p.X-c.X)/(2*dotRadius)+0.5).WithAlpha(alpha)
		})
	}
}

// --- text helpers ---

// drawCentered draws s centered on c, scaled and rotated (degrees) about c.
func (r *Renderer) drawCentered(dst *ebiten.Image, s string, face text.Face, c Vec2, scale, rotation float64, clr Color) {
	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(deg2rad(rotation))
	op.GeoM.Translate(c.X, c.Y)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	text.Draw(dst, s, face, op)
}

// drawGradientText draws s horizontally centered on top.X with its top edge
// at top.Y, coloring each glyph by colorAt(u) where u is the glyph's position
// across the text in [0, 1].
func (r *Renderer) drawGradientText(dst *ebiten.Image, s string, face text.Face, top Vec2, alpha float64, colorAt func(u float64) Color) {
	w, _ := text.Measure(s, face, 0)
	if w <= 0 {
		return
	}
	r.glyphs = text.AppendGlyphs(r.glyphs[:0], s, face, &text.LayoutOptions{})
	x0 := top.X - w/2
	for _, g := range r.glyphs {
		if g.Image == nil {
			continue
		}
		u := (g.X + float64(g.Image.Bounds().Dx())/2) / w
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x0+g.X, top.Y+g.Y)
		op.ColorScale.ScaleWithColor(colorAt(u).WithAlpha(alpha).toRGBA())
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(g.Image, op)
	}
}

type word struct {
	text      string
	highlight bool
}

type line struct {
	words []word
	width float64
}

func describeWords(c ContentConfig) []word {
	var out []word
	for _, w := range strings.Fields(c.Lead) {
		out = append(out, word{text: w})
	}
	for _, w := range strings.Fields(c.Highlight) {
		out = append(out, word{text: w, highlight: true})
	}
	for _, w := range strings.Fields(c.Description) {
		out = append(out, word{text: w})
	}
	return out
}

// wrapWords greedily packs words into lines no wider than maxW. A word wider
// than maxW gets a line of its own.
func wrapWords(words []word, maxW float64, advance func(string) float64) []line {
	space := advance(" ")
	var lines []line
	var cur line
	for _, w := range words {
		adv := advance(w.text)
		next := cur.width + adv
		if len(cur.words) > 0 {
			next += space
		}
		if len(cur.words) > 0 && next > maxW {
			lines = append(lines, cur)
			cur = line{}
			next = adv
		}
		cur.words = append(cur.words, w)
		cur.width = next
	}
	if len(cur.words) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// --- geometry helpers ---

// fillFan fills the polygon pts as a triangle fan around center, with
// per-vertex colors. Colors are premultiplied here.
func (r *Renderer) fillFan(dst *ebiten.Image, center Vec2, centerColor Color, pts []Vec2, colorAt func(Vec2) Color) {
	if len(pts) < 3 {
		return
	}
	r.fanVerts = r.fanVerts[:0]
	r.fanIndices = r.fanIndices[:0]
	r.fanVerts = append(r.fanVerts, fanVertex(center, centerColor))
	for _, p := range pts {
		r.fanVerts = append(r.fanVerts, fanVertex(p, colorAt(p)))
	}
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		r.fanIndices = append(r.fanIndices, 0, 1+i, 1+(i+1)%n)
	}
	dst.DrawTriangles(r.fanVerts, r.fanIndices, r.whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// strokeLoop draws a closed polyline.
func (r *Renderer) strokeLoop(dst *ebiten.Image, pts []Vec2, width float32, c Color) {
	clr := c.toRGBA()
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

func fanVertex(p Vec2, c Color) ebiten.Vertex {
	a := float32(clamp01(c.A))
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clamp01(c.R)) * a,
		ColorG: float32(clamp01(c.G)) * a,
		ColorB: float32(clamp01(c.B)) * a,
		ColorA: a,
	}
}

// circle returns circleSegments points around c.
func circle(c Vec2, radius float64) []Vec2 {
	pts := make([]Vec2, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		s, co := math.Sincos(a)
		pts[i] = Vec2{X: c.X + co*radius, Y: c.Y + s*radius}
	}
	return pts
}

// roundedRect returns the outline of r with corners of the given radius,
// clockwise from the top-left arc. The radius is clamped to half the
// shorter side.
func roundedRect(r Rect, radius float64) []Vec2 {
	radius = math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
	corners := [4]struct{ cx, cy, start float64 }{
		{r.X + radius, r.Y + radius, math.Pi},
		{r.X + r.Width - radius, r.Y + radius, 1.5 * math.Pi},
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, 0.5 * math.Pi},
	}
	pts := make([]Vec2, 0, 4*(roundedSegments+1))
	for _, c := range corners {
		for i := 0; i <= roundedSegments; i++ {
			a := c.start + 0.5*math.Pi*float64(i)/roundedSegments
			s, co := math.Sincos(a)
			pts = append(pts, Vec2{X: c.cx + co*radius, Y: c.cy + s*radius})
		}
	}
	return pts
}
