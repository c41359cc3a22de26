package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/scene"
)

var (
	cardColor   = color.RGBA{R: 255, G: 245, B: 248, A: 255}
	cardBorder  = color.RGBA{R: 240, G: 128, B: 160, A: 255}
	inkColor    = color.RGBA{R: 120, G: 30, B: 60, A: 255}
	yesColor    = color.RGBA{R: 233, G: 30, B: 99, A: 255}
	noColor     = color.RGBA{R: 158, G: 158, B: 158, A: 255}
	borderColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawHearts(screen)

	switch g.page.Phase() {
	case scene.Proposal:
		g.drawProposal(screen)
	case scene.Celebration:
		g.drawCelebration(screen)
	}

	// The detached No button floats above everything but the confetti.
	if no := g.page.No(); no.Visible() {
		drawButton(screen, no, noColor)
	}

	if g.page.ConfettiRunning() {
		g.page.Confetti().Render(g.canvas)
		screen.DrawImage(g.canvas.img, nil)
	}

	if status := g.page.Status(time.Now()); status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	vp := g.page.Viewport()
	h := int(vp.H)
	t := float64(g.page.Frames()) / 60
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / vp.H
		hue := 340 + 15*math.Sin(t*0.3+ratio*math.Pi)
		r, gv, b := hsvToRgb(hue, 0.25+0.1*ratio, 1)
		vector.DrawFilledRect(screen, 0, float32(y), float32(vp.W), 4, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawHearts(screen *ebiten.Image) {
	vp := g.page.Viewport()
	for _, ht := range g.page.Hearts() {
		pos := ht.Position(vp)
		alpha := clamp01(1.2 - ht.Progress())
		drawHeart(screen, pos, ht.Size, hsva(ht.Hue, 0.7, 1, alpha*0.8))
	}
}

func (g *Game) drawProposal(screen *ebiten.Image) {
	card := g.page.Cards().Card
	drawCard(screen, card)
	drawHeart(screen, geom.Vec{X: card.Center().X, Y: card.Min.Y + 60}, 48, yesColor)
	drawCentered(screen, g.opts.Question(), geom.Vec{X: card.Center().X, Y: card.Min.Y + 120}, inkColor)
	drawButton(screen, g.page.Yes(), yesColor)
}

func (g *Game) drawCelebration(screen *ebiten.Image) {
	card := g.page.Cards().Card
	drawCard(screen, card)

	level := g.page.ChimeLevel()
	beat := 1 + 0.08*math.Sin(float64(g.page.Frames())*0.15)
	size := 64 * (beat + 2*clamp01(level))
	drawHeart(screen, geom.Vec{X: card.Center().X, Y: card.Min.Y + 90}, size, yesColor)

	drawCentered(screen, "Yay! See you on the 14th <3", geom.Vec{X: card.Center().X, Y: card.Max.Y - 60}, inkColor)
}

func drawCard(screen *ebiten.Image, r geom.Rect) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), cardColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 3, cardBorder, true)
}

func drawButton(screen *ebiten.Image, b *scene.Button, base color.RGBA) {
	bg := base
	switch {
	case b.Pressed:
		bg = darken(base, 0.7)
	case b.Hovered:
		bg = darken(base, 0.85)
	}

	r := b.Rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, true)
	drawCentered(screen, b.Label, r.Center(), color.White)
}

func drawCentered(screen *ebiten.Image, s string, c geom.Vec, clr color.Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	x := int(c.X) - b.Dx()/2
	y := int(c.Y) - (b.Min.Y+b.Max.Y)/2
	text.Draw(screen, s, face, x, y, clr)
}

// drawHeart fills a heart of the given width centered on c.
func drawHeart(screen *ebiten.Image, c geom.Vec, size float64, clr color.RGBA) {
	s := float32(size / 2)
	x, y := float32(c.X), float32(c.Y)

	var path vector.Path
	path.MoveTo(x, y+s)
	path.CubicTo(x-s*1.2, y+s*0.1, x-s*0.9, y-s*1.1, x, y-s*0.4)
	path.CubicTo(x+s*0.9, y-s*1.1, x+s*1.2, y+s*0.1, x, y+s)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}
