// Package game hosts the proposal card on Ebitengine.
package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/page"
	"github.com/iburimskiy/valentine/internal/scene"
)

type Game struct {
	opts    config.Options
	page    *page.Page
	pointer *scene.Pointer
	touches []ebiten.TouchID
	canvas  *canvas
}

// New builds the game. chime may be nil for a silent run.
func New(opts config.Options, events page.Events, chime page.Chime) *Game {
	viewport := geom.Size{W: float64(opts.Width), H: float64(opts.Height)}

	cc := config.DefaultConfetti()
	cc.Trickle.Enabled = opts.Shower

	return &Game{
		opts:    opts,
		page:    page.New(viewport, rand.New(rand.NewSource(opts.Seed)), cc, events, chime),
		pointer: scene.NewPointer(),
		canvas:  newCanvas(opts.Width, opts.Height),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.pointer.Observe(x, y)
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		g.pointer.Touch(ebiten.TouchPosition(g.touches[0]))
	}

	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0

	now := time.Now()
	p := g.pointer.Pos()
	g.page.Input(p, pressed, released, now)
	g.page.Step(p, now)
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := geom.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	if size != g.page.Viewport() && !size.Empty() {
		g.page.Relayout(size)
		g.canvas.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
