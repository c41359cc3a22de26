// Package scene models the proposal page: card layout, buttons, pointer
// and the decorative hearts. It holds no rendering code.
package scene

import (
	"math"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/geom"
)

// Cards is the layout of the page for one viewport.
type Cards struct {
	Viewport geom.Size
	Narrow   bool
	Card     geom.Rect
	Yes      geom.Rect
	No       geom.Rect
}

// Layout centers the card and places the two buttons in its lower half,
// side by side on wide viewports and stacked on narrow ones.
func Layout(viewport geom.Size) Cards {
	narrow := viewport.W < config.NarrowWidth

	w := math.Min(config.CardWidth, viewport.W-2*config.NarrowMargin)
	h := float64(config.CardHeight)
	if narrow {
		h += config.ButtonHeight + config.ButtonGap
	}
	w = math.Max(w, 0)
	card := geom.RectAt(geom.Vec{X: (viewport.W - w) / 2, Y: (viewport.H - h) / 2}, geom.Size{W: w, H: h})

	btn := geom.Size{W: config.ButtonWidth, H: config.ButtonHeight}
	c := card.Center()
	baseY := card.Max.Y - config.ButtonGap - config.ButtonHeight

	var yes, no geom.Rect
	if narrow {
		yes = geom.RectAt(geom.Vec{X: c.X - btn.W/2, Y: baseY - config.ButtonHeight - config.ButtonGap}, btn)
		no = geom.RectAt(geom.Vec{X: c.X - btn.W/2, Y: baseY}, btn)
	} else {
		yes = geom.RectAt(geom.Vec{X: c.X - config.ButtonGap/2 - btn.W, Y: baseY}, btn)
		no = geom.RectAt(geom.Vec{X: c.X + config.ButtonGap/2, Y: baseY}, btn)
	}

	return Cards{Viewport: viewport, Narrow: narrow, Card: card, Yes: yes, No: no}
}
