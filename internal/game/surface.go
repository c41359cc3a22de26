package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whitePixel avoids sampling the image edges when stretched.
	whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas is an offscreen image with a canvas-style current transform.
// It implements confetti.Surface.
type canvas struct {
	img *ebiten.Image
	m   ebiten.GeoM
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: ebiten.NewImage(w, h)}
}

// Resize replaces the backing image when the window size changes.
func (c *canvas) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) Clear() {
	c.img.Clear()
	c.m.Reset()
}

// Translate and Rotate apply to points before the current transform, the
// way a 2D canvas context composes them.
func (c *canvas) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(c.m)
	c.m = t
}

func (c *canvas) Rotate(theta float64) {
	var r ebiten.GeoM
	r.Rotate(theta)
	r.Concat(c.m)
	c.m = r
}

func (c *canvas) ResetTransform() { c.m.Reset() }

func (c *canvas) FillRect(x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.m)
	op.ColorScale.ScaleWithColor(clr)
	c.img.DrawImage(whitePixel, op)
}
