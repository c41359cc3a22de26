package scene

import (
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/geom"
)

// Button is a labelled clickable rectangle. While docked it sits where
// the layout puts it; once detached it lives at a fixed screen position.
type Button struct {
	Label string

	docked   geom.Rect
	pos      geom.Vec
	detached bool
	hidden   bool

	Hovered bool
	Pressed bool
}

func NewButton(label string) *Button {
	return &Button{Label: label}
}

// Dock sets the in-layout rectangle. It has no effect on the screen
// position of a detached button.
func (b *Button) Dock(r geom.Rect) { b.docked = r }

// Size grows with the label so taunts never overflow.
func (b *Button) Size() geom.Size {
	w := float64(len(b.Label)*config.GlyphWidth + 2*config.ButtonPadX)
	if w < config.ButtonWidth {
		w = config.ButtonWidth
	}
	return geom.Size{W: w, H: config.ButtonHeight}
}

func (b *Button) Rect() geom.Rect {
	if b.detached {
		return geom.RectAt(b.pos, b.Size())
	}
	c := b.docked.Center()
	s := b.Size()
	return geom.RectAt(geom.Vec{X: c.X - s.W/2, Y: c.Y - s.H/2}, s)
}

// Bounds implements evasive.Element.
func (b *Button) Bounds() (geom.Rect, bool) {
	if b.hidden {
		return geom.Rect{}, false
	}
	return b.Rect(), true
}

func (b *Button) Detach(at geom.Vec) {
	b.detached = true
	b.pos = at
}

func (b *Button) MoveTo(p geom.Vec) { b.pos = p }

func (b *Button) SetLabel(s string) { b.Label = s }

func (b *Button) Detached() bool { return b.detached }

func (b *Button) Hide() { b.hidden = true }

func (b *Button) Visible() bool { return !b.hidden }

// Update tracks hover and press state and reports a completed click:
// pressed and released while over the button.
func (b *Button) Update(pointer geom.Vec, justPressed, justReleased bool) bool {
	if b.hidden {
		b.Hovered, b.Pressed = false, false
		return false
	}
	b.Hovered = b.Rect().Contains(pointer)
	if b.Hovered && justPressed {
		b.Pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.Pressed && b.Hovered
		b.Pressed = false
	}
	return clicked
}
