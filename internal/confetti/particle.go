package confetti

import (
	"image/color"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/geom"
)

// Particle is one piece of confetti.
type Particle struct {
	Swatch   config.Swatch
	Size     geom.Size
	Position geom.Vec
	Velocity geom.Vec
	// Rotation is fixed at spawn and only used when drawing.
	Rotation float64
	// Scale.Y follows cos(Position.Y * FlipFrequency) to fake a tumble.
	Scale geom.Vec
}

// Color returns the face currently turned to the viewer.
func (p *Particle) Color() color.RGBA {
	if p.Scale.Y > 0 {
		return p.Swatch.Front
	}
	return p.Swatch.Back
}

// Surface is a 2D drawing target with a canvas-style current transform.
type Surface interface {
	Clear()
	Translate(x, y float64)
	Rotate(theta float64)
	ResetTransform()
	FillRect(x, y, w, h float64, clr color.Color)
}
