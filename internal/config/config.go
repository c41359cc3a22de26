package config

import (
	"image/color"

	"github.com/iburimskiy/valentine/internal/geom"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Viewports narrower than this use the mobile tuning and clamp the
	// evasive button to the card instead of the window.
	NarrowWidth = 481

	// Card and buttons
	CardWidth    = 420
	CardHeight   = 260
	ButtonWidth  = 110
	ButtonHeight = 40
	ButtonGap    = 24
	ButtonPadX   = 16
	GlyphWidth   = 7 // basicfont.Face7x13 advance

	// Evasive button physics
	Friction              = 0.9
	BoundaryBounce        = 0.7
	RepulsionRadius       = 150.0
	RepulsionForce        = 2.0
	NarrowRepulsionRadius = 100.0
	NarrowRepulsionForce  = 1.5
	TauntRadius           = 50.0
	TauntPeriodMillis     = 500
	Margin                = 10.0
	NarrowMargin          = 15.0

	// Confetti
	ConfettiCount    = 300
	Gravity          = 0.5
	TerminalVelocity = 5.0
	Drag             = 0.075
	FlipFrequency    = 0.1
	TrickleBatch     = 5
	TrickleEvery     = 6 // frames, ~100ms at 60 TPS
	TrickleCap       = 300

	// Hearts
	HeartEvery       = 18 // frames, ~300ms at 60 TPS
	HeartLifeFrames  = 300
	HeartMinDuration = 3.0
	HeartMaxDuration = 5.0
	HeartMinSize     = 10.0
	HeartMaxSize     = 30.0

	// Audio
	SampleRate = 44100
)

// Taunts cycle on the evasive button while the pointer is very close.
var Taunts = []string{"Nope!", "Too slow!", "Can't catch me!", "Oily!", "Slide!", "Whoops!"}

// Swatch is a two-tone confetti color; Front shows while the piece faces
// the viewer, Back while it is flipped.
type Swatch struct {
	Front, Back color.RGBA
}

// Palette is the fixed confetti color table.
var Palette = [8]Swatch{
	{Front: color.RGBA{R: 255, A: 255}, Back: color.RGBA{R: 139, A: 255}},
	{Front: color.RGBA{G: 128, A: 255}, Back: color.RGBA{G: 100, A: 255}},
	{Front: color.RGBA{B: 255, A: 255}, Back: color.RGBA{B: 139, A: 255}},
	{Front: color.RGBA{R: 255, G: 255, A: 255}, Back: color.RGBA{R: 155, G: 135, B: 12, A: 255}},
	{Front: color.RGBA{R: 255, G: 165, A: 255}, Back: color.RGBA{R: 255, G: 140, A: 255}},
	{Front: color.RGBA{R: 255, G: 192, B: 203, A: 255}, Back: color.RGBA{R: 231, G: 84, B: 128, A: 255}},
	{Front: color.RGBA{R: 128, B: 128, A: 255}, Back: color.RGBA{R: 75, B: 130, A: 255}},
	{Front: color.RGBA{R: 64, G: 224, B: 208, A: 255}, Back: color.RGBA{G: 206, B: 209, A: 255}},
}

// Physics is the evasive button tuning resolved for one viewport geometry.
type Physics struct {
	Friction        float64
	RepulsionRadius float64
	RepulsionForce  float64
	BoundaryBounce  float64
	TauntRadius     float64
	Margin          float64
	Narrow          bool

	// Area is the containment rectangle with the margin already removed.
	Area geom.Rect
}

// ResolvePhysics picks the tuning for the given viewport. Narrow viewports
// are contained by the card; when no usable container is available they
// fall back to the viewport.
func ResolvePhysics(viewport geom.Size, container geom.Rect, hasContainer bool) Physics {
	p := Physics{
		Friction:        Friction,
		RepulsionRadius: RepulsionRadius,
		RepulsionForce:  RepulsionForce,
		BoundaryBounce:  BoundaryBounce,
		TauntRadius:     TauntRadius,
		Margin:          Margin,
		Area:            geom.RectOf(viewport).Inset(Margin),
	}
	if viewport.W >= NarrowWidth {
		return p
	}

	p.Narrow = true
	p.RepulsionRadius = NarrowRepulsionRadius
	p.RepulsionForce = NarrowRepulsionForce
	p.Margin = NarrowMargin
	area := geom.RectOf(viewport)
	if hasContainer && !container.Empty() {
		area = container
	}
	p.Area = area.Inset(NarrowMargin)
	return p
}

// Trickle controls the optional steady confetti shower.
type Trickle struct {
	Enabled bool
	Batch   int
	Every   int
	Cap     int
}

// Confetti is the particle field tuning.
type Confetti struct {
	Count            int
	Gravity          float64
	TerminalVelocity float64
	Drag             float64
	FlipFrequency    float64
	Palette          []Swatch
	Trickle          Trickle
}

// DefaultConfetti returns the single-burst configuration.
func DefaultConfetti() Confetti {
	return Confetti{
		Count:            ConfettiCount,
		Gravity:          Gravity,
		TerminalVelocity: TerminalVelocity,
		Drag:             Drag,
		FlipFrequency:    FlipFrequency,
		Palette:          Palette[:],
		Trickle: Trickle{
			Batch: TrickleBatch,
			Every: TrickleEvery,
			Cap:   TrickleCap,
		},
	}
}
