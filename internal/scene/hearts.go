package scene

import (
	"math/rand"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/frame"
	"github.com/iburimskiy/valentine/internal/geom"
)

// Heart is a decorative heart floating up the background.
type Heart struct {
	X        float64 // fraction of the viewport width
	Size     float64
	Duration float64 // seconds to cross the screen
	Age      int     // frames
	Hue      float64
}

// Progress is how far the heart has risen, 0 at spawn and 1 at the top.
func (h Heart) Progress() float64 {
	p := float64(h.Age) / (h.Duration * 60)
	if p > 1 {
		return 1
	}
	return p
}

// Position maps the heart into a viewport. It starts just below the
// bottom edge and rises past the top.
func (h Heart) Position(viewport geom.Size) geom.Vec {
	travel := viewport.H + 2*h.Size
	return geom.Vec{
		X: h.X * viewport.W,
		Y: viewport.H + h.Size - h.Progress()*travel,
	}
}

// Hearts spawns a heart every config.HeartEvery frames and drops each one
// after config.HeartLifeFrames.
type Hearts struct {
	rng    *rand.Rand
	hearts []Heart
}

func NewHearts(rng *rand.Rand) *Hearts {
	return &Hearts{rng: rng}
}

func (h *Hearts) All() []Heart { return h.hearts }

// Frame implements frame.Loop and never finishes.
func (h *Hearts) Frame(fc frame.Context) bool {
	kept := h.hearts[:0]
	for _, ht := range h.hearts {
		ht.Age++
		if ht.Age < config.HeartLifeFrames {
			kept = append(kept, ht)
		}
	}
	h.hearts = kept

	if fc.Frame%config.HeartEvery == 0 {
		h.hearts = append(h.hearts, Heart{
			X:        h.rng.Float64(),
			Size:     config.HeartMinSize + h.rng.Float64()*(config.HeartMaxSize-config.HeartMinSize),
			Duration: config.HeartMinDuration + h.rng.Float64()*(config.HeartMaxDuration-config.HeartMinDuration),
			Hue:      330 + h.rng.Float64()*30,
		})
	}
	return true
}
