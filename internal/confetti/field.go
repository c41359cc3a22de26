// Package confetti simulates and draws a burst of tumbling paper confetti.
package confetti

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/frame"
	"github.com/iburimskiy/valentine/internal/geom"
)

// Field owns the live particles and the visible area they fall through.
type Field struct {
	cfg       config.Confetti
	rng       *rand.Rand
	area      geom.Size
	particles []Particle
}

func NewField(cfg config.Confetti, rng *rand.Rand) *Field {
	return &Field{cfg: cfg, rng: rng}
}

// Resize sets the visible area. Live particles keep their positions.
func (f *Field) Resize(s geom.Size) { f.area = s }

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the live particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// SetTrickle toggles the steady shower that keeps the field alive.
func (f *Field) SetTrickle(on bool) { f.cfg.Trickle.Enabled = on }

// SpawnBurst replaces the field with n particles launched upward from the
// bottom edge.
func (f *Field) SpawnBurst(n int) {
	f.particles = f.particles[:0]
	for i := 0; i < n; i++ {
		p := f.newParticle()
		p.Position = geom.Vec{X: f.between(0, f.area.W), Y: f.area.H - 1}
		p.Velocity = geom.Vec{X: f.between(-25, 25), Y: f.between(-50, 0)}
		f.particles = append(f.particles, p)
	}
}

// SpawnTrickle adds n slow particles falling from the top edge.
func (f *Field) SpawnTrickle(n int) {
	for i := 0; i < n; i++ {
		p := f.newParticle()
		p.Position = geom.Vec{X: f.between(0, f.area.W), Y: 0}
		p.Velocity = geom.Vec{X: f.between(-5, 5), Y: f.between(0, 10)}
		f.particles = append(f.particles, p)
	}
}

func (f *Field) newParticle() Particle {
	var sw config.Swatch
	if len(f.cfg.Palette) > 0 {
		sw = f.cfg.Palette[f.rng.Intn(len(f.cfg.Palette))]
	}
	return Particle{
		Swatch:   sw,
		Size:     geom.Size{W: f.between(10, 20), H: f.between(10, 30)},
		Rotation: f.between(0, 2*math.Pi),
		Scale:    geom.Vec{X: 1, Y: 1},
	}
}

func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *Field) jitter() float64 {
	if f.rng.Float64() > 0.5 {
		return f.rng.Float64()
	}
	return -f.rng.Float64()
}

// Tick advances every particle one frame and removes the ones that fell
// out of the bottom of the visible area.
func (f *Field) Tick() {
	for i := 0; i < len(f.particles); {
		p := &f.particles[i]

		p.Velocity.X -= p.Velocity.X * f.cfg.Drag
		p.Velocity.Y = math.Min(p.Velocity.Y+f.cfg.Gravity, f.cfg.TerminalVelocity)
		p.Velocity.X += f.jitter()

		p.Position = p.Position.Add(p.Velocity)

		if p.Position.X > f.area.W {
			p.Position.X = 0
		} else if p.Position.X < 0 {
			p.Position.X = f.area.W
		}

		p.Scale.Y = math.Cos(p.Position.Y * f.cfg.FlipFrequency)

		if p.Position.Y >= f.area.H {
			last := len(f.particles) - 1
			f.particles[i] = f.particles[last]
			f.particles = f.particles[:last]
			continue
		}
		i++
	}
}

// Frame implements frame.Loop. The loop ends once the field is empty.
func (f *Field) Frame(fc frame.Context) bool {
	if !fc.Viewport.Empty() {
		f.area = fc.Viewport
	}
	t := f.cfg.Trickle
	if t.Enabled && t.Every > 0 && fc.Frame%uint64(t.Every) == 0 && len(f.particles) < t.Cap {
		f.SpawnTrickle(t.Batch)
	}
	f.Tick()
	return len(f.particles) > 0
}

// Render clears s and draws every particle centered on its position.
func (f *Field) Render(s Surface) {
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		w := p.Size.W * p.Scale.X
		h := p.Size.H * p.Scale.Y

		s.Translate(p.Position.X, p.Position.Y)
		s.Rotate(p.Rotation)
		s.FillRect(-w/2, -h/2, w, h, p.Color())
		s.ResetTransform()
	}
}
