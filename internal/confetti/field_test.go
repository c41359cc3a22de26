package confetti

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/frame"
	"github.com/iburimskiy/valentine/internal/geom"
)

var screen = geom.Size{W: 800, H: 600}

func newTestField(seed int64) *Field {
	f := NewField(config.DefaultConfetti(), rand.New(rand.NewSource(seed)))
	f.Resize(screen)
	return f
}

func TestSpawnBurst(t *testing.T) {
	f := newTestField(1)
	f.SpawnTrickle(7)
	f.SpawnBurst(300)

	if f.Len() != 300 {
		t.Fatalf("Len = %d, want 300", f.Len())
	}
	for i, p := range f.Particles() {
		switch {
		case p.Position.X < 0 || p.Position.X > screen.W:
			t.Fatalf("particle %d x = %v out of width", i, p.Position.X)
		case p.Position.Y != screen.H-1:
			t.Fatalf("particle %d y = %v, want bottom edge", i, p.Position.Y)
		case p.Size.W < 10 || p.Size.W > 20 || p.Size.H < 10 || p.Size.H > 30:
			t.Fatalf("particle %d size = %+v out of range", i, p.Size)
		case p.Velocity.X < -25 || p.Velocity.X > 25 || p.Velocity.Y < -50 || p.Velocity.Y > 0:
			t.Fatalf("particle %d velocity = %+v out of range", i, p.Velocity)
		case p.Rotation < 0 || p.Rotation >= 2*math.Pi:
			t.Fatalf("particle %d rotation = %v", i, p.Rotation)
		case p.Scale != (geom.Vec{X: 1, Y: 1}):
			t.Fatalf("particle %d scale = %+v", i, p.Scale)
		}
	}
}

func TestSpawnTrickleAppends(t *testing.T) {
	f := newTestField(2)
	f.SpawnBurst(10)
	f.SpawnTrickle(5)

	if f.Len() != 15 {
		t.Fatalf("Len = %d, want 15", f.Len())
	}
	ps := f.Particles()
	for _, p := range ps[10:] {
		if p.Position.Y != 0 {
			t.Fatalf("trickle y = %v, want 0", p.Position.Y)
		}
		if p.Velocity.X < -5 || p.Velocity.X > 5 || p.Velocity.Y < 0 || p.Velocity.Y > 10 {
			t.Fatalf("trickle velocity = %+v out of range", p.Velocity)
		}
	}
}

func TestBurstDrains(t *testing.T) {
	f := newTestField(3)
	f.SpawnBurst(300)

	d := frame.NewDriver()
	d.Start()
	d.Schedule(f)

	ticks := 0
	for d.Scheduled(f) {
		d.Step(frame.Context{Viewport: screen})
		ticks++
		if ticks > 10000 {
			t.Fatalf("field never drained, %d particles left", f.Len())
		}
	}
	if f.Len() != 0 {
		t.Fatalf("loop ended with %d particles", f.Len())
	}
}

func TestVelocityConvergesToTerminal(t *testing.T) {
	f := newTestField(4)
	f.SpawnBurst(5)
	for i := range f.particles {
		f.particles[i].Velocity.Y = -20
	}

	removed := 0
	for tick := 0; f.Len() > 0; tick++ {
		if tick > 1000 {
			t.Fatalf("%d particles never fell out", f.Len())
		}
		// Vertical motion has no randomness, so the particles leaving this
		// tick are known in advance.
		for _, p := range f.particles {
			vy := math.Min(p.Velocity.Y+config.Gravity, config.TerminalVelocity)
			if p.Position.Y+vy >= screen.H {
				removed++
				if vy != config.TerminalVelocity {
					t.Errorf("particle left with vy = %v, want %v", vy, config.TerminalVelocity)
				}
			}
		}
		f.Tick()
	}
	if removed != 5 {
		t.Fatalf("saw %d removals, want 5", removed)
	}
}

func TestHorizontalWrap(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		want  float64
	}{
		{"exits right", screen.W, 10, 0},
		{"exits left", 0, -10, screen.W},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(5)
			f.SpawnBurst(1)
			f.particles[0].Position = geom.Vec{X: tt.x, Y: 100}
			f.particles[0].Velocity = geom.Vec{X: tt.vx}

			f.Tick()

			if got := f.particles[0].Position.X; got != tt.want {
				t.Fatalf("x = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTickPhysics(t *testing.T) {
	f := newTestField(6)
	f.SpawnBurst(1)
	p := &f.particles[0]
	p.Position = geom.Vec{X: 400, Y: 100}
	p.Velocity = geom.Vec{X: 20, Y: 4.8}

	f.Tick()

	if p.Velocity.Y != 5 {
		t.Errorf("vy = %v, want clamped to 5", p.Velocity.Y)
	}
	// Drag takes 7.5%, jitter adds at most 1 either way.
	if p.Velocity.X < 17.5 || p.Velocity.X > 19.5 {
		t.Errorf("vx = %v, want 18.5±1", p.Velocity.X)
	}
	if want := math.Cos(p.Position.Y * 0.1); p.Scale.Y != want {
		t.Errorf("scale.y = %v, want %v", p.Scale.Y, want)
	}
	if p.Scale.X != 1 {
		t.Errorf("scale.x = %v, want 1", p.Scale.X)
	}
}

func TestTrickleKeepsShowerAlive(t *testing.T) {
	f := newTestField(7)
	f.SetTrickle(true)

	d := frame.NewDriver()
	d.Start()
	d.Schedule(f)
	for i := 0; i < 2000; i++ {
		d.Step(frame.Context{Viewport: screen})
		if f.Len() > config.TrickleCap+config.TrickleBatch {
			t.Fatalf("shower grew to %d particles", f.Len())
		}
	}
	if !d.Scheduled(f) {
		t.Fatal("shower loop stopped")
	}
}

type drawCall struct {
	op   string
	w, h float64
	clr  color.Color
}

type recordingSurface struct {
	calls []drawCall
	depth int
	max   int
}

func (r *recordingSurface) Clear() { r.calls = append(r.calls, drawCall{op: "clear"}) }

func (r *recordingSurface) Translate(x, y float64) {
	r.depth++
	if r.depth > r.max {
		r.max = r.depth
	}
}

func (r *recordingSurface) Rotate(float64) { r.depth++ }

func (r *recordingSurface) ResetTransform() {
	r.depth = 0
	r.calls = append(r.calls, drawCall{op: "reset"})
}

func (r *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "fill", w: w, h: h, clr: clr})
}

func TestRender(t *testing.T) {
	f := newTestField(8)
	f.SpawnBurst(2)
	f.particles[0].Scale.Y = 0.5
	f.particles[1].Scale.Y = -0.5

	s := &recordingSurface{}
	f.Render(s)

	if len(s.calls) != 5 || s.calls[0].op != "clear" {
		t.Fatalf("calls = %+v", s.calls)
	}
	if s.max != 1 {
		t.Fatalf("transform leaked between particles, depth reached %d", s.max)
	}

	front, back := s.calls[1], s.calls[3]
	if front.clr != f.particles[0].Swatch.Front {
		t.Errorf("facing particle drawn with %v, want front %v", front.clr, f.particles[0].Swatch.Front)
	}
	if back.clr != f.particles[1].Swatch.Back {
		t.Errorf("flipped particle drawn with %v, want back %v", back.clr, f.particles[1].Swatch.Back)
	}
	if want := f.particles[0].Size.H * 0.5; front.h != want {
		t.Errorf("height = %v, want %v", front.h, want)
	}
	if s.calls[2].op != "reset" || s.calls[4].op != "reset" {
		t.Error("transform not reset after each particle")
	}
}
