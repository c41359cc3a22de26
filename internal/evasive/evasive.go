// Package evasive moves an on-screen control away from the pointer.
//
// The control starts docked in the page layout. The first frame the pointer
// comes within the repulsion radius it is detached into fixed screen
// coordinates and from then on is pushed by the pointer, slowed by friction
// and bounced off the edges of the containment area.
package evasive

import (
	"math"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/frame"
	"github.com/iburimskiy/valentine/internal/geom"
)

// Element is the on-screen control being steered.
type Element interface {
	// Bounds returns the current screen rectangle, or false when the
	// element is no longer on screen.
	Bounds() (geom.Rect, bool)
	// Detach takes the element out of the layout and pins its top-left
	// corner at the given screen position.
	Detach(at geom.Vec)
	MoveTo(p geom.Vec)
	SetLabel(s string)
}

// State is the physics state of the element. Position and Velocity are
// only meaningful once Detached.
type State struct {
	Position geom.Vec
	Velocity geom.Vec
	Detached bool
}

// Control runs the evasion physics for one element.
type Control struct {
	el       Element
	cfg      config.Physics
	taunts   []string
	state    State
	onDetach func(State)
}

func New(el Element, cfg config.Physics) *Control {
	return &Control{
		el:     el,
		cfg:    cfg,
		taunts: config.Taunts,
	}
}

// SetPhysics swaps in a configuration resolved for new geometry.
func (c *Control) SetPhysics(cfg config.Physics) { c.cfg = cfg }

func (c *Control) Physics() config.Physics { return c.cfg }

func (c *Control) State() State { return c.state }

// OnDetach registers a callback invoked once, on the docked to detached
// transition.
func (c *Control) OnDetach(fn func(State)) { c.onDetach = fn }

// Frame implements frame.Loop. The loop never finishes.
func (c *Control) Frame(fc frame.Context) bool {
	c.Tick(fc)
	return true
}

// Tick advances the simulation by one frame.
func (c *Control) Tick(fc frame.Context) {
	if c.el == nil {
		return
	}
	rect, ok := c.el.Bounds()
	if !ok {
		return
	}

	d := fc.Pointer.Sub(rect.Center())
	distance := d.Len()

	if !c.state.Detached && distance < c.cfg.RepulsionRadius {
		c.detach(rect)
	}
	if !c.state.Detached {
		return
	}

	s := &c.state
	if distance < c.cfg.RepulsionRadius {
		force := (c.cfg.RepulsionRadius - distance) / c.cfg.RepulsionRadius
		angle := math.Atan2(d.Y, d.X)
		s.Velocity.X -= math.Cos(angle) * force * c.cfg.RepulsionForce
		s.Velocity.Y -= math.Sin(angle) * force * c.cfg.RepulsionForce

		if distance < c.cfg.TauntRadius && len(c.taunts) > 0 {
			c.el.SetLabel(Taunt(c.taunts, fc.Now.UnixMilli()))
		}
	}

	s.Velocity = s.Velocity.Mul(c.cfg.Friction)
	s.Position = s.Position.Add(s.Velocity)

	// A taunt can resize the element, so contain against its current size.
	size := rect.Size()
	if r, ok := c.el.Bounds(); ok {
		size = r.Size()
	}
	s.Position.X, s.Velocity.X = contain(s.Position.X, s.Velocity.X, c.cfg.Area.Min.X, c.cfg.Area.Max.X-size.W, c.cfg.BoundaryBounce)
	s.Position.Y, s.Velocity.Y = contain(s.Position.Y, s.Velocity.Y, c.cfg.Area.Min.Y, c.cfg.Area.Max.Y-size.H, c.cfg.BoundaryBounce)

	c.el.MoveTo(s.Position)
}

func (c *Control) detach(rect geom.Rect) {
	c.state = State{Position: rect.Min, Detached: true}
	c.el.Detach(rect.Min)
	if c.onDetach != nil {
		c.onDetach(c.state)
	}
}

// contain clamps pos into [lo, hi] and reflects v off whichever wall was
// hit. When the element is larger than the area, lo wins.
func contain(pos, v, lo, hi, bounce float64) (float64, float64) {
	if hi < lo {
		hi = lo
	}
	switch {
	case pos < lo:
		return lo, v * -bounce
	case pos > hi:
		return hi, v * -bounce
	}
	return pos, v
}

// Taunt picks the phrase shown at the given wall clock time. It changes
// every TauntPeriodMillis.
func Taunt(phrases []string, nowMillis int64) string {
	i := (nowMillis / config.TauntPeriodMillis) % int64(len(phrases))
	if i < 0 {
		i += int64(len(phrases))
	}
	return phrases[i]
}
