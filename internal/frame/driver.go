// Package frame drives per-frame simulations. The host calls Step once per
// display refresh; tests call it directly to single-step.
package frame

import (
	"time"

	"github.com/iburimskiy/valentine/internal/geom"
)

// Context is the read-only environment a loop sees for one frame.
type Context struct {
	Frame    uint64
	Now      time.Time
	Pointer  geom.Vec
	Viewport geom.Size
}

// Loop is advanced once per frame. Returning false unschedules it.
type Loop interface {
	Frame(fc Context) bool
}

// Driver owns the set of scheduled loops and the start/stop state.
// It is not safe for concurrent use; the host calls it from its update goroutine.
type Driver struct {
	loops   []Loop
	running bool
	frames  uint64
}

func NewDriver() *Driver {
	return &Driver{}
}

// Schedule adds l to the loop set. Scheduling a loop twice is a no-op.
func (d *Driver) Schedule(l Loop) {
	if d.Scheduled(l) {
		return
	}
	d.loops = append(d.loops, l)
}

// Scheduled reports whether l will run on the next step.
func (d *Driver) Scheduled(l Loop) bool {
	for _, s := range d.loops {
		if s == l {
			return true
		}
	}
	return false
}

func (d *Driver) Start() { d.running = true }

func (d *Driver) Stop() { d.running = false }

func (d *Driver) Running() bool { return d.running }

// Frames is the number of frames stepped so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Step runs one frame over every scheduled loop in schedule order and
// returns how many remain scheduled. fc.Frame is filled in by the driver.
func (d *Driver) Step(fc Context) int {
	if !d.running {
		return len(d.loops)
	}
	fc.Frame = d.frames
	d.frames++

	// Loops scheduled during this step run from the next frame on.
	current := d.loops
	d.loops = nil
	kept := current[:0]
	for _, l := range current {
		if l.Frame(fc) {
			kept = append(kept, l)
		}
	}
	added := d.loops
	d.loops = kept
	for _, l := range added {
		d.Schedule(l)
	}
	return len(d.loops)
}
