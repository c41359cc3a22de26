package scene

import "github.com/iburimskiy/valentine/internal/geom"

// Offscreen is the pointer position before any input arrives.
var Offscreen = geom.Vec{X: -1000, Y: -1000}

// Pointer keeps the latest pointer position. Hosts that report a cursor
// position before the user moves it (ebiten reports 0,0) are ignored
// until the position first changes.
type Pointer struct {
	pos    geom.Vec
	raw    geom.Vec
	primed bool
	moved  bool
}

func NewPointer() *Pointer {
	return &Pointer{pos: Offscreen}
}

// Observe records a cursor sample.
func (p *Pointer) Observe(x, y int) {
	v := geom.Vec{X: float64(x), Y: float64(y)}
	if !p.primed {
		p.raw, p.primed = v, true
		return
	}
	if !p.moved && v == p.raw {
		return
	}
	p.moved = true
	p.pos = v
}

// Touch records a touch position, which always counts as input.
func (p *Pointer) Touch(x, y int) {
	p.moved, p.primed = true, true
	p.pos = geom.Vec{X: float64(x), Y: float64(y)}
}

func (p *Pointer) Pos() geom.Vec { return p.pos }
