package geom

import "math"

// Vec is a point or displacement in screen space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Mul(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Rect is an axis-aligned rectangle; Min is the top-left corner.
type Rect struct {
	Min, Max Vec
}

// RectAt builds a rectangle from its top-left corner and size.
func RectAt(p Vec, s Size) Rect {
	return Rect{Min: p, Max: Vec{X: p.X + s.W, Y: p.Y + s.H}}
}

// RectOf returns the rectangle covering a viewport of the given size.
func RectOf(s Size) Rect { return RectAt(Vec{}, s) }

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Size() Size { return Size{W: r.Dx(), H: r.Dy()} }

func (r Rect) Center() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// Inset shrinks r by m on every side. The result never inverts; an
// over-inset rectangle collapses onto its center.
func (r Rect) Inset(m float64) Rect {
	out := Rect{
		Min: Vec{X: r.Min.X + m, Y: r.Min.Y + m},
		Max: Vec{X: r.Max.X - m, Y: r.Max.Y - m},
	}
	c := r.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

func (r Rect) Translate(d Vec) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
