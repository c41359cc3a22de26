package config

import (
	"testing"

	"github.com/iburimskiy/valentine/internal/geom"
)

func TestResolvePhysics(t *testing.T) {
	card := geom.RectAt(geom.Vec{X: 20, Y: 100}, geom.Size{W: 360, H: 260})

	tests := []struct {
		name         string
		viewport     geom.Size
		container    geom.Rect
		hasContainer bool
		wantNarrow   bool
		wantRadius   float64
		wantForce    float64
		wantArea     geom.Rect
	}{
		{
			name:       "desktop uses viewport",
			viewport:   geom.Size{W: 1920, H: 1080},
			container:  card,
			wantRadius: 150, wantForce: 2.0,
			wantArea: geom.Rect{Min: geom.Vec{X: 10, Y: 10}, Max: geom.Vec{X: 1910, Y: 1070}},
		},
		{
			name:         "narrow uses container",
			viewport:     geom.Size{W: 400, H: 800},
			container:    card,
			hasContainer: true,
			wantNarrow:   true,
			wantRadius:   100, wantForce: 1.5,
			wantArea: geom.Rect{Min: geom.Vec{X: 35, Y: 115}, Max: geom.Vec{X: 365, Y: 345}},
		},
		{
			name:       "narrow without container falls back to viewport",
			viewport:   geom.Size{W: 400, H: 800},
			wantNarrow: true,
			wantRadius: 100, wantForce: 1.5,
			wantArea: geom.Rect{Min: geom.Vec{X: 15, Y: 15}, Max: geom.Vec{X: 385, Y: 785}},
		},
		{
			name:       "481 is not narrow",
			viewport:   geom.Size{W: 481, H: 800},
			wantRadius: 150, wantForce: 2.0,
			wantArea: geom.Rect{Min: geom.Vec{X: 10, Y: 10}, Max: geom.Vec{X: 471, Y: 790}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePhysics(tt.viewport, tt.container, tt.hasContainer)
			if p.Narrow != tt.wantNarrow {
				t.Errorf("Narrow = %v, want %v", p.Narrow, tt.wantNarrow)
			}
			if p.RepulsionRadius != tt.wantRadius || p.RepulsionForce != tt.wantForce {
				t.Errorf("radius/force = %v/%v, want %v/%v", p.RepulsionRadius, p.RepulsionForce, tt.wantRadius, tt.wantForce)
			}
			if p.Area != tt.wantArea {
				t.Errorf("Area = %+v, want %+v", p.Area, tt.wantArea)
			}
			if p.Friction != 0.9 || p.BoundaryBounce != 0.7 {
				t.Errorf("fixed tuning changed: friction %v bounce %v", p.Friction, p.BoundaryBounce)
			}
		})
	}
}

func TestDefaultConfetti(t *testing.T) {
	c := DefaultConfetti()
	if c.Count != 300 || len(c.Palette) != 8 {
		t.Fatalf("unexpected defaults: count %d palette %d", c.Count, len(c.Palette))
	}
	if c.Trickle.Enabled {
		t.Fatal("trickle should be off by default")
	}
}

func TestParseOptions(t *testing.T) {
	o, err := ParseOptions([]string{"-name", "Sam", "-shower", "-seed", "7"})
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if !o.Shower || o.Seed != 7 || o.Width != WindowWidth {
		t.Fatalf("unexpected options %+v", o)
	}
	if q := o.Question(); q != "Sam, will you be my Valentine?" {
		t.Fatalf("Question = %q", q)
	}

	if _, err := ParseOptions([]string{"-width", "0"}); err == nil {
		t.Fatal("expected error for zero width")
	}
}
