package geometry

import "testing"

// horizontalQuad builds an axis-aligned quad read left to right.
func horizontalQuad(x, y, w, h float64) Quad {
	return Quad{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name  string
		quads []Quad
		want  int
	}{
		{"empty", nil, 0},
		{"horizontal", []Quad{horizontalQuad(10, 10, 50, 12)}, 0},
		{
			"vertical down",
			[]Quad{{{X: 10, Y: 10}, {X: 10, Y: 60}, {X: 0, Y: 60}, {X: 0, Y: 10}}},
			90,
		},
		{
			"vertical up",
			[]Quad{{{X: 10, Y: 60}, {X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 60}}},
			-90,
		},
		{
			"upside down",
			[]Quad{{{X: 60, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 60, Y: 0}}},
			180,
		},
		{
			"slight tilt rounds to zero",
			[]Quad{{{X: 0, Y: 0}, {X: 100, Y: 8}, {X: 100, Y: 20}, {X: 0, Y: 12}}},
			0,
		},
		{
			"opposing baselines cancel to zero",
			[]Quad{
				{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 10}, {X: 0, Y: 10}},
				{{X: 50, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 10}, {X: 50, Y: 10}},
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.quads); got != tt.want {
				t.Errorf("Angle() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAngleNormalizedRange(t *testing.T) {
	// -180 must normalize to 180, never leave the (-180, 180] range.
	quads := []Quad{{{X: 100, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}, {X: 100, Y: 0}}}
	if got := Angle(quads); got != 180 {
		t.Fatalf("Angle() = %d, want 180", got)
	}
}

func TestBoundingBoxOf(t *testing.T) {
	quads := []Quad{
		horizontalQuad(100, 200, 300, 40),
		horizontalQuad(150, 260, 200, 40),
	}
	box := BoundingBoxOf(quads, 1000, 800)
	if box == nil {
		t.Fatal("BoundingBoxOf() = nil, want box")
	}
	if box.X != 0.1 || box.Y != 0.25 {
		t.Errorf("origin = (%v, %v), want (0.1, 0.25)", box.X, box.Y)
	}
	if box.Width != 0.3 || box.Height != 0.125 {
		t.Errorf("size = (%v, %v), want (0.3, 0.125)", box.Width, box.Height)
	}
	if box.Angle != 0 {
		t.Errorf("Angle = %d, want 0", box.Angle)
	}
}

func TestBoundingBoxOfNilCases(t *testing.T) {
	quads := []Quad{horizontalQuad(0, 0, 10, 10)}
	if box := BoundingBoxOf(nil, 100, 100); box != nil {
		t.Errorf("empty quads: got %+v, want nil", box)
	}
	if box := BoundingBoxOf(quads, 0, 100); box != nil {
		t.Errorf("zero width: got %+v, want nil", box)
	}
	if box := BoundingBoxOf(quads, 100, 0); box != nil {
		t.Errorf("zero height: got %+v, want nil", box)
	}
}

func TestBoundingBoxOfSingleWordFullImage(t *testing.T) {
	box := BoundingBoxOf([]Quad{horizontalQuad(0, 0, 1000, 800)}, 1000, 800)
	if box == nil {
		t.Fatal("BoundingBoxOf() = nil, want box")
	}
	if box.X != 0 || box.Y != 0 || box.Width != 1 || box.Height != 1 {
		t.Errorf("got %+v, want full-image box", box)
	}
}
