package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 25, Y: 25, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 15, Y: 15, Width: 2, Height: 2}, true},
		{"touch_right_edge", Rect{X: 30, Y: 10, Width: 10, Height: 10}, false},
		{"touch_left_edge", Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"touch_bottom_edge", Rect{X: 10, Y: 30, Width: 10, Height: 10}, false},
		{"touch_top_edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"one_pixel_overlap", Rect{X: 29, Y: 29, Width: 10, Height: 10}, true},
		{"disjoint", Rect{X: 100, Y: 100, Width: 1, Height: 1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(10, 10) || !r.Contains(0, 0) {
		t.Fatalf("expected edges to be contained")
	}
	if r.Contains(10.5, 5) {
		t.Fatalf("point outside should not be contained")
	}
}

func TestScreenScale(t *testing.T) {
	s := NewScreenScale(540, 1140)
	if s.X != 0.5 || s.Y != 0.5 {
		t.Fatalf("unexpected scale %+v", s)
	}
	if got := s.PX(15); got != 7 {
		t.Fatalf("PX(15) = %d, want 7", got)
	}
	if got := Trunc(-2.9); got != -2 {
		t.Fatalf("Trunc(-2.9) = %d, want -2", got)
	}
}
