package common

// Rect is an axis-aligned box in screen pixels anchored at its top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Intersects reports strict overlap on both axes. Boxes that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= float64(r.X) && px <= float64(r.X+r.Width) &&
		py >= float64(r.Y) && py <= float64(r.Y+r.Height)
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}
