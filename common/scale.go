package common

// Levels are authored against a 1080x2280 portrait screen.
const (
	BaseWidth  = 1080
	BaseHeight = 2280
)

// ScreenScale maps design-space pixels to device pixels. Every entity is
// built with the same value so positions, sizes and speeds stay consistent.
type ScreenScale struct {
	X, Y float64
}

// NewScreenScale derives the scale for a device of the given size.
func NewScreenScale(screenW, screenH int) ScreenScale {
	return ScreenScale{
		X: float64(screenW) / BaseWidth,
		Y: float64(screenH) / BaseHeight,
	}
}

// UnitScale is the identity scale used when the device matches the design size.
func UnitScale() ScreenScale {
	return ScreenScale{X: 1, Y: 1}
}

func (s ScreenScale) Valid() bool {
	return s.X > 0 && s.Y > 0
}

// PX scales a horizontal design value to whole device pixels.
func (s ScreenScale) PX(v float64) int {
	return Trunc(v * s.X)
}

// PY scales a vertical design value to whole device pixels.
func (s ScreenScale) PY(v float64) int {
	return Trunc(v * s.Y)
}
