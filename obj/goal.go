package obj

import "github.com/milk9111/timeshift/common"

type Goal struct {
	X, Y          int
	Width, Height int
	Sprite        Sprite
}

// NewGoal stands the goal on the design point (x, y), centred horizontally.
func NewGoal(x, y int, sprite Sprite, scale common.ScreenScale) *Goal {
	g := &Goal{
		Width:  scale.PX(float64(sprite.Width) * 3 / 2),
		Height: scale.PY(float64(sprite.Height) * 3 / 2),
		Sprite: sprite,
	}
	g.X = scale.PX(float64(x)) - g.Width/2
	g.Y = scale.PY(float64(y)) - g.Height
	return g
}

func (g *Goal) Rect() common.Rect {
	return common.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}
