package obj

import (
	"math"

	"github.com/milk9111/timeshift/common"
)

// Platform is a solid box. A moving platform oscillates inside the range
// [xStart, xEnd] x [yStart, yEnd], reversing each axis at its bounds.
type Platform struct {
	X, Y          int
	Width, Height int
	Tile          TileType
	Texture       Sprite

	xSpeed, ySpeed float64
	xStart, xEnd   int
	yStart, yEnd   int
}

// NewPlatform builds a static platform from design coordinates.
func NewPlatform(x, y, width, height int, tile TileType, scale common.ScreenScale) *Platform {
	p := &Platform{
		X:      scale.PX(float64(x)),
		Y:      scale.PY(float64(y)),
		Width:  scale.PX(float64(width)),
		Height: scale.PY(float64(height)),
		Tile:   tile,
	}
	p.xStart, p.xEnd = p.X, p.X
	p.yStart, p.yEnd = p.Y, p.Y
	return p
}

// NewMovingPlatform builds a platform that starts at (x1, y1) and oscillates
// toward (x2, y2). Speeds are design pixels per tick; their sign is ignored.
func NewMovingPlatform(x1, y1, x2, y2 int, xSpeed, ySpeed float64, width, height int, tile TileType, scale common.ScreenScale) *Platform {
	p := NewPlatform(x1, y1, width, height, tile, scale)
	p.xSpeed = math.Abs(xSpeed * scale.X)
	p.ySpeed = math.Abs(ySpeed * scale.Y)
	p.xStart = scale.PX(float64(min(x1, x2)))
	p.xEnd = scale.PX(float64(max(x1, x2)))
	p.yStart = scale.PY(float64(min(y1, y2)))
	p.yEnd = scale.PY(float64(max(y1, y2)))
	return p
}

func (p *Platform) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Platform) Moving() bool {
	return p.xSpeed != 0 || p.ySpeed != 0
}

// Move advances a moving platform by one tick.
func (p *Platform) Move() {
	if !p.Moving() {
		return
	}
	if (p.xSpeed > 0 && p.X+p.Width >= p.xEnd) || (p.xSpeed < 0 && p.X <= p.xStart) {
		p.xSpeed = -p.xSpeed
	}
	if (p.ySpeed > 0 && p.Y+p.Height >= p.yEnd) || (p.ySpeed < 0 && p.Y <= p.yStart) {
		p.ySpeed = -p.ySpeed
	}
	p.X += common.Trunc(p.xSpeed)
	p.Y += common.Trunc(p.ySpeed)
}
