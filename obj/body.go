package obj

import (
	"github.com/milk9111/timeshift/common"
)

// maxResolveSteps bounds a single de-penetration loop.
const maxResolveSteps = 1 << 16

// Body is the kinematic state shared by the player and enemies. Positions
// are whole device pixels; speeds are pixels per tick.
type Body struct {
	X, Y          int
	Width, Height int
	XSpeed        float64
	YSpeed        float64
	GravAccel     float64
	Flipped       bool

	slope int
}

func (b *Body) Rect() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Slope is the number of consecutive ticks the body has overlapped a platform
// after horizontal movement.
func (b *Body) Slope() int {
	return b.slope
}

// MoveVertical applies gravity, then integrates the vertical speed.
func (b *Body) MoveVertical(scale common.ScreenScale) {
	b.YSpeed += b.GravAccel * scale.Y
	b.Y += common.Trunc(b.YSpeed)
}

// resolvePlatforms pushes the body out of every platform it overlaps, one
// platform at a time. Moving against gravity into a platform bounces the body
// back; a slow hit is damped and may finish by popping the body onto the
// platform. It reports whether any step rested the body on a surface.
func (b *Body) resolvePlatforms(platforms []*Platform, threshold, damping float64) bool {
	landed := false
	for _, p := range platforms {
		r := p.Rect()
		for i := 0; i < maxResolveSteps && b.Rect().Intersects(r); i++ {
			if b.GravAccel >= 0 {
				if b.YSpeed < 0 {
					if b.YSpeed < -threshold {
						b.Y -= common.Trunc(b.YSpeed)
					} else {
						b.Y -= common.Trunc(b.YSpeed * damping)
					}
				} else {
					b.Y--
					landed = true
				}
			} else {
				if b.YSpeed > 0 {
					if b.YSpeed > threshold {
						b.Y -= common.Trunc(b.YSpeed)
					} else {
						b.Y -= common.Trunc(b.YSpeed * damping)
					}
				} else {
					b.Y++
					landed = true
				}
			}
			b.YSpeed = 0
		}
	}
	return landed
}

// resolveGravityPads inverts gravity for every ready pad the body touches.
// It reports whether any pad fired.
func (b *Body) resolveGravityPads(pads []*GravityPad, cooldown int) bool {
	fired := false
	for _, g := range pads {
		if !g.Ready() || !b.Rect().Intersects(g.TriggerRect()) {
			continue
		}
		b.GravAccel = -b.GravAccel
		g.trigger(cooldown)
		b.Flipped = !b.Flipped
		fired = true
	}
	return fired
}

func (b *Body) overlapsAny(platforms []*Platform) bool {
	r := b.Rect()
	for _, p := range platforms {
		if r.Intersects(p.Rect()) {
			return true
		}
	}
	return false
}

// slide moves the body dx pixels and applies the wall debounce. The body may
// overlap a platform for debounce consecutive ticks; after that, if speed is
// non-zero, it is pushed back against its direction of travel until clear.
func (b *Body) slide(platforms []*Platform, dx int, speed float64, debounce int) bool {
	b.X += dx
	if !b.overlapsAny(platforms) {
		b.slope = 0
		return false
	}
	if b.slope < debounce {
		b.slope++
	}
	if b.slope < debounce || speed == 0 {
		return false
	}

	step := common.Trunc(speed + 1)
	if speed < 0 {
		step = common.Trunc(speed - 1)
	}
	for i := 0; i < maxResolveSteps && b.overlapsAny(platforms); i++ {
		b.X -= step
	}
	b.slope = 0
	return true
}

// ClampX keeps the body inside [0, screenW-width].
func (b *Body) ClampX(screenW int) {
	if b.X < 0 {
		b.X = 0
	}
	if b.X+b.Width > screenW {
		b.X = screenW - b.Width
	}
}

// OutOfBounds reports whether the body has fallen off the edge gravity pulls
// it toward.
func (b *Body) OutOfBounds(screenH int) bool {
	if b.GravAccel >= 0 {
		return b.Y+b.Height > screenH
	}
	return b.Y < 1
}
