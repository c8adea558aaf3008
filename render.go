package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/timeshift/system"
)

// Renderer draws a world's draw list with ebiten.
type Renderer struct {
	pixel *ebiten.Image
	cmds  []system.DrawCmd
}

func NewRenderer() *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{pixel: pixel}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *system.World) {
	r.cmds = w.DrawList(r.cmds)
	for _, c := range r.cmds {
		rect := c.Rect
		if rect.Width <= 0 || rect.Height <= 0 {
			continue
		}

		var img *ebiten.Image
		op := &ebiten.DrawImageOptions{}
		switch c.Kind {
		case system.DrawFill:
			img = r.pixel
			op.ColorScale.ScaleWithColor(c.Fill)
		default:
			h, ok := c.Handle.(*ebiten.Image)
			if !ok || h == nil {
				continue
			}
			img = h
		}

		b := img.Bounds()
		op.GeoM.Scale(float64(rect.Width)/float64(b.Dx()), float64(rect.Height)/float64(b.Dy()))
		if c.FlipY {
			op.GeoM.Scale(1, -1)
			op.GeoM.Translate(0, float64(rect.Height))
		}
		op.GeoM.Translate(float64(rect.X), float64(rect.Y))
		if c.Alpha < 255 {
			op.ColorScale.ScaleAlpha(float32(c.Alpha) / 255)
		}
		screen.DrawImage(img, op)
	}
}
