package system

import (
	"image/color"

	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/obj"
)

type DrawKind int

const (
	DrawSprite DrawKind = iota
	DrawFill
)

// DrawCmd is one item of the frame, in device pixels. Sprites carry an
// opaque Handle; fills carry a colour.
type DrawCmd struct {
	Kind   DrawKind
	Key    obj.SpriteKey
	Handle any
	Fill   color.RGBA
	Rect   common.Rect
	Alpha  uint8
	FlipY  bool
}

// DrawList appends the frame to dst[:0] back to front: background, pads,
// enemies, goal, time machines, power-ups, platforms, the saved-state ghost,
// the player and the buttons. Sprites without an image are skipped; they
// were reported when the level loaded. DrawList does not modify w.
func (w *World) DrawList(dst []DrawCmd) []DrawCmd {
	dst = dst[:0]
	if w == nil || w.level == nil {
		return dst
	}
	lvl := w.level

	dst = w.appendSprite(dst, w.bg, common.Rect{Width: w.screenW, Height: w.screenH}, 255, false)

	for _, g := range lvl.Pads {
		dst = w.appendSprite(dst, g.Sprite(), g.Rect(), 255, g.Inverted)
	}
	for _, e := range lvl.Enemies {
		if e.Visible() {
			dst = w.appendSprite(dst, e.Sprite(), e.Rect(), e.Opacity(), e.Flipped)
		}
	}
	if lvl.Goal != nil {
		dst = w.appendSprite(dst, lvl.Goal.Sprite, lvl.Goal.Rect(), 255, false)
	}
	for _, m := range lvl.Machines {
		dst = w.appendSprite(dst, m.Sprite(w.present), m.Rect(), 255, m.Inverted)
	}
	for _, p := range lvl.PowerUps {
		if p.Active() {
			dst = w.appendSprite(dst, p.Sprite, p.Rect(), 255, false)
		}
	}
	for _, p := range lvl.Platforms(w.present) {
		if p.Tile.Textured() {
			dst = w.appendSprite(dst, p.Texture, p.Rect(), 255, false)
			continue
		}
		c, _ := p.Tile.Color()
		dst = append(dst, DrawCmd{Kind: DrawFill, Fill: c, Rect: p.Rect(), Alpha: 255})
	}

	player := w.player
	if s := player.SavedState(); s != nil {
		ghost := common.Rect{X: s.X, Y: s.Y, Width: player.Width, Height: player.Height}
		dst = w.appendSprite(dst, player.GhostSprite(), ghost, uint8(w.tuning.Button.GhostAlpha), player.Flipped)
	}
	dst = w.appendSprite(dst, player.Sprite(), player.Rect(), 255, player.Flipped)

	for _, b := range []*obj.Button{w.save, w.warp} {
		if b.Visible {
			dst = w.appendSprite(dst, b.Sprite(), b.Rect(), b.Opacity(player.Rect(), w.tuning.Button), false)
		}
	}
	return dst
}

func (w *World) appendSprite(dst []DrawCmd, s obj.Sprite, r common.Rect, alpha uint8, flip bool) []DrawCmd {
	if !s.Drawable() {
		return dst
	}
	return append(dst, DrawCmd{Kind: DrawSprite, Key: s.Key, Handle: s.Handle, Rect: r, Alpha: alpha, FlipY: flip})
}
