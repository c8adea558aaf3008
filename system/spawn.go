package system

import (
	"fmt"

	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/obj"
)

// Diagnostic records a sprite that resolved without an image. The entity
// keeps its size but is not drawn.
type Diagnostic struct {
	Key obj.SpriteKey
	Err error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("sprite %s: %v", d.Key, d.Err)
}

type spriteResolver struct {
	src   obj.SpriteSource
	seen  map[obj.SpriteKey]obj.Sprite
	diags []Diagnostic
	err   error
}

func newSpriteResolver(src obj.SpriteSource) *spriteResolver {
	return &spriteResolver{src: src, seen: make(map[obj.SpriteKey]obj.Sprite)}
}

// get resolves key once. A lookup with no usable size is fatal; one with a
// size but an error is recorded and the handle dropped.
func (r *spriteResolver) get(key obj.SpriteKey) obj.Sprite {
	if s, ok := r.seen[key]; ok {
		return s
	}
	s, err := r.src.Sprite(key)
	s.Key = key
	if err != nil {
		if s.Width <= 0 || s.Height <= 0 {
			if r.err == nil {
				r.err = fmt.Errorf("system: sprite %s: %w", key, err)
			}
			return obj.Sprite{Key: key}
		}
		s.Handle = nil
		r.diags = append(r.diags, Diagnostic{Key: key, Err: err})
	}
	r.seen[key] = s
	return s
}

func (r *spriteResolver) list(keys []obj.SpriteKey) []obj.Sprite {
	out := make([]obj.Sprite, len(keys))
	for i, k := range keys {
		out[i] = r.get(k)
	}
	return out
}

// BuildLevel instantiates every entity of spec at the given scale.
func BuildLevel(spec *levels.Spec, src obj.SpriteSource, tuning obj.Tuning, scale common.ScreenScale) (*obj.Level, []Diagnostic, error) {
	r := newSpriteResolver(src)
	lvl := buildLevel(spec, r, tuning, scale)
	if r.err != nil {
		return nil, r.diags, r.err
	}
	return lvl, r.diags, nil
}

func buildLevel(spec *levels.Spec, r *spriteResolver, tuning obj.Tuning, scale common.ScreenScale) *obj.Level {
	lvl := &obj.Level{
		Index:      spec.Index,
		Name:       spec.Name,
		Gravity:    spec.Gravity,
		StartX:     spec.Start.X,
		StartY:     spec.Start.Y,
		Background: obj.Background(spec.Background),
		Present:    buildPlatforms(spec.Present, r, scale),
		Future:     buildPlatforms(spec.Future, r, scale),
	}

	off, on := r.get(obj.SpritePadOff), r.get(obj.SpritePadOn)
	for _, p := range spec.Pads {
		lvl.Pads = append(lvl.Pads, obj.NewGravityPad(p.X, p.Y, p.Inverted, off, on, tuning.Pad, scale))
	}

	present, future := r.get(obj.SpriteMachinePresent), r.get(obj.SpriteMachineFuture)
	for _, m := range spec.Machines {
		lvl.Machines = append(lvl.Machines, obj.NewTimeMachine(m.X, m.Y, m.Inverted, present, future, scale))
	}

	enemySprites := r.list(obj.EnemySpriteKeys)
	for _, e := range spec.Enemies {
		lvl.Enemies = append(lvl.Enemies, obj.NewEnemy(e.X, e.Y, spec.Gravity, enemySprites, tuning.Enemy, scale))
	}

	for _, p := range spec.PowerUps {
		typ := obj.PowerUpType(p.Type)
		lvl.PowerUps = append(lvl.PowerUps, obj.NewPowerUp(p.X, p.Y, typ, r.get(typ.Sprite()), tuning.PowerUp, scale))
	}

	if spec.Goal != nil {
		lvl.Goal = obj.NewGoal(spec.Goal.X, spec.Goal.Y, r.get(obj.SpriteGoal), scale)
	}
	return lvl
}

func buildPlatforms(specs []levels.PlatformSpec, r *spriteResolver, scale common.ScreenScale) []*obj.Platform {
	out := make([]*obj.Platform, 0, len(specs))
	for _, s := range specs {
		tile := obj.TileType(s.Tile)
		var p *obj.Platform
		if s.Moving() {
			p = obj.NewMovingPlatform(s.X, s.Y, s.To.X, s.To.Y, s.SpeedX, s.SpeedY, s.W, s.H, tile, scale)
		} else {
			p = obj.NewPlatform(s.X, s.Y, s.W, s.H, tile, scale)
		}
		if tile.Textured() {
			p.Texture = r.get(obj.SpriteTileWood)
		}
		out = append(out, p)
	}
	return out
}
