package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/timeshift/common"
)

type EnemySprite int

const (
	EnemySpriteNeutral EnemySprite = iota
	EnemySpriteAngry
	EnemySpriteDead
)

// EnemySpriteKeys lists the enemy visuals in EnemySprite order.
var EnemySpriteKeys = []SpriteKey{SpriteEnemyNeutral, SpriteEnemyAngry, SpriteEnemyDead}

func (s EnemySprite) String() string {
	switch s {
	case EnemySpriteNeutral:
		return "neutral"
	case EnemySpriteAngry:
		return "angry"
	case EnemySpriteDead:
		return "dead"
	default:
		return fmt.Sprintf("enemy_sprite(%d)", int(s))
	}
}

// Enemy charges at the player when it comes within range. Once killed it is
// launched away and fades out over AfterDeath ticks.
type Enemy struct {
	Body

	cfg     EnemyConfig
	sprites []Sprite
	sprite  EnemySprite

	cooldown   int
	alive      bool
	existTimer int
}

// NewEnemy stands the enemy on the design point (x, y), centred horizontally.
func NewEnemy(x, y int, gravity float64, sprites []Sprite, cfg EnemyConfig, scale common.ScreenScale) *Enemy {
	d := float64(divisor(cfg.SizeDivisor))
	var native Sprite
	if len(sprites) > 0 {
		native = sprites[0]
	}
	e := &Enemy{
		cfg:     cfg,
		sprites: sprites,
		alive:   true,
	}
	e.Width = scale.PX(float64(native.Width) / d)
	e.Height = scale.PY(float64(native.Height) / d)
	e.X = scale.PX(float64(x)) - e.Width/2
	e.Y = scale.PY(float64(y)) - e.Height
	e.GravAccel = gravity
	if gravity < 0 {
		e.Flipped = true
	}
	return e
}

func (e *Enemy) Alive() bool {
	return e.alive
}

func (e *Enemy) Cooldown() int {
	return e.cooldown
}

func (e *Enemy) ExistTimer() int {
	return e.existTimer
}

func (e *Enemy) SpriteIndex() EnemySprite {
	return e.sprite
}

func (e *Enemy) Sprite() Sprite {
	if int(e.sprite) >= len(e.sprites) {
		return Sprite{}
	}
	return e.sprites[e.sprite]
}

// Expired reports a dead enemy whose fade has finished.
func (e *Enemy) Expired() bool {
	return !e.alive && e.existTimer == 0
}

// Visible reports whether the enemy should still be drawn.
func (e *Enemy) Visible() bool {
	return e.alive || e.existTimer > 0
}

// Opacity is 255 while alive and fades linearly with the decay timer.
func (e *Enemy) Opacity() uint8 {
	if e.alive {
		return 255
	}
	after := divisor(e.cfg.AfterDeath)
	a := e.existTimer * 255 / after
	return uint8(max(0, min(255, a)))
}

func (e *Enemy) TouchPlatforms(platforms []*Platform) {
	e.resolvePlatforms(platforms, e.cfg.CeilingThreshold, e.cfg.CeilingDamping)
}

func (e *Enemy) TouchGravityPads(pads []*GravityPad, cooldown int) bool {
	return e.resolveGravityPads(pads, cooldown)
}

// Attack charges toward the target when it is in range and the enemy has
// rested. The distance is measured between top-left corners.
func (e *Enemy) Attack(targetX, targetY int) bool {
	if !e.alive {
		return false
	}
	self := cp.Vector{X: float64(e.X), Y: float64(e.Y)}
	target := cp.Vector{X: float64(targetX), Y: float64(targetY)}
	if e.cooldown == 0 && self.Distance(target) <= e.cfg.AttackRange {
		e.sprite = EnemySpriteAngry
		if e.X-targetX >= 0 {
			e.XSpeed = -e.cfg.ChargeSpeed
		} else {
			e.XSpeed = e.cfg.ChargeSpeed
		}
		e.cooldown = e.cfg.AttackCooldown
		return true
	}
	if e.cooldown > 0 {
		e.cooldown--
		if e.cooldown == 0 {
			e.sprite = EnemySpriteNeutral
		}
	}
	return false
}

// MoveHorizontal integrates the charge, applies friction, then the wall
// debounce.
func (e *Enemy) MoveHorizontal(platforms []*Platform, scale common.ScreenScale) bool {
	dx := common.Trunc(e.XSpeed * scale.X)
	e.XSpeed *= e.cfg.Friction
	return e.slide(platforms, dx, e.XSpeed*scale.X, e.cfg.WallDebounce)
}

// Kill launches the enemy with the killer's velocity scaled by DeathLaunch.
// It only takes effect once.
func (e *Enemy) Kill(xSpeed, ySpeed float64) bool {
	if !e.alive {
		return false
	}
	launch := cp.Vector{X: xSpeed, Y: ySpeed}.Mult(e.cfg.DeathLaunch)
	e.alive = false
	e.sprite = EnemySpriteDead
	e.XSpeed = launch.X
	e.YSpeed = launch.Y
	e.existTimer = e.cfg.AfterDeath
	return true
}

// Decay counts the post-death timer down by one tick.
func (e *Enemy) Decay() {
	if !e.alive && e.existTimer > 0 {
		e.existTimer--
	}
}
