package obj

import (
	"fmt"

	"github.com/milk9111/timeshift/common"
)

// jumpFallingMark is written to the falling counter on take-off so the jump
// window stays closed until the player lands again.
const jumpFallingMark = 4

// PlayerState is advisory. Only PlayerIdle and PlayerJumping are entered;
// walking and falling are reserved.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerFalling
	PlayerJumping
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerFalling:
		return "falling"
	case PlayerJumping:
		return "jumping"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PlayerSprite indexes the player's visuals. The powered variants line up
// with PowerUpType.
type PlayerSprite int

const (
	PlayerSpriteDefault PlayerSprite = iota
	PlayerSpriteSpeed
	PlayerSpriteJump
	PlayerSpriteShield
)

// PlayerSpriteKeys lists the player visuals in PlayerSprite order.
var PlayerSpriteKeys = []SpriteKey{SpritePlayer, SpritePlayerSpeed, SpritePlayerJump, SpritePlayerShield}

func poweredSprite(p PowerUpType) PlayerSprite {
	return PlayerSprite(int(p) + 1)
}

type Player struct {
	Body

	cfg     PlayerConfig
	sprites []Sprite
	sprite  PlayerSprite
	state   PlayerState

	falling  int
	jumping  bool
	complete bool

	power    *PowerUp
	powTimer int
	flicker  PowerUpConfig

	saved *TimeState
}

// NewPlayer stands the player on the design start point. sprites are indexed
// by PlayerSprite; the first one sizes the body.
func NewPlayer(startX, startY int, gravity float64, sprites []Sprite, cfg PlayerConfig, powers PowerUpConfig, scale common.ScreenScale) *Player {
	d := float64(divisor(cfg.SizeDivisor))
	var native Sprite
	if len(sprites) > 0 {
		native = sprites[0]
	}
	p := &Player{
		cfg:     cfg,
		sprites: sprites,
		flicker: powers,
	}
	p.Width = scale.PX(float64(native.Width) / d)
	p.Height = scale.PY(float64(native.Height) / d)
	p.X = scale.PX(float64(startX))
	p.Y = scale.PY(float64(startY)) - p.Height
	p.GravAccel = gravity
	return p
}

func (p *Player) State() PlayerState {
	return p.state
}

func (p *Player) SpriteIndex() PlayerSprite {
	return p.sprite
}

// Sprite returns the visual currently shown.
func (p *Player) Sprite() Sprite {
	return p.spriteAt(p.sprite)
}

func (p *Player) spriteAt(i PlayerSprite) Sprite {
	if int(i) < 0 || int(i) >= len(p.sprites) {
		return Sprite{}
	}
	return p.sprites[i]
}

func (p *Player) Falling() int {
	return p.falling
}

func (p *Player) Jumping() bool {
	return p.jumping
}

func (p *Player) Complete() bool {
	return p.complete
}

// Power returns the held power-up, or nil.
func (p *Player) Power() *PowerUp {
	return p.power
}

func (p *Player) PowerTimer() int {
	return p.powTimer
}

func (p *Player) holds(t PowerUpType) bool {
	return p.power != nil && p.power.Type == t
}

// SetMove sets the horizontal intent: -1 left, +1 right, 0 stop. The speed
// power-up boosts the walking speed.
func (p *Player) SetMove(dir int) {
	speed := p.cfg.MoveSpeed
	if p.holds(PowerSpeed) {
		speed *= p.cfg.SpeedBoost
	}
	switch {
	case dir < 0:
		p.XSpeed = -speed
	case dir > 0:
		p.XSpeed = speed
	default:
		p.XSpeed = 0
	}
}

// Jump launches the player against gravity. It is ignored while a jump is
// latched or when the player left the ground too long ago.
func (p *Player) Jump(scale common.ScreenScale) bool {
	if p.jumping || p.falling >= p.cfg.JumpWindow {
		return false
	}
	speed := p.cfg.JumpSpeed
	if p.holds(PowerJump) {
		speed *= p.cfg.JumpBoost
	}
	speed *= scale.Y
	if p.GravAccel >= 0 {
		p.YSpeed = -speed
	} else {
		p.YSpeed = speed
	}
	p.falling = jumpFallingMark
	p.state = PlayerJumping
	p.jumping = true
	return true
}

// ReleaseJump clears the jump latch so the next Jump can fire.
func (p *Player) ReleaseJump() {
	p.jumping = false
}

// TouchPlatforms resolves overlaps with the active platforms. The ceiling
// threshold does not follow the screen scale.
func (p *Player) TouchPlatforms(platforms []*Platform) {
	p.falling++
	threshold := p.cfg.JumpSpeed * p.cfg.CeilingThresholdRatio
	if p.resolvePlatforms(platforms, threshold, p.cfg.CeilingDamping) {
		p.falling = 0
		p.state = PlayerIdle
	}
}

func (p *Player) TouchGravityPads(pads []*GravityPad, cooldown int) bool {
	return p.resolveGravityPads(pads, cooldown)
}

// TouchGoal latches completion once the player reaches the goal.
func (p *Player) TouchGoal(g *Goal) bool {
	if g != nil && p.Rect().Intersects(g.Rect()) {
		p.complete = true
	}
	return p.complete
}

// TouchTimeMachines reports whether the player stands in any machine.
func (p *Player) TouchTimeMachines(machines []*TimeMachine) bool {
	r := p.Rect()
	for _, m := range machines {
		if r.Intersects(m.Rect()) {
			return true
		}
	}
	return false
}

// TouchPowerUps picks up at most one power at a time, then advances the held
// power's timer. The sprite flickers during the last part of the effect.
func (p *Player) TouchPowerUps(powers []*PowerUp) *PowerUp {
	var picked *PowerUp
	r := p.Rect()
	for _, pw := range powers {
		if p.power == nil && pw.Active() && r.Intersects(pw.Rect()) {
			p.power = pw
			p.powTimer = pw.Duration
			p.sprite = poweredSprite(pw.Type)
			pw.active = false
			picked = pw
		}
	}
	if p.power == nil {
		return picked
	}
	if p.powTimer > 0 {
		p.powTimer--
		if p.powTimer <= p.flicker.FlickerWindow {
			p.sprite = p.flickerSprite()
		}
		return picked
	}
	p.dropPower()
	return picked
}

// flickerSprite alternates powered and plain visuals every FlickerPeriod
// ticks, powered on the last period before expiry.
func (p *Player) flickerSprite() PlayerSprite {
	period := divisor(p.flicker.FlickerPeriod)
	if p.powTimer > 0 && ((p.powTimer-1)/period)%2 == 0 {
		return poweredSprite(p.power.Type)
	}
	return PlayerSpriteDefault
}

func (p *Player) dropPower() {
	if p.power != nil {
		p.power.active = true
	}
	p.power = nil
	p.powTimer = 0
	p.sprite = PlayerSpriteDefault
}

// TouchEnemies resolves contact with living enemies. A shielded player kills
// the enemy; otherwise reset is called.
func (p *Player) TouchEnemies(enemies []*Enemy, reset func()) []*Enemy {
	var killed []*Enemy
	for _, e := range enemies {
		if !e.Alive() || !p.Rect().Intersects(e.Rect()) {
			continue
		}
		if !p.holds(PowerShield) {
			if reset != nil {
				reset()
			}
			continue
		}
		e.Kill(p.XSpeed, p.YSpeed)
		killed = append(killed, e)
	}
	return killed
}

// MoveHorizontal walks the player and applies the wall debounce.
func (p *Player) MoveHorizontal(platforms []*Platform, scale common.ScreenScale) bool {
	speed := p.XSpeed * scale.X
	return p.slide(platforms, common.Trunc(speed), speed, p.cfg.WallDebounce)
}

// Reset returns the player to the start point with default gravity. The
// saved time state is kept.
func (p *Player) Reset(startX, startY int, gravity float64, scale common.ScreenScale) {
	p.X = scale.PX(float64(startX))
	p.Y = scale.PY(float64(startY)) - p.Height
	p.XSpeed = 0
	p.YSpeed = 0
	p.state = PlayerIdle
	p.Flipped = false
	p.GravAccel = gravity
	p.slope = 0
	p.dropPower()
}

// SavedState returns the pending time state, or nil.
func (p *Player) SavedState() *TimeState {
	return p.saved
}

// SaveState snapshots the player.
func (p *Player) SaveState() *TimeState {
	p.saved = &TimeState{
		X:      p.X,
		Y:      p.Y,
		XSpeed: p.XSpeed,
		YSpeed: p.YSpeed,
		Sprite: p.sprite,
	}
	return p.saved
}

// ReturnToState restores the saved snapshot and discards it. It reports
// false when nothing was saved.
func (p *Player) ReturnToState() bool {
	if p.saved == nil {
		return false
	}
	s := p.saved
	p.X = s.X
	p.Y = s.Y
	p.XSpeed = s.XSpeed
	p.YSpeed = s.YSpeed
	p.saved = nil
	return true
}

// GhostSprite is the visual recorded with the saved state.
func (p *Player) GhostSprite() Sprite {
	if p.saved == nil {
		return Sprite{}
	}
	return p.spriteAt(p.saved.Sprite)
}
