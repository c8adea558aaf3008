package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPowerUp(x, y int, typ PowerUpType, duration int) *PowerUp {
	cfg := DefaultTuning().PowerUp
	cfg.Duration = duration
	return NewPowerUp(x, y, typ, sprite(typ.Sprite(), 70, 70), cfg, unit)
}

func TestJumpWindowAndLatch(t *testing.T) {
	p := newTestPlayer(0, 0, 3)

	require.True(t, p.Jump(unit))
	assert.Equal(t, -40.0, p.YSpeed)
	assert.Equal(t, PlayerJumping, p.State())
	assert.Equal(t, jumpFallingMark, p.Falling())

	require.False(t, p.Jump(unit), "latched jump must not fire")
	p.ReleaseJump()
	require.False(t, p.Jump(unit), "airborne jump must not fire")
}

func TestJumpOpposesGravity(t *testing.T) {
	p := newTestPlayer(0, 0, -3)
	require.True(t, p.Jump(unit))
	assert.Equal(t, 40.0, p.YSpeed)
}

func TestJumpPowerBoost(t *testing.T) {
	p := newTestPlayer(0, 0, 3)
	p.TouchPowerUps([]*PowerUp{newTestPowerUp(0, 0, PowerJump, 300)})
	require.True(t, p.Jump(unit))
	assert.Equal(t, -60.0, p.YSpeed)
}

func TestSpeedPowerBoost(t *testing.T) {
	p := newTestPlayer(0, 0, 3)
	p.SetMove(-1)
	assert.Equal(t, -10.0, p.XSpeed)

	p.TouchPowerUps([]*PowerUp{newTestPowerUp(0, 0, PowerSpeed, 300)})
	p.SetMove(1)
	assert.Equal(t, 15.0, p.XSpeed)

	p.SetMove(0)
	assert.Zero(t, p.XSpeed)
}

func TestHoldsOnePowerAtATime(t *testing.T) {
	p := newTestPlayer(0, 0, 3)
	first := newTestPowerUp(0, 0, PowerSpeed, 300)
	second := newTestPowerUp(5, 5, PowerJump, 300)

	picked := p.TouchPowerUps([]*PowerUp{first, second})

	require.Same(t, first, picked)
	require.Same(t, first, p.Power())
	assert.False(t, first.Active())
	assert.True(t, second.Active())
	assert.Equal(t, 299, p.PowerTimer())
	assert.Equal(t, PlayerSpriteSpeed, p.SpriteIndex())

	p.TouchPowerUps([]*PowerUp{first, second})
	assert.Same(t, first, p.Power())
	assert.True(t, second.Active())
}

func TestPowerFlickersBeforeExpiry(t *testing.T) {
	p := newTestPlayer(0, 0, 3)
	pw := newTestPowerUp(0, 0, PowerShield, 60)
	p.TouchPowerUps([]*PowerUp{pw})
	p.X = 500

	for timer := 58; timer >= 0; timer-- {
		p.TouchPowerUps([]*PowerUp{pw})
		require.Equal(t, timer, p.PowerTimer())

		powered := timer > 50 ||
			(timer >= 41 && timer <= 50) ||
			(timer >= 21 && timer <= 30) ||
			(timer >= 1 && timer <= 10)
		want := PlayerSpriteDefault
		if powered {
			want = PlayerSpriteShield
		}
		require.Equal(t, want, p.SpriteIndex(), "timer %d", timer)
		require.False(t, pw.Active())
	}

	p.TouchPowerUps([]*PowerUp{pw})
	assert.Nil(t, p.Power())
	assert.True(t, pw.Active())
	assert.Equal(t, PlayerSpriteDefault, p.SpriteIndex())
}

func TestGravityPadFlipsAndCoolsDown(t *testing.T) {
	pad := NewGravityPad(100, 1000, false, sprite(SpritePadOff, 100, 100), sprite(SpritePadOn, 100, 100), DefaultTuning().Pad, unit)
	require.Equal(t, 950, pad.Y)

	p := newTestPlayer(100, 960, 3)

	require.True(t, p.TouchGravityPads([]*GravityPad{pad}, 50))
	assert.Equal(t, -3.0, p.GravAccel)
	assert.True(t, p.Flipped)
	assert.Equal(t, 50, pad.Cooldown())
	assert.Equal(t, SpritePadOff, pad.Sprite().Key)

	require.False(t, p.TouchGravityPads([]*GravityPad{pad}, 50))
	assert.Equal(t, -3.0, p.GravAccel)

	for i := 0; i < 50; i++ {
		pad.Update()
	}
	assert.True(t, pad.Ready())
	assert.Equal(t, SpritePadOn, pad.Sprite().Key)
}

func TestGravityPadTriggerBand(t *testing.T) {
	cfg := DefaultTuning().Pad
	up := NewGravityPad(0, 1000, false, sprite(SpritePadOff, 100, 100), sprite(SpritePadOn, 100, 100), cfg, unit)
	down := NewGravityPad(0, 1000, true, sprite(SpritePadOff, 100, 100), sprite(SpritePadOn, 100, 100), cfg, unit)

	assert.Equal(t, 987, up.TriggerRect().Y)
	assert.Equal(t, 1000, up.TriggerRect().Bottom())
	assert.Equal(t, 1000, down.TriggerRect().Y)
	assert.Equal(t, 12, down.TriggerRect().Height)
}

func TestTimeStateRoundTrip(t *testing.T) {
	p := newTestPlayer(120, 340, 3)
	p.XSpeed, p.YSpeed = 10, -12

	saved := p.SaveState()
	require.NotNil(t, saved)
	require.Same(t, saved, p.SavedState())

	p.X, p.Y, p.XSpeed, p.YSpeed = 900, 50, -10, 30

	require.True(t, p.ReturnToState())
	assert.Equal(t, 120, p.X)
	assert.Equal(t, 340, p.Y)
	assert.Equal(t, 10.0, p.XSpeed)
	assert.Equal(t, -12.0, p.YSpeed)
	assert.Nil(t, p.SavedState())
	assert.False(t, p.ReturnToState())
}

func TestResetKeepsSavedState(t *testing.T) {
	p := newTestPlayer(500, 500, -3)
	p.Flipped = true
	p.SaveState()
	p.TouchPowerUps([]*PowerUp{newTestPowerUp(500, 500, PowerSpeed, 300)})

	p.Reset(10, 2180, 3, unit)

	assert.Equal(t, 10, p.X)
	assert.Equal(t, 2140, p.Y)
	assert.False(t, p.Flipped)
	assert.Equal(t, 3.0, p.GravAccel)
	assert.Nil(t, p.Power())
	assert.NotNil(t, p.SavedState())
	assert.Equal(t, PlayerIdle, p.State())
}

func TestTouchEnemies(t *testing.T) {
	t.Run("unshielded_resets", func(t *testing.T) {
		p := newTestPlayer(100, 100, 3)
		e := newTestEnemy(110, 110, 3)
		resets := 0
		killed := p.TouchEnemies([]*Enemy{e}, func() { resets++ })
		assert.Equal(t, 1, resets)
		assert.Empty(t, killed)
		assert.True(t, e.Alive())
	})

	t.Run("shielded_kills", func(t *testing.T) {
		p := newTestPlayer(100, 100, 3)
		p.TouchPowerUps([]*PowerUp{newTestPowerUp(100, 100, PowerShield, 300)})
		p.XSpeed, p.YSpeed = 10, -4
		e := newTestEnemy(110, 110, 3)

		killed := p.TouchEnemies([]*Enemy{e}, func() { t.Fatal("unexpected reset") })
		require.Len(t, killed, 1)
		assert.False(t, e.Alive())
		assert.Equal(t, 50.0, e.XSpeed)
		assert.Equal(t, -20.0, e.YSpeed)
	})

	t.Run("dead_enemy_ignored", func(t *testing.T) {
		p := newTestPlayer(100, 100, 3)
		e := newTestEnemy(110, 110, 3)
		e.Kill(0, 0)
		p.TouchEnemies([]*Enemy{e}, func() { t.Fatal("unexpected reset") })
	})
}

func TestTouchGoalLatches(t *testing.T) {
	g := NewGoal(500, 1000, sprite(SpriteGoal, 100, 100), unit)
	require.Equal(t, 425, g.X)
	require.Equal(t, 850, g.Y)

	p := newTestPlayer(0, 0, 3)
	assert.False(t, p.TouchGoal(g))
	p.X, p.Y = 450, 900
	assert.True(t, p.TouchGoal(g))
	p.X, p.Y = 0, 0
	assert.True(t, p.Complete())
}
