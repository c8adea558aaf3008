package obj

import (
	"testing"

	"github.com/milk9111/timeshift/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyPlacement(t *testing.T) {
	sprites := []Sprite{sprite(SpriteEnemyNeutral, 90, 90)}
	e := NewEnemy(600, 1500, 3, sprites, DefaultTuning().Enemy, unit)
	assert.Equal(t, 585, e.X)
	assert.Equal(t, 1470, e.Y)
	assert.True(t, e.Alive())
	assert.False(t, e.Flipped)
}

func TestEnemyAttack(t *testing.T) {
	cases := []struct {
		name      string
		targetX   int
		targetY   int
		wantSpeed float64
		attacked  bool
	}{
		{"target_left", 400, 500, -30, true},
		{"target_right", 600, 500, 30, true},
		{"same_x_charges_left", 500, 600, -30, true},
		{"edge_of_range", 500, 700, -30, true},
		{"out_of_range", 701, 500, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEnemy(500, 500, 3)
			got := e.Attack(c.targetX, c.targetY)
			require.Equal(t, c.attacked, got)
			assert.Equal(t, c.wantSpeed, e.XSpeed)
			if c.attacked {
				assert.Equal(t, EnemySpriteAngry, e.SpriteIndex())
				assert.Equal(t, 50, e.Cooldown())
			}
		})
	}
}

func TestEnemyCooldownReturnsToNeutral(t *testing.T) {
	e := newTestEnemy(500, 500, 3)
	require.True(t, e.Attack(500, 500))

	for i := 49; i > 0; i-- {
		require.False(t, e.Attack(500, 500))
		require.Equal(t, i, e.Cooldown())
		require.Equal(t, EnemySpriteAngry, e.SpriteIndex())
	}
	require.False(t, e.Attack(500, 500))
	assert.Zero(t, e.Cooldown())
	assert.Equal(t, EnemySpriteNeutral, e.SpriteIndex())

	assert.True(t, e.Attack(500, 500))
}

func TestEnemyFriction(t *testing.T) {
	e := newTestEnemy(500, 500, 3)
	e.XSpeed = 30
	e.MoveHorizontal(nil, unit)
	assert.Equal(t, 530, e.X)
	assert.InDelta(t, 27.0, e.XSpeed, 1e-9)
	e.MoveHorizontal(nil, unit)
	assert.Equal(t, 557, e.X)
}

func TestEnemyDeathIsFinal(t *testing.T) {
	e := newTestEnemy(500, 500, 3)
	require.True(t, e.Kill(-10, 4))
	assert.Equal(t, -50.0, e.XSpeed)
	assert.Equal(t, 20.0, e.YSpeed)
	assert.Equal(t, EnemySpriteDead, e.SpriteIndex())
	assert.Equal(t, 100, e.ExistTimer())
	assert.Equal(t, uint8(255), e.Opacity())

	assert.False(t, e.Kill(100, 100))
	assert.Equal(t, -50.0, e.XSpeed)
	assert.False(t, e.Attack(500, 500))

	for i := 0; i < 50; i++ {
		e.Decay()
	}
	assert.Equal(t, uint8(127), e.Opacity())
	assert.False(t, e.Expired())

	for i := 0; i < 60; i++ {
		e.Decay()
	}
	assert.Zero(t, e.ExistTimer())
	assert.True(t, e.Expired())
	assert.False(t, e.Visible())
	assert.False(t, e.Alive())
}

func TestPurgeEnemies(t *testing.T) {
	live := newTestEnemy(100, 100, 3)
	fading := newTestEnemy(200, 100, 3)
	fading.Kill(0, 0)
	expired := newTestEnemy(300, 100, 3)
	expired.Kill(0, 0)
	for i := 0; i < 100; i++ {
		expired.Decay()
	}
	fallen := newTestEnemy(400, common.BaseHeight, 3)
	risen := newTestEnemy(500, 0, -3)

	lvl := &Level{Enemies: []*Enemy{live, fading, expired, fallen, risen}}
	assert.Equal(t, 3, lvl.PurgeEnemies(common.BaseHeight))
	assert.Equal(t, []*Enemy{live, fading}, lvl.Enemies)
}
