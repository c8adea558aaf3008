package assets

import (
	"errors"
	"testing"

	"github.com/milk9111/timeshift/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedManifestCoversEverySprite(t *testing.T) {
	m, err := ParseManifest(manifestYAML)
	require.NoError(t, err)
	assert.Empty(t, m.Missing(RequiredSprites()))

	s, err := m.Sprite(obj.SpritePlayer)
	require.NoError(t, err)
	assert.Equal(t, 160, s.Width)
	assert.Nil(t, s.Handle)
}

func TestManifestUnknownKey(t *testing.T) {
	m, err := ParseManifest(manifestYAML)
	require.NoError(t, err)
	_, err = m.Sprite("dragon")
	assert.True(t, errors.Is(err, ErrMissingSprite))
}

func TestParseManifestRejects(t *testing.T) {
	cases := map[string]string{
		"zero_size":  "player: {w: 0, h: 10, color: red}",
		"bad_colour": "player: {w: 10, h: 10, color: notacolour}",
		"bad_yaml":   "player: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifest([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestCleanAssetPath(t *testing.T) {
	assert.Equal(t, "player.png", cleanAssetPath("assets/player.png"))
	assert.Equal(t, "player.png", cleanAssetPath("/home/me/game/assets/player.png"))
	assert.Equal(t, "tiles/wood.png", cleanAssetPath("tiles/wood.png"))
}
