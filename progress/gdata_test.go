package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestGData(t *testing.T) *GDataStore {
	t.Helper()
	appName := fmt.Sprintf("timeshift_test_%d", time.Now().UnixNano())
	s, err := OpenGData(appName)
	if err != nil {
		t.Skipf("app data unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return s
}

func TestGDataRoundTrip(t *testing.T) {
	s := openTestGData(t)

	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Highest())

	_, err = Record(s, 1, 1500*time.Millisecond)
	require.NoError(t, err)
	_, err = Record(s, 2, 4*time.Second)
	require.NoError(t, err)

	p, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, p.Highest())
	best, ok := p.Best(1)
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, best)
}

func TestGDataNilStore(t *testing.T) {
	var s *GDataStore
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, s.Save(New()), ErrNoStore)
}
