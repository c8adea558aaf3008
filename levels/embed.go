package levels

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// DefaultFile is used for catalog slots without a dedicated layout.
const DefaultFile = "default.yaml"

// Read returns the named level file, preferring a copy under levels/ on disk
// so edited layouts are picked up without a rebuild.
func Read(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

// Exists reports whether the level file is available on disk or embedded.
func Exists(name string) bool {
	clean := cleanLevelPath(name)
	if _, err := os.Stat(diskLevelPath(clean)); err == nil {
		return true
	}
	_, err := fs.Stat(LevelsFS, clean)
	return err == nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
