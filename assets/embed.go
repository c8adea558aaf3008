package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/timeshift/obj"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrMissingSprite = errors.New("assets: missing sprite")

//go:embed manifest.yaml
var manifestYAML []byte

// Entry describes one sprite's native size and look.
type Entry struct {
	Width  int    `yaml:"w"`
	Height int    `yaml:"h"`
	Color  string `yaml:"color"`
	Image  string `yaml:"image,omitempty"`
}

func (e Entry) RGBA() color.RGBA {
	if c, ok := colornames.Map[e.Color]; ok {
		return c
	}
	return colornames.Magenta
}

// Manifest maps sprite keys to their entries. It is itself a SpriteSource
// that yields sizes without images, which is all a headless run needs.
type Manifest map[obj.SpriteKey]Entry

// LoadManifest reads assets/manifest.yaml from disk when present, otherwise
// the embedded copy.
func LoadManifest() (Manifest, error) {
	data, err := os.ReadFile(filepath.Join("assets", "manifest.yaml"))
	if err != nil {
		data = manifestYAML
	}
	return ParseManifest(data)
}

func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}
	for _, k := range m.Keys() {
		e := m[k]
		if e.Width <= 0 || e.Height <= 0 {
			return nil, fmt.Errorf("assets: %s: size %dx%d must be positive", k, e.Width, e.Height)
		}
		if _, ok := colornames.Map[e.Color]; !ok {
			return nil, fmt.Errorf("assets: %s: unknown colour %q", k, e.Color)
		}
	}
	return m, nil
}

func (m Manifest) Sprite(key obj.SpriteKey) (obj.Sprite, error) {
	e, ok := m[key]
	if !ok {
		return obj.Sprite{Key: key}, fmt.Errorf("%w: %s", ErrMissingSprite, key)
	}
	return obj.Sprite{Key: key, Width: e.Width, Height: e.Height}, nil
}

// Keys returns the manifest's keys in sorted order.
func (m Manifest) Keys() []obj.SpriteKey {
	keys := make([]obj.SpriteKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Missing lists required keys the manifest does not define.
func (m Manifest) Missing(required []obj.SpriteKey) []obj.SpriteKey {
	var out []obj.SpriteKey
	for _, k := range required {
		if _, ok := m[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// RequiredSprites lists every key the simulation may ask for.
func RequiredSprites() []obj.SpriteKey {
	keys := []obj.SpriteKey{
		obj.SpritePadOff, obj.SpritePadOn,
		obj.SpriteMachinePresent, obj.SpriteMachineFuture,
		obj.SpriteGoal,
		obj.SpritePowerSpeed, obj.SpritePowerJump, obj.SpritePowerShield,
		obj.SpriteButtonSave, obj.SpriteButtonReturn, obj.SpriteButtonTimeChange,
		obj.SpriteTileWood,
	}
	keys = append(keys, obj.PlayerSpriteKeys...)
	keys = append(keys, obj.EnemySpriteKeys...)
	for _, bg := range []obj.Background{obj.BackgroundFacility, obj.BackgroundSpace, obj.BackgroundNight} {
		keys = append(keys, obj.BackgroundSprite(bg))
	}
	return keys
}

// ImagePath maps an image reference to its location under assets/ on disk.
func ImagePath(path string) string {
	return filepath.Join("assets", filepath.FromSlash(cleanAssetPath(path)))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
