package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/timeshift/assets"
	"github.com/milk9111/timeshift/obj"
)

// Provider turns manifest entries into ebiten images. Entries with an image
// path are decoded from disk; the rest get a solid placeholder.
type Provider struct {
	manifest assets.Manifest
	cache    map[obj.SpriteKey]*ebiten.Image
}

func NewProvider(m assets.Manifest) *Provider {
	return &Provider{manifest: m, cache: make(map[obj.SpriteKey]*ebiten.Image)}
}

// Sprite resolves key. When the image file cannot be loaded the sprite keeps
// its manifest size and the error wraps assets.ErrMissingSprite.
func (p *Provider) Sprite(key obj.SpriteKey) (obj.Sprite, error) {
	s, err := p.manifest.Sprite(key)
	if err != nil {
		return s, err
	}
	if img, ok := p.cache[key]; ok {
		s.Handle = img
		return s, nil
	}

	e := p.manifest[key]
	var img *ebiten.Image
	if e.Image != "" {
		img, err = LoadImage(e.Image)
		if err != nil {
			return s, fmt.Errorf("%w: %s: %w", assets.ErrMissingSprite, key, err)
		}
	} else {
		img = ebiten.NewImage(e.Width, e.Height)
		img.Fill(e.RGBA())
	}
	p.cache[key] = img
	s.Handle = img
	return s, nil
}

// LoadImage decodes a PNG by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(assets.ImagePath(path))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
