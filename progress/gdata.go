package progress

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "state"
)

// GDataStore keeps progress in the platform's per-user app data.
type GDataStore struct {
	m *gdata.Manager
}

func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progress: open app data: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load() (*Progress, error) {
	if s == nil || s.m == nil {
		return nil, ErrNoStore
	}
	if !s.m.ObjectPropExists(progressObject, progressProperty) {
		return New(), nil
	}
	data, err := s.m.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return nil, fmt.Errorf("progress: load: %w", err)
	}
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("progress: decode: %w", err)
	}
	p.normalize()
	return &p, nil
}

func (s *GDataStore) Save(p *Progress) error {
	if s == nil || s.m == nil {
		return ErrNoStore
	}
	p.normalize()
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("progress: encode: %w", err)
	}
	if err := s.m.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	return nil
}
