package prefabs

import (
	"fmt"

	"github.com/milk9111/timeshift/obj"
	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is a prefab file: a name plus one block per component.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec decodes raw over dst, keeping fields raw omits.
func DecodeComponentSpec[T any](raw any, dst *T) error {
	if raw == nil {
		return nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, dst)
}

// TuningFiles lists the prefab files LoadTuning reads.
var TuningFiles = []string{"player.yaml", "enemy.yaml", "gravity_pad.yaml", "power_up.yaml", "hud.yaml"}

// LoadTuning overlays every tuning prefab on the built-in defaults.
func LoadTuning() (obj.Tuning, error) {
	t := obj.DefaultTuning()
	for _, name := range TuningFiles {
		spec, err := LoadEntityBuildSpec(name)
		if err != nil {
			return t, err
		}
		if err := applyComponents(&t, spec); err != nil {
			return t, fmt.Errorf("prefabs: %s: %w", name, err)
		}
	}
	if err := validateTuning(t); err != nil {
		return t, err
	}
	return t, nil
}

func applyComponents(t *obj.Tuning, spec EntityBuildSpec) error {
	for key, raw := range spec.Components {
		var err error
		switch key {
		case "player":
			err = DecodeComponentSpec(raw, &t.Player)
		case "enemy":
			err = DecodeComponentSpec(raw, &t.Enemy)
		case "pad":
			err = DecodeComponentSpec(raw, &t.Pad)
		case "power_up":
			err = DecodeComponentSpec(raw, &t.PowerUp)
		case "button":
			err = DecodeComponentSpec(raw, &t.Button)
		default:
			err = fmt.Errorf("unknown component %q", key)
		}
		if err != nil {
			return fmt.Errorf("component %s: %w", key, err)
		}
	}
	return nil
}

func validateTuning(t obj.Tuning) error {
	switch {
	case t.Player.MoveSpeed <= 0 || t.Player.JumpSpeed <= 0:
		return fmt.Errorf("prefabs: player speeds must be positive")
	case t.Player.WallDebounce <= 0 || t.Enemy.WallDebounce <= 0:
		return fmt.Errorf("prefabs: wall debounce must be positive")
	case t.Enemy.Friction < 0 || t.Enemy.Friction > 1:
		return fmt.Errorf("prefabs: enemy friction %v outside [0, 1]", t.Enemy.Friction)
	case t.Pad.TriggerBand <= 0 || t.Pad.TriggerBand > 1:
		return fmt.Errorf("prefabs: pad trigger band %v outside (0, 1]", t.Pad.TriggerBand)
	case t.PowerUp.Duration < 0 || t.PowerUp.FlickerWindow < 0:
		return fmt.Errorf("prefabs: power-up timers must not be negative")
	}
	return nil
}
