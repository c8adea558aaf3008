package levels

import (
	"fmt"
)

// Count is the number of playable catalog slots.
const Count = 10

// FileName returns the file backing catalog slot index. Slots without their
// own layout fall back to DefaultFile.
func FileName(index int) string {
	name := fmt.Sprintf("level%d.yaml", index)
	if Exists(name) {
		return name
	}
	return DefaultFile
}

// Load reads and validates catalog slot index (1-based).
func Load(index int) (*Spec, error) {
	if index < 1 || index > Count {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, index)
	}
	name := FileName(index)
	data, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	spec.Index = index
	return spec, nil
}

// All loads every catalog slot in order.
func All() ([]*Spec, error) {
	specs := make([]*Spec, 0, Count)
	for i := 1; i <= Count; i++ {
		s, err := Load(i)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
