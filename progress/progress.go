package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/timeshift/levels"
)

var ErrNoStore = errors.New("progress: no store")

// Progress tracks which levels are unlocked and the best completion time of
// each. Slices are indexed by level-1.
type Progress struct {
	Unlocked   []bool  `yaml:"unlocked"`
	BestMillis []int64 `yaml:"best_ms"`
}

// New returns progress with only the first level unlocked.
func New() *Progress {
	p := &Progress{}
	p.normalize()
	return p
}

func (p *Progress) normalize() {
	for len(p.Unlocked) < levels.Count {
		p.Unlocked = append(p.Unlocked, false)
	}
	for len(p.BestMillis) < levels.Count {
		p.BestMillis = append(p.BestMillis, 0)
	}
	p.Unlocked = p.Unlocked[:levels.Count]
	p.BestMillis = p.BestMillis[:levels.Count]
	p.Unlocked[0] = true
}

func valid(level int) bool {
	return level >= 1 && level <= levels.Count
}

func (p *Progress) IsUnlocked(level int) bool {
	return valid(level) && p.Unlocked[level-1]
}

// Best returns the fastest recorded completion of level.
func (p *Progress) Best(level int) (time.Duration, bool) {
	if !valid(level) || p.BestMillis[level-1] == 0 {
		return 0, false
	}
	return time.Duration(p.BestMillis[level-1]) * time.Millisecond, true
}

// Complete records a finished run. It unlocks the next level and reports
// whether elapsed beat the previous best. Zero times are not recorded.
func (p *Progress) Complete(level int, elapsed time.Duration) (bool, error) {
	if !valid(level) {
		return false, fmt.Errorf("%w: %d", levels.ErrUnknownLevel, level)
	}
	if level < levels.Count {
		p.Unlocked[level] = true
	}
	ms := elapsed.Milliseconds()
	if ms <= 0 {
		return false, nil
	}
	if best := p.BestMillis[level-1]; best == 0 || ms < best {
		p.BestMillis[level-1] = ms
		return true, nil
	}
	return false, nil
}

// Highest is the highest unlocked level.
func (p *Progress) Highest() int {
	for i := len(p.Unlocked) - 1; i >= 0; i-- {
		if p.Unlocked[i] {
			return i + 1
		}
	}
	return 1
}

// Store persists progress.
type Store interface {
	Load() (*Progress, error)
	Save(p *Progress) error
}

// MemoryStore keeps progress for the lifetime of the process.
type MemoryStore struct {
	p *Progress
}

func (m *MemoryStore) Load() (*Progress, error) {
	if m.p == nil {
		return New(), nil
	}
	cp := *m.p
	cp.Unlocked = append([]bool(nil), m.p.Unlocked...)
	cp.BestMillis = append([]int64(nil), m.p.BestMillis...)
	return &cp, nil
}

func (m *MemoryStore) Save(p *Progress) error {
	if p == nil {
		return errors.New("progress: nil progress")
	}
	cp := *p
	cp.Unlocked = append([]bool(nil), p.Unlocked...)
	cp.BestMillis = append([]int64(nil), p.BestMillis...)
	m.p = &cp
	return nil
}

// Record loads progress from s, applies a completed run and saves it.
func Record(s Store, level int, elapsed time.Duration) (bool, error) {
	if s == nil {
		return false, ErrNoStore
	}
	p, err := s.Load()
	if err != nil {
		return false, err
	}
	improved, err := p.Complete(level, elapsed)
	if err != nil {
		return false, err
	}
	return improved, s.Save(p)
}
