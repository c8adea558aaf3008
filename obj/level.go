package obj

// Level holds the live entities of one playable level. Present and Future
// are the two timelines' platform sets; everything else is shared.
type Level struct {
	Index      int
	Name       string
	Gravity    float64
	StartX     int
	StartY     int
	Background Background

	Present  []*Platform
	Future   []*Platform
	Pads     []*GravityPad
	Machines []*TimeMachine
	Enemies  []*Enemy
	PowerUps []*PowerUp
	Goal     *Goal
}

// Platforms returns the set for the active timeline.
func (l *Level) Platforms(present bool) []*Platform {
	if l == nil {
		return nil
	}
	if present {
		return l.Present
	}
	return l.Future
}

// PurgeEnemies drops enemies whose fade has finished and any enemy past the
// edge its gravity pulls toward. It returns how many were removed.
func (l *Level) PurgeEnemies(screenH int) int {
	if l == nil {
		return 0
	}
	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		if e.Expired() || e.OutOfBounds(screenH) {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(l.Enemies) - len(kept)
	for i := len(kept); i < len(l.Enemies); i++ {
		l.Enemies[i] = nil
	}
	l.Enemies = kept
	return removed
}
