package system

// Phase is one step of a tick.
type Phase interface {
	Update(w *World)
}

// PhaseFunc adapts a function to a Phase.
type PhaseFunc func(w *World)

func (f PhaseFunc) Update(w *World) {
	f(w)
}

// Scheduler runs phases in the order they were added.
type Scheduler struct {
	phases []Phase
}

func NewScheduler(phases ...Phase) *Scheduler {
	copied := append([]Phase(nil), phases...)
	return &Scheduler{phases: copied}
}

func (s *Scheduler) Add(phase Phase) {
	if phase == nil {
		return
	}
	s.phases = append(s.phases, phase)
}

func (s *Scheduler) Update(w *World) {
	for _, phase := range s.phases {
		phase.Update(w)
	}
}

func (s *Scheduler) Phases() []Phase {
	phases := make([]Phase, 0, len(s.phases))
	return append(phases, s.phases...)
}
