package system

import (
	"fmt"
	"time"
)

type EventKind int

const (
	EventLevelComplete EventKind = iota
	EventPlayerReset
	EventEnemyKilled
	EventEnemyRemoved
	EventGravityFlipped
	EventTimelineChanged
	EventStateSaved
	EventStateRestored
	EventPowerUpCollected
	EventDiagnostic
)

var eventNames = map[EventKind]string{
	EventLevelComplete:    "level_complete",
	EventPlayerReset:      "player_reset",
	EventEnemyKilled:      "enemy_killed",
	EventEnemyRemoved:     "enemy_removed",
	EventGravityFlipped:   "gravity_flipped",
	EventTimelineChanged:  "timeline_changed",
	EventStateSaved:       "state_saved",
	EventStateRestored:    "state_restored",
	EventPowerUpCollected: "power_up_collected",
	EventDiagnostic:       "diagnostic",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is something the shell may want to react to. Elapsed is only set
// for EventLevelComplete.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Level   int
	Elapsed time.Duration
	Message string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

