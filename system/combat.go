package system

import "fmt"

// resolveContacts handles the player's non-solid contacts in order: goal,
// time machines, power-ups, then enemies.
func resolveContacts(w *World) {
	p := w.player
	lvl := w.level

	if p.TouchGoal(lvl.Goal) && !w.goalReached {
		w.goalReached = true
		w.logger.Debug("goal reached", "level", lvl.Index, "tick", w.ticks)
	}

	w.warp.Visible = p.TouchTimeMachines(lvl.Machines)

	if picked := p.TouchPowerUps(lvl.PowerUps); picked != nil {
		w.emit(EventPowerUpCollected, picked.Type.String())
	}

	killed := p.TouchEnemies(lvl.Enemies, func() { w.resetPlayer("enemy") })
	for _, e := range killed {
		w.emit(EventEnemyKilled, fmt.Sprintf("enemy at (%d, %d)", e.X, e.Y))
		w.logger.Debug("enemy killed", "level", lvl.Index, "tick", w.ticks)
	}
}
