package system

func applyGravity(w *World) {
	w.player.MoveVertical(w.scale)
	for _, e := range w.level.Enemies {
		e.MoveVertical(w.scale)
	}
}

func resolvePlatforms(w *World) {
	platforms := w.level.Platforms(w.present)
	w.player.TouchPlatforms(platforms)
	for _, e := range w.level.Enemies {
		e.TouchPlatforms(platforms)
	}
}

func resolvePads(w *World) {
	cooldown := w.tuning.Pad.Cooldown
	if w.player.TouchGravityPads(w.level.Pads, cooldown) {
		w.emit(EventGravityFlipped, "player")
		w.logger.Debug("gravity flipped", "gravity", w.player.GravAccel, "tick", w.ticks)
	}
	for _, e := range w.level.Enemies {
		e.TouchGravityPads(w.level.Pads, cooldown)
	}
}

// moveHorizontal reads the timeline again since an enemy contact may have
// reset it.
func moveHorizontal(w *World) {
	platforms := w.level.Platforms(w.present)
	w.player.MoveHorizontal(platforms, w.scale)
	for _, e := range w.level.Enemies {
		e.Attack(w.player.X, w.player.Y)
		e.MoveHorizontal(platforms, w.scale)
	}
}

func enforceBounds(w *World) {
	w.player.ClampX(w.screenW)
	for _, e := range w.level.Enemies {
		e.ClampX(w.screenW)
	}
	if w.player.OutOfBounds(w.screenH) {
		w.resetPlayer("out of bounds")
	}
}

func purgeEnemies(w *World) {
	if n := w.level.PurgeEnemies(w.screenH); n > 0 {
		w.emit(EventEnemyRemoved, "")
		w.logger.Debug("enemies removed", "count", n, "left", len(w.level.Enemies), "tick", w.ticks)
	}
}

// settle advances the per-tick timers and the active timeline's moving
// platforms.
func settle(w *World) {
	for _, p := range w.level.Platforms(w.present) {
		p.Move()
	}
	for _, g := range w.level.Pads {
		g.Update()
	}
	for _, e := range w.level.Enemies {
		e.Decay()
	}
}
