package asteroids

// WaveSize returns the number of asteroids in the next wave.
func (w *World) WaveSize() int {
	wc := w.cfg.Waves
	n := wc.BaseCount
	if wc.ScorePerExtra > 0 {
		n += w.score / wc.ScorePerExtra
	}
	return n
}

// checkWave starts the next wave once the field is clear.
// Every LifeEvery-th wave also drops a life powerup.
func (w *World) checkWave() {
	if len(w.asteroids) > 0 {
		return
	}

	w.wave++
	size := w.WaveSize()
	w.SpawnAsteroids(size)
	w.listener.WaveChanged(w.wave)
	w.logger.Debug("wave started", "run", w.run, "wave", w.wave, "asteroids", size, "score", w.score)

	if every := w.cfg.Waves.LifeEvery; every > 0 && w.wave%every == 0 {
		w.SpawnPowerup(PowerupLife)
	}
}

// StartBonusTimer arms the periodic spread offer for the current run.
// It is a no-op while the timer is already armed.
func (w *World) StartBonusTimer() {
	if w.bonusTimer != 0 {
		return
	}
	interval := w.runtime.TicksFor(w.cfg.Powerups.OfferIntervalMs)
	if interval <= 0 {
		return
	}
	w.bonusTimer = w.sched.Every(w.run, interval, LifecyclePlaying, "spread-offer", w.offerSpread)
}

// StopBonusTimer tears down every action owned by the playing state.
func (w *World) StopBonusTimer() {
	w.sched.CancelLifecycle(LifecyclePlaying)
	w.bonusTimer = 0
}

// offerSpread spawns a spread powerup unless one is already on the field.
func (w *World) offerSpread() {
	for _, p := range w.powerups {
		if p.Type == PowerupSpread {
			return
		}
	}
	w.SpawnPowerup(PowerupSpread)
}
