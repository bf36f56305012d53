package asteroids

import (
	"github.com/vovakirdan/astro-arcade/internal/core"
)

// resolveCollisions runs the collision passes in their fixed order.
func (w *World) resolveCollisions() {
	w.bulletsVsAsteroids()
	w.shipVsAsteroids()
	w.shipVsPowerups()
}

// bulletsVsAsteroids lets each bullet destroy at most one asteroid.
// Struck asteroids are marked and compacted after the scan; fragments join
// the field afterwards, so they cannot be hit in the tick they appear.
func (w *World) bulletsVsAsteroids() {
	if len(w.bullets) == 0 || len(w.asteroids) == 0 {
		return
	}

	if cap(w.hitBuf) < len(w.asteroids) {
		w.hitBuf = make([]bool, len(w.asteroids))
	}
	hit := w.hitBuf[:len(w.asteroids)]
	clear(hit)

	var fragments []Asteroid
	bullets := w.bullets[:0]
	for _, b := range w.bullets {
		struck := -1
		for j, a := range w.asteroids {
			if hit[j] {
				continue
			}
			if core.CirclesOverlap(b.Pos, b.Radius, a.Pos, a.Radius, 0) {
				struck = j
				break
			}
		}
		if struck < 0 {
			bullets = append(bullets, b)
			continue
		}
		hit[struck] = true
		fragments = append(fragments, w.destroyAsteroid(w.asteroids[struck])...)
	}
	clear(w.bullets[len(bullets):])
	w.bullets = bullets

	kept := w.asteroids[:0]
	for j, a := range w.asteroids {
		if !hit[j] {
			kept = append(kept, a)
		}
	}
	clear(w.asteroids[len(kept):])
	w.asteroids = append(kept, fragments...)
}

// destroyAsteroid scores a hit and returns the fragments it leaves behind.
func (w *World) destroyAsteroid(a Asteroid) []Asteroid {
	w.hits++
	w.score += w.points(a.Size)
	w.listener.ScoreChanged(w.score)
	w.audio.Explosion(explosionFor(a.Size))
	w.CreateParticles(a.Pos, w.cfg.Particles.DebrisPerSize*int(a.Size), debrisColor)
	return w.fragment(a)
}

// points returns the score for destroying an asteroid of the given size.
// Bigger rocks are worth less because they are more common.
func (w *World) points(size SizeClass) int {
	sc := w.cfg.Scoring
	switch size {
	case SizeMassive:
		return sc.Massive
	case SizeLarge:
		return sc.Large
	case SizeMedium:
		return sc.Medium
	default:
		return sc.Small
	}
}

// shipVsAsteroids destroys the ship on its first overlap with an asteroid.
// The asteroid survives.
func (w *World) shipVsAsteroids() {
	s := w.ship
	if s.Destroyed || s.Invulnerable > 0 {
		return
	}
	margin := w.cfg.Ship.CollisionMargin
	for _, a := range w.asteroids {
		if core.CirclesOverlap(s.Pos, s.Radius, a.Pos, a.Radius, margin) {
			w.destroyShip()
			return
		}
	}
}

// destroyShip handles a fatal hit and schedules either a respawn or game over.
func (w *World) destroyShip() {
	s := &w.ship
	s.Destroyed = true
	s.Thrusting = false
	s.Vel = core.Vec2{}

	w.audio.Explosion(ExplosionLarge)
	w.CreateParticles(s.Pos, w.cfg.Particles.DeathBurst, deathColor)

	if w.lives > 0 {
		w.lives--
	}
	w.listener.LivesChanged(w.lives)

	if w.spreadAmmo > 0 {
		w.spreadAmmo = 0
		w.listener.AmmoChanged(0)
	}

	w.logger.Debug("ship destroyed", "run", w.run, "lives", w.lives, "tick", w.tick)

	if w.lives == 0 {
		w.sched.After(w.run, w.runtime.TicksFor(w.cfg.Timing.GameOverDelayMs), "game-over", w.endRun)
		return
	}
	w.sched.After(w.run, w.runtime.TicksFor(w.cfg.Timing.RespawnDelayMs), "respawn", w.respawn)
}

// respawn brings the ship back at the center with fresh invulnerability.
func (w *World) respawn() {
	w.placeShip()
	w.logger.Debug("ship respawned", "run", w.run, "tick", w.tick)
}

// endRun reports final accuracy and requests game over, once per run.
func (w *World) endRun() {
	if w.over {
		return
	}
	w.over = true
	acc := w.Accuracy()
	w.logger.Debug("game over", "run", w.run, "score", w.score, "accuracy", acc)
	w.listener.AccuracyChanged(acc)
	w.audio.GameOver()
	w.listener.RequestGameOver()
}

// shipVsPowerups collects every powerup the ship touches this tick.
func (w *World) shipVsPowerups() {
	s := w.ship
	if s.Destroyed || len(w.powerups) == 0 {
		return
	}
	kept := w.powerups[:0]
	var collected []Powerup
	for _, p := range w.powerups {
		if core.CirclesOverlap(s.Pos, s.Radius, p.Pos, p.Radius, 0) {
			collected = append(collected, p)
			continue
		}
		kept = append(kept, p)
	}
	clear(w.powerups[len(kept):])
	w.powerups = kept

	for _, p := range collected {
		w.collect(p)
	}
}

// collect applies a powerup's effect.
func (w *World) collect(p Powerup) {
	switch p.Type {
	case PowerupLife:
		if w.lives < w.cfg.Ship.MaxLives {
			w.lives++
			w.listener.LivesChanged(w.lives)
		}
	case PowerupSpread:
		w.spreadAmmo = w.cfg.Bullets.SpreadAmmo
		w.listener.AmmoChanged(w.spreadAmmo)
	}
	w.audio.PowerupCollected()
	w.CreateParticles(p.Pos, w.cfg.Particles.CollectBurst, p.Color)
	w.logger.Debug("powerup collected", "type", p.Type, "lives", w.lives, "ammo", w.spreadAmmo)
}
