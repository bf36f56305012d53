package asteroids

import (
	"math"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// maxSpawnAttempts bounds the safe-zone rejection loop. After that the
// rock goes on the safe-zone rim, or in the corner when the rim leaves the world.
const maxSpawnAttempts = 64

// debrisColor tints asteroid explosion particles.
const debrisColor = core.ColorGray

// deathColor tints the ship's death burst.
const deathColor = core.ColorOrange

// SpawnAsteroids appends count new asteroids at random positions outside the
// safe zone. Existing asteroids are kept.
func (w *World) SpawnAsteroids(count int) {
	for range count {
		pos := w.spawnPoint()
		w.asteroids = append(w.asteroids, w.newAsteroid(pos, w.rollSize(), 1))
	}
}

// rollSize draws a size class. Larger classes grow likelier with score:
// the large chance follows difficulty and the massive chance gets a flat
// bonus past a score gate.
func (w *World) rollSize() SizeClass {
	wt := w.cfg.Asteroids.Weights

	massive := wt.MassiveChance
	if w.score >= wt.MassiveBonusScore {
		massive += wt.MassiveBonus
	}
	large := w.difficulty.Lerp(wt.LargeChance, wt.LargeChanceMax, w.score, w.tick)

	r := w.rng.Float64()
	switch {
	case r < massive:
		return SizeMassive
	case r < massive+large:
		return SizeLarge
	case r < massive+large+wt.MediumChance:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// spawnPoint picks a random position outside the safe zone around the world center.
func (w *World) spawnPoint() core.Vec2 {
	width, height := w.runtime.Width, w.runtime.Height
	center := w.center()
	safe := w.cfg.Asteroids.SafeZoneRadius

	for range maxSpawnAttempts {
		p := core.V(w.rng.Float64()*width, w.rng.Float64()*height)
		if p.Dist(center) >= safe {
			return p
		}
	}
	rim := center.Add(core.FromAngle(w.rng.Angle(), safe))
	if rim.In(width, height) {
		return rim
	}
	// The corner is the farthest point from the center, wrapped or not.
	return core.Vec2{}
}

// newAsteroid builds an asteroid with a random heading and outline.
// Speed falls with size and is multiplied by boost.
func (w *World) newAsteroid(pos core.Vec2, size SizeClass, boost float64) Asteroid {
	invariant(size.Valid(), "spawning asteroid with size class %d", size)

	ac := w.cfg.Asteroids
	radius := ac.BaseRadius * float64(size)

	speed := w.difficulty.Speed(ac.BaseSpeed, w.score, w.tick) / float64(size)
	speed *= w.rng.Range(ac.MinSpeedFactor, 1) * boost

	return Asteroid{
		Body: Body{
			ID:       w.newID(),
			Pos:      pos,
			Vel:      core.FromAngle(w.rng.Angle(), speed),
			Rotation: w.rng.Angle(),
			Radius:   radius,
		},
		Size:    size,
		Outline: w.outline(radius),
	}
}

// outline builds a jagged polygon around a circle of radius r.
// It is cosmetic; collisions use the circle.
func (w *World) outline(r float64) []core.Vec2 {
	ac := w.cfg.Asteroids
	n := w.rng.IntRange(ac.MinVertices, ac.MaxVertices)
	pts := make([]core.Vec2, n)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(n)
		jitter := 1 + w.rng.Range(-ac.Jitter, ac.Jitter)
		pts[i] = core.FromAngle(angle, r*jitter)
	}
	return pts
}

// fragment returns the children of a destroyed asteroid: two of the next
// smaller class at the same spot, or none for the smallest class.
func (w *World) fragment(a Asteroid) []Asteroid {
	if a.Size <= SizeSmall {
		return nil
	}
	child := a.Size - 1
	boost := w.cfg.Asteroids.FragmentSpeedBoost
	return []Asteroid{
		w.newAsteroid(a.Pos, child, boost),
		w.newAsteroid(a.Pos, child, boost),
	}
}

// SpawnPowerup places one powerup at a random position inset from the edges.
func (w *World) SpawnPowerup(t PowerupType) {
	pc := w.cfg.Powerups
	pos := core.V(
		insetCoord(w.rng.Float64(), w.runtime.Width, pc.Margin),
		insetCoord(w.rng.Float64(), w.runtime.Height, pc.Margin),
	)

	color := w.lifeColor
	if t == PowerupSpread {
		color = w.spreadColor
	}

	w.powerups = append(w.powerups, Powerup{
		Body:     Body{ID: w.newID(), Pos: pos, Radius: pc.Radius},
		Type:     t,
		Lifetime: pc.Lifetime,
		Color:    color,
	})
	w.audio.PowerupSpawned()
	w.logger.Debug("powerup spawned", "type", t, "x", pos.X, "y", pos.Y)
}

// insetCoord maps r in [0,1) into [margin, size-margin), or the midpoint
// when the axis is too short for the margin.
func insetCoord(r, size, margin float64) float64 {
	span := size - 2*margin
	if span <= 0 {
		return size / 2
	}
	return margin + r*span
}

// clampInset keeps v inside [margin, size-margin], or at the midpoint when
// the axis is too short for the margin.
func clampInset(v, size, margin float64) float64 {
	if size-2*margin <= 0 {
		return size / 2
	}
	return core.ClampF(v, margin, size-margin)
}

// CreateParticles appends count particles bursting outward from origin.
func (w *World) CreateParticles(origin core.Vec2, count int, color core.Color) {
	pc := w.cfg.Particles
	for range count {
		life := w.rng.IntRange(pc.MinLife, pc.MaxLife)
		w.particles = append(w.particles, Particle{
			Body: Body{
				ID:     w.newID(),
				Pos:    origin,
				Vel:    core.FromAngle(w.rng.Angle(), w.rng.Range(pc.MinSpeed, pc.MaxSpeed)),
				Radius: pc.Radius,
			},
			Life:    life,
			MaxLife: life,
			Color:   color,
		})
	}
}
