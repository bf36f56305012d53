package asteroids

import "math"

// Snapshot is a self-consistent copy of the world after a tick.
// Renderers read it; mutating it never affects the simulation.
type Snapshot struct {
	Tick   uint64
	Run    RunID
	Width  float64
	Height float64

	Ship      Ship
	Asteroids []Asteroid
	Bullets   []Bullet
	Particles []Particle
	Powerups  []Powerup

	Score      int
	Lives      int
	Wave       int
	SpreadAmmo int
	Shots      int
	Hits       int
	GameOver   bool

	RNGState uint64
}

// Snapshot returns a copy of the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:   uint64(w.tick), //#nosec G115 -- tick count is always positive
		Run:    w.run,
		Width:  w.runtime.Width,
		Height: w.runtime.Height,

		Ship:      w.ship,
		Asteroids: cloneSlice(w.asteroids),
		Bullets:   cloneSlice(w.bullets),
		Particles: cloneSlice(w.particles),
		Powerups:  cloneSlice(w.powerups),

		Score:      w.score,
		Lives:      w.lives,
		Wave:       w.wave,
		SpreadAmmo: w.spreadAmmo,
		Shots:      w.shots,
		Hits:       w.hits,
		GameOver:   w.over,

		RNGState: w.rng.State(),
	}
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Entities returns every entity in draw order: particles, powerups,
// asteroids, bullets, then the ship unless it is destroyed.
func (snap *Snapshot) Entities() []Entity {
	out := make([]Entity, 0, len(snap.Particles)+len(snap.Powerups)+len(snap.Asteroids)+len(snap.Bullets)+1)
	for _, p := range snap.Particles {
		out = append(out, p)
	}
	for _, p := range snap.Powerups {
		out = append(out, p)
	}
	for _, a := range snap.Asteroids {
		out = append(out, a)
	}
	for _, b := range snap.Bullets {
		out = append(out, b)
	}
	if !snap.Ship.Destroyed {
		out = append(out, snap.Ship)
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpreadAmmo) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)       //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	h = hashBody(h, snap.Ship.Body)
	if snap.Ship.Destroyed {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Ship.Invulnerable) //#nosec G115 -- hash computation

	for _, a := range snap.Asteroids {
		h = hashBody(h, a.Body)
		h = h*31 + uint64(a.Size) //#nosec G115 -- hash computation
	}
	for _, b := range snap.Bullets {
		h = hashBody(h, b.Body)
	}
	for _, p := range snap.Particles {
		h = hashBody(h, p.Body)
		h = h*31 + uint64(p.Life) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Powerups {
		h = hashBody(h, p.Body)
		h = h*31 + uint64(p.Type)     //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Lifetime) //#nosec G115 -- hash computation
	}
	return h
}

func hashBody(h uint64, b Body) uint64 {
	h = h*31 + uint64(b.ID)
	h = h*31 + math.Float64bits(b.Pos.X)
	h = h*31 + math.Float64bits(b.Pos.Y)
	h = h*31 + math.Float64bits(b.Vel.X)
	h = h*31 + math.Float64bits(b.Vel.Y)
	h = h*31 + math.Float64bits(b.Rotation)
	return h
}
