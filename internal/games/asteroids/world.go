// Package asteroids implements the asteroid field simulation: a fixed-step
// world owning the ship, asteroids, bullets, particles and powerups.
//
// The package is pure logic. Sound, drawing and UI state live behind the
// Audio and Listener interfaces and the read-only Snapshot.
package asteroids

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
)

// Option configures a World.
type Option func(*World)

// WithAudio sets the sound collaborator.
func WithAudio(a Audio) Option {
	return func(w *World) {
		if a != nil {
			w.audio = a
		}
	}
}

// WithListener sets the receiver of HUD and game-over notifications.
func WithListener(l Listener) Option {
	return func(w *World) {
		if l != nil {
			w.listener = l
		}
	}
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// Stats are the run counters shown on the HUD.
type Stats struct {
	Score      int
	Lives      int
	Wave       int
	SpreadAmmo int
	Shots      int
	Hits       int
	Accuracy   int // Percent, rounded
}

// World is the simulation state of one run.
// It is not safe for concurrent use; hosts drive it from a single goroutine.
type World struct {
	cfg        config.AsteroidsConfig
	runtime    core.RuntimeConfig
	rng        *SimpleRNG
	difficulty *config.DifficultyManager

	audio    Audio
	listener Listener
	logger   *log.Logger

	sched      Scheduler
	run        RunID
	bonusTimer TimerID
	nextID     EntityID
	tick       int

	ship      Ship
	asteroids []Asteroid
	bullets   []Bullet
	particles []Particle
	powerups  []Powerup

	score      int
	lives      int
	wave       int
	spreadAmmo int
	shots      int
	hits       int
	over       bool // Game over has been requested for this run

	lifeColor   core.Color
	spreadColor core.Color
	hitBuf      []bool
}

// NewWorld creates a world for cfg. Call Reset before stepping it.
func NewWorld(cfg config.AsteroidsConfig, opts ...Option) *World {
	w := &World{
		cfg:      cfg,
		runtime:  core.DefaultConfig(),
		rng:      NewSimpleRNG(0),
		audio:    NopAudio{},
		listener: NopListener{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.lifeColor = parseColorOr(cfg.Powerups.LifeColor, core.ColorBrightGreen)
	w.spreadColor = parseColorOr(cfg.Powerups.SpreadColor, core.ColorBrightMagenta)
	w.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return w
}

func parseColorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Config returns the game configuration the world was built with.
func (w *World) Config() config.AsteroidsConfig {
	return w.cfg
}

// RunID returns the current run token.
func (w *World) RunID() RunID {
	return w.run
}

// Tick returns the number of steps taken in the current run.
func (w *World) Tick() int {
	return w.tick
}

// Bounds returns the world size.
func (w *World) Bounds() (width, height float64) {
	return w.runtime.Width, w.runtime.Height
}

// Reset starts a fresh run: new run token, cleared deferred actions,
// new ship, first wave, zeroed counters.
func (w *World) Reset(runtime core.RuntimeConfig) {
	if runtime.Width <= 0 || runtime.Height <= 0 {
		def := core.DefaultConfig()
		runtime.Width, runtime.Height = def.Width, def.Height
	}
	w.runtime = runtime
	w.rng = NewSimpleRNG(runtime.Seed)

	w.run++
	w.sched.Clear()
	w.bonusTimer = 0
	w.nextID = 0
	w.tick = 0

	w.asteroids = w.asteroids[:0]
	w.bullets = w.bullets[:0]
	w.particles = w.particles[:0]
	w.powerups = w.powerups[:0]

	w.score = 0
	w.lives = w.cfg.Ship.StartLives
	w.wave = 1
	w.spreadAmmo = 0
	w.shots = 0
	w.hits = 0
	w.over = false

	w.ship = Ship{Body: Body{ID: w.newID(), Radius: w.cfg.Ship.Radius}}
	w.placeShip()
	w.SpawnAsteroids(w.WaveSize())

	w.logger.Debug("run reset", "run", w.run, "seed", runtime.Seed, "width", runtime.Width, "height", runtime.Height)

	w.listener.ScoreChanged(w.score)
	w.listener.LivesChanged(w.lives)
	w.listener.AmmoChanged(w.spreadAmmo)
	w.listener.WaveChanged(w.wave)
}

// SetBounds resizes the world. Positions scale with the bounds so a
// centered ship stays centered; powerups are then kept inside the spawn margins.
func (w *World) SetBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	oldW, oldH := w.runtime.Width, w.runtime.Height
	w.runtime.Width, w.runtime.Height = width, height
	if oldW <= 0 || oldH <= 0 {
		return
	}

	scale := func(p core.Vec2) core.Vec2 {
		return core.V(p.X*width/oldW, p.Y*height/oldH)
	}

	w.ship.Pos = scale(w.ship.Pos).Wrap(width, height)
	for i := range w.asteroids {
		w.asteroids[i].Pos = scale(w.asteroids[i].Pos).Wrap(width, height)
	}
	for i := range w.bullets {
		w.bullets[i].Pos = scale(w.bullets[i].Pos)
	}
	for i := range w.particles {
		w.particles[i].Pos = scale(w.particles[i].Pos)
	}
	margin := w.cfg.Powerups.Margin
	for i := range w.powerups {
		p := scale(w.powerups[i].Pos)
		w.powerups[i].Pos = core.V(clampInset(p.X, width, margin), clampInset(p.Y, height, margin))
	}
}

// Step advances the world by one playing tick: deferred actions, input,
// physics, collisions, then wave progression.
func (w *World) Step(in core.InputFrame) {
	w.tick++
	w.sched.Advance(w.run, w.dropStale)

	w.applyInput(in)
	w.integrate()
	w.resolveCollisions()
	w.checkWave()

	w.checkInvariants()
}

func (w *World) dropStale(name string, run RunID) {
	w.logger.Debug("stale deferred action dropped", "action", name, "run", run, "current", w.run)
}

func (w *World) checkInvariants() {
	invariant(w.lives >= 0, "negative lives %d", w.lives)
	invariant(w.spreadAmmo >= 0, "negative spread ammo %d", w.spreadAmmo)
	for _, a := range w.asteroids {
		invariant(a.Size.Valid(), "asteroid %d has size class %d", a.ID, a.Size)
	}
	for _, p := range w.powerups {
		invariant(p.Lifetime > 0, "powerup %d kept with lifetime %d", p.ID, p.Lifetime)
	}
}

// Stats returns the current run counters.
func (w *World) Stats() Stats {
	return Stats{
		Score:      w.score,
		Lives:      w.lives,
		Wave:       w.wave,
		SpreadAmmo: w.spreadAmmo,
		Shots:      w.shots,
		Hits:       w.hits,
		Accuracy:   w.Accuracy(),
	}
}

// Accuracy returns round(100*hits/shots), or 0 before the first shot.
func (w *World) Accuracy() int {
	if w.shots == 0 {
		return 0
	}
	return int(math.Round(100 * float64(w.hits) / float64(w.shots)))
}

// GameOver reports whether the current run has requested game over.
func (w *World) GameOver() bool {
	return w.over
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) center() core.Vec2 {
	return core.V(w.runtime.Width/2, w.runtime.Height/2)
}

// placeShip puts the ship at the world center, nose up, at rest and invulnerable.
func (w *World) placeShip() {
	s := &w.ship
	s.Pos = w.center()
	s.Vel = core.Vec2{}
	s.Rotation = -math.Pi / 2
	s.Thrusting = false
	s.Destroyed = false
	s.Invulnerable = w.cfg.Ship.InvulnerableFrames
}
