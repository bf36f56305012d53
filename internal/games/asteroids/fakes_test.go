package asteroids

import (
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
)

// fakeAudio records every sound event.
type fakeAudio struct {
	shots       int
	explosions  []ExplosionSize
	spawned     int
	collected   int
	thrust      []bool
	gameOvers   int
	musicStarts int
	musicStops  int
}

func (a *fakeAudio) ShotFired()                   { a.shots++ }
func (a *fakeAudio) Explosion(size ExplosionSize) { a.explosions = append(a.explosions, size) }
func (a *fakeAudio) PowerupSpawned()              { a.spawned++ }
func (a *fakeAudio) PowerupCollected()            { a.collected++ }
func (a *fakeAudio) Thrust(on bool)               { a.thrust = append(a.thrust, on) }
func (a *fakeAudio) GameOver()                    { a.gameOvers++ }
func (a *fakeAudio) StartMusic()                  { a.musicStarts++ }
func (a *fakeAudio) StopMusic()                   { a.musicStops++ }
func (a *fakeAudio) reset()                       { *a = fakeAudio{} }

func (a *fakeAudio) lastThrust() (on bool, ok bool) {
	if len(a.thrust) == 0 {
		return false, false
	}
	return a.thrust[len(a.thrust)-1], true
}

// fakeListener records every upward notification.
type fakeListener struct {
	scores     []int
	lives      []int
	accuracy   []int
	ammo       []int
	waves      []int
	gameOvers  int
	onGameOver func()
}

func (l *fakeListener) ScoreChanged(score int)      { l.scores = append(l.scores, score) }
func (l *fakeListener) LivesChanged(lives int)      { l.lives = append(l.lives, lives) }
func (l *fakeListener) AccuracyChanged(percent int) { l.accuracy = append(l.accuracy, percent) }
func (l *fakeListener) AmmoChanged(ammo int)        { l.ammo = append(l.ammo, ammo) }
func (l *fakeListener) WaveChanged(wave int)        { l.waves = append(l.waves, wave) }
func (l *fakeListener) RequestGameOver() {
	l.gameOvers++
	if l.onGameOver != nil {
		l.onGameOver()
	}
}

func (l *fakeListener) reset() {
	hook := l.onGameOver
	*l = fakeListener{onGameOver: hook}
}

func last(values []int) int {
	if len(values) == 0 {
		return -1
	}
	return values[len(values)-1]
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{Width: 800, Height: 600, TickRate: 60, Seed: 42}
}

// newTestWorld returns a reset world with default config and cleared recorders.
func newTestWorld(t *testing.T) (*World, *fakeAudio, *fakeListener) {
	t.Helper()
	return newTestWorldWith(t, config.DefaultAsteroidsConfig())
}

func newTestWorldWith(t *testing.T, cfg config.AsteroidsConfig) (*World, *fakeAudio, *fakeListener) {
	t.Helper()
	audio := &fakeAudio{}
	listener := &fakeListener{}
	w := NewWorld(cfg, WithAudio(audio), WithListener(listener))
	w.Reset(testRuntime())
	audio.reset()
	listener.reset()
	return w, audio, listener
}

// stillAsteroid builds a motionless asteroid for collision setups.
func stillAsteroid(w *World, pos core.Vec2, size SizeClass) Asteroid {
	a := w.newAsteroid(pos, size, 1)
	a.Vel = core.Vec2{}
	return a
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
