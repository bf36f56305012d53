package asteroids

import (
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
)

func newTestLoop(t *testing.T) (*Loop, *fakeAudio, *fakeListener) {
	t.Helper()
	audio := &fakeAudio{}
	listener := &fakeListener{}
	w := NewWorld(config.DefaultAsteroidsConfig(), WithAudio(audio), WithListener(listener))
	return NewLoop(w, testRuntime()), audio, listener
}

func TestLoopOnlyTicksWhilePlaying(t *testing.T) {
	loop, audio, _ := newTestLoop(t)

	if loop.State() != StateMenu {
		t.Fatalf("Expected menu state, got %v", loop.State())
	}
	if loop.Tick(idle()) {
		t.Error("Expected no tick in menu")
	}

	loop.SetState(StatePlaying)
	if loop.World().RunID() != 1 {
		t.Errorf("Expected first run started, got run %d", loop.World().RunID())
	}
	if audio.musicStarts != 1 {
		t.Errorf("Expected music started, got %d", audio.musicStarts)
	}
	if !loop.Tick(idle()) {
		t.Error("Expected tick to reschedule while playing")
	}
	if loop.World().Tick() != 1 {
		t.Errorf("Expected 1 world tick, got %d", loop.World().Tick())
	}

	for _, s := range []GameState{StateMenu, StateGameOver, StateAIInteraction} {
		loop.SetState(s)
		before := loop.World().Tick()
		if loop.Tick(idle()) {
			t.Errorf("Expected no tick in %v", s)
		}
		if loop.World().Tick() != before {
			t.Errorf("Expected world frozen in %v", s)
		}
	}
}

func TestLoopPauseResumeKeepsRun(t *testing.T) {
	loop, audio, _ := newTestLoop(t)
	loop.SetState(StatePlaying)
	for range 10 {
		loop.Tick(idle())
	}
	run := loop.World().RunID()
	snap := loop.Snapshot()

	loop.SetState(StatePaused)
	if audio.musicStops != 1 {
		t.Errorf("Expected music stopped on pause, got %d", audio.musicStops)
	}
	if on, ok := audio.lastThrust(); !ok || on {
		t.Errorf("Expected thrust off on pause")
	}
	loop.Tick(idle())

	loop.SetState(StatePlaying)
	if loop.World().RunID() != run {
		t.Errorf("Expected resume to keep run %d, got %d", run, loop.World().RunID())
	}
	resumed := loop.Snapshot()
	if resumed.Hash() != snap.Hash() {
		t.Errorf("Expected world unchanged across pause")
	}
}

func TestLoopRestartStartsFreshRun(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	loop.SetState(StatePlaying)
	w := loop.World()
	w.score = 500
	run := w.RunID()

	loop.SetState(StateGameOver)
	loop.SetState(StatePlaying)

	if w.RunID() != run+1 {
		t.Errorf("Expected new run %d, got %d", run+1, w.RunID())
	}
	if w.score != 0 {
		t.Errorf("Expected score reset, got %d", w.score)
	}
}

func TestLoopBonusTimerFollowsPlayingState(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Powerups.OfferIntervalMs = 100
	audio := &fakeAudio{}
	w := NewWorld(cfg, WithAudio(audio))
	loop := NewLoop(w, testRuntime())

	loop.SetState(StatePlaying)
	if w.sched.Pending() != 1 {
		t.Fatalf("Expected bonus timer armed, got %d pending", w.sched.Pending())
	}

	loop.SetState(StatePaused)
	if w.sched.Pending() != 0 {
		t.Errorf("Expected bonus timer torn down, got %d pending", w.sched.Pending())
	}

	loop.SetState(StatePlaying)
	if w.sched.Pending() != 1 {
		t.Errorf("Expected bonus timer re-armed, got %d pending", w.sched.Pending())
	}
}

func TestStaleRespawnDoesNotTouchNewRun(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	loop.SetState(StatePlaying)
	w := loop.World()

	w.ship.Invulnerable = 0
	w.asteroids = append(w.asteroids, stillAsteroid(w, w.ship.Pos, SizeSmall))
	loop.Tick(idle())
	if !w.ship.Destroyed {
		t.Fatal("Expected ship destroyed")
	}
	oldRun := w.RunID()

	loop.SetState(StateMenu)
	loop.SetState(StatePlaying)

	respawned := false
	w.sched.After(oldRun, 1, "respawn", func() { respawned = true })
	w.ship.Pos = core.V(100, 100)

	loop.Tick(idle())

	if respawned {
		t.Error("Expected respawn from the abandoned run to be dropped")
	}
	if w.ship.Pos != core.V(100, 100) {
		t.Errorf("Expected new run's ship untouched by stale action, got %+v", w.ship.Pos)
	}
	if w.lives != 3 {
		t.Errorf("Expected fresh lives, got %d", w.lives)
	}
}

func TestLoopStopsOnGameOverRequest(t *testing.T) {
	loop, audio, listener := newTestLoop(t)
	listener.onGameOver = func() { loop.SetState(StateGameOver) }
	loop.SetState(StatePlaying)
	w := loop.World()

	w.lives = 1
	w.ship.Invulnerable = 0
	w.asteroids = append(w.asteroids, stillAsteroid(w, w.ship.Pos, SizeSmall))

	ticks := 0
	for loop.Tick(idle()) {
		ticks++
		if ticks > 1000 {
			t.Fatal("Expected the loop to stop after game over")
		}
	}

	if loop.State() != StateGameOver {
		t.Errorf("Expected game-over state, got %v", loop.State())
	}
	if listener.gameOvers != 1 {
		t.Errorf("Expected one game-over request, got %d", listener.gameOvers)
	}
	if audio.musicStops != 1 {
		t.Errorf("Expected music stopped, got %d", audio.musicStops)
	}
	expected := w.runtime.TicksFor(w.cfg.Timing.GameOverDelayMs)
	if ticks != expected {
		t.Errorf("Expected %d ticks before stopping, got %d", expected, ticks)
	}
}

func TestLoopSetRuntimeResizes(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	loop.SetState(StatePlaying)

	loop.SetRuntime(core.RuntimeConfig{Width: 300, Height: 200, TickRate: 60, Seed: 1})

	if w, h := loop.World().Bounds(); w != 300 || h != 200 {
		t.Errorf("Expected bounds 300x200, got %vx%v", w, h)
	}
}
