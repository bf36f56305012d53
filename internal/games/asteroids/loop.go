package asteroids

import (
	"github.com/vovakirdan/astro-arcade/internal/core"
)

// GameState is the top-level UI state observed by the frame loop.
type GameState string

const (
	StateMenu          GameState = "menu"
	StatePlaying       GameState = "playing"
	StatePaused        GameState = "paused"
	StateGameOver      GameState = "game_over"
	StateAIInteraction GameState = "ai_interaction" // Briefing or commentary overlay
)

// Loop drives a World from the host's frame ticks, gated by the game state.
type Loop struct {
	world   *World
	runtime core.RuntimeConfig
	state   GameState
}

// NewLoop creates a loop in the menu state. runtime seeds every fresh run.
func NewLoop(world *World, runtime core.RuntimeConfig) *Loop {
	return &Loop{world: world, runtime: runtime, state: StateMenu}
}

// World returns the driven world.
func (l *Loop) World() *World {
	return l.world
}

// State returns the current game state.
func (l *Loop) State() GameState {
	return l.state
}

// SetRuntime replaces the runtime used by the next fresh run and resizes
// the current world to its bounds.
func (l *Loop) SetRuntime(runtime core.RuntimeConfig) {
	l.runtime = runtime
	l.world.SetBounds(runtime.Width, runtime.Height)
}

// SetState moves to state s. Entering playing from anything but paused
// starts a fresh run; leaving playing silences the ship and music and
// tears down the bonus timer.
func (l *Loop) SetState(s GameState) {
	prev := l.state
	if s == prev {
		return
	}
	l.state = s

	if prev == StatePlaying {
		l.world.StopBonusTimer()
		l.world.ship.Thrusting = false
		l.world.audio.Thrust(false)
		l.world.audio.StopMusic()
	}

	if s == StatePlaying {
		if prev != StatePaused {
			l.world.Reset(l.runtime)
		}
		l.world.StartBonusTimer()
		l.world.audio.StartMusic()
	}

	l.world.logger.Debug("state changed", "from", prev, "to", s, "run", l.world.run)
}

// Tick runs one simulation step while playing. It returns whether the host
// should schedule another tick.
func (l *Loop) Tick(in core.InputFrame) bool {
	if l.state != StatePlaying {
		return false
	}
	l.world.Step(in)
	return l.state == StatePlaying
}

// Snapshot returns a copy of the world for rendering.
func (l *Loop) Snapshot() Snapshot {
	return l.world.Snapshot()
}
