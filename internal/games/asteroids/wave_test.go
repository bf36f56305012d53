package asteroids

import (
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/config"
)

func TestWaveAdvance(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wave      int
		asteroids int
		lifeDrop  bool
	}{
		{"first clear", 0, 1, 5, false},
		{"just below bonus", 799, 2, 5, false},
		{"one bonus", 800, 2, 6, false},
		{"fifth wave", 4000, 4, 10, true},
		{"tenth wave", 1700, 9, 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, listener := newTestWorld(t)
			w.asteroids = nil
			w.score = tc.score
			w.wave = tc.wave

			w.Step(idle())

			if w.wave != tc.wave+1 {
				t.Errorf("Expected wave %d, got %d", tc.wave+1, w.wave)
			}
			if last(listener.waves) != tc.wave+1 {
				t.Errorf("Expected WaveChanged(%d), got %v", tc.wave+1, listener.waves)
			}
			if len(w.asteroids) != tc.asteroids {
				t.Errorf("Expected %d asteroids, got %d", tc.asteroids, len(w.asteroids))
			}

			lives := 0
			for _, p := range w.powerups {
				if p.Type == PowerupLife {
					lives++
				}
			}
			if tc.lifeDrop && lives != 1 {
				t.Errorf("Expected exactly one life powerup, got %d", lives)
			}
			if !tc.lifeDrop && lives != 0 {
				t.Errorf("Expected no life powerup, got %d", lives)
			}
		})
	}
}

func TestWaveNotAdvancedWhileAsteroidsRemain(t *testing.T) {
	w, _, listener := newTestWorld(t)

	w.Step(idle())

	if w.wave != 1 || len(listener.waves) != 0 {
		t.Errorf("Expected wave 1 unchanged, got %d (notified %v)", w.wave, listener.waves)
	}
}

func TestSpreadOfferSkippedWhenPresent(t *testing.T) {
	w, audio, _ := newTestWorld(t)

	w.offerSpread()
	w.offerSpread()

	if len(w.powerups) != 1 || w.powerups[0].Type != PowerupSpread {
		t.Fatalf("Expected a single spread powerup, got %+v", w.powerups)
	}
	if audio.spawned != 1 {
		t.Errorf("Expected one spawn sound, got %d", audio.spawned)
	}

	w.powerups = w.powerups[:0]
	w.SpawnPowerup(PowerupLife)
	w.offerSpread()
	if len(w.powerups) != 2 {
		t.Errorf("Expected a life powerup not to block the offer, got %d powerups", len(w.powerups))
	}
}

func TestBonusTimer(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Powerups.OfferIntervalMs = 100
	w, audio, _ := newTestWorldWith(t, cfg)
	w.ship.Invulnerable = 1000
	interval := w.runtime.TicksFor(100)

	w.StartBonusTimer()
	w.StartBonusTimer()
	for range interval {
		w.Step(idle())
	}
	if audio.spawned != 1 {
		t.Fatalf("Expected one offer after %d ticks, got %d", interval, audio.spawned)
	}

	w.StopBonusTimer()
	w.powerups = w.powerups[:0]
	for range interval * 3 {
		w.Step(idle())
	}
	if audio.spawned != 1 {
		t.Errorf("Expected no offers after the timer stopped, got %d", audio.spawned)
	}
}
