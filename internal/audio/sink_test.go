package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
)

// drain streams s to completion and returns the sample count.
// It fails if any sample leaves [-1, 1] or the stream never ends.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("stream exceeded %d samples", limit)
		}
	}
}

func TestEffectLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name     string
		streamer beep.Streamer
		length   time.Duration
	}{
		{"shot", shotSound(rate), 90 * time.Millisecond},
		{"small explosion", explosionSound(rate, asteroids.ExplosionSmall), 280 * time.Millisecond},
		{"large explosion", explosionSound(rate, asteroids.ExplosionLarge), 550 * time.Millisecond},
		{"massive explosion", explosionSound(rate, asteroids.ExplosionMassive), 900 * time.Millisecond},
		{"powerup spawned", powerupSpawnSound(rate), 160 * time.Millisecond},
		{"collect", collectSound(rate), 240 * time.Millisecond},
		{"game over", gameOverSound(rate), 920 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := rate.N(tc.length)
			got := drain(t, tc.streamer, want*2)
			// Sequenced notes round each part separately.
			if got < want-3 || got > want+3 {
				t.Errorf("Expected about %d samples, got %d", want, got)
			}
		})
	}
}

func TestExplosionDurationGrowsWithSize(t *testing.T) {
	small := explosionDuration(asteroids.ExplosionSmall)
	large := explosionDuration(asteroids.ExplosionLarge)
	massive := explosionDuration(asteroids.ExplosionMassive)
	if small >= large || large >= massive {
		t.Errorf("Expected small < large < massive, got %v %v %v", small, large, massive)
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(8000)
	buf := make([][2]float64, 64)

	sq := newOscillator(rate, WaveSquare, 440, 440, 0)
	if n, ok := sq.Stream(buf); n != 64 || !ok {
		t.Fatalf("Expected endless square stream, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d = %v", i, s[0])
		}
	}

	noise := newOscillator(rate, WaveNoise, 0, 0, 0)
	noise.Stream(buf)
	distinct := map[float64]bool{}
	for _, s := range buf {
		distinct[s[0]] = true
	}
	if len(distinct) < 32 {
		t.Errorf("Expected varied noise, got %d distinct samples", len(distinct))
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	buf := make([][2]float64, 32)
	newVolume(newOscillator(rate, WaveSquare, 440, 440, 0), 0).Stream(buf)
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, s)
		}
	}
}

func TestSinkMixesEvents(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig().Audio
	s := newSink(cfg, nil)

	s.ShotFired()
	s.Explosion(asteroids.ExplosionLarge)
	s.PowerupSpawned()
	s.PowerupCollected()
	s.GameOver()

	if got := s.mixer.Len(); got != 5 {
		t.Errorf("Expected 5 sounds in the mixer, got %d", got)
	}
}

func TestSinkThrustIsIdempotent(t *testing.T) {
	s := newSink(config.DefaultAsteroidsConfig().Audio, nil)

	s.Thrust(false)
	if s.thrustCtrl != nil {
		t.Fatal("Expected no engine loop before thrust starts")
	}

	for range 5 {
		s.Thrust(true)
	}
	if s.mixer.Len() != 1 {
		t.Errorf("Expected a single engine loop, got %d streamers", s.mixer.Len())
	}
	if s.thrustCtrl.Paused {
		t.Errorf("Expected engine loop playing")
	}

	s.Thrust(false)
	s.Thrust(false)
	if !s.thrustCtrl.Paused {
		t.Errorf("Expected engine loop paused")
	}
	if s.mixer.Len() != 1 {
		t.Errorf("Expected engine loop reused, got %d streamers", s.mixer.Len())
	}
}

func TestSinkMusic(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig().Audio
	s := newSink(cfg, nil)

	s.StartMusic()
	s.StartMusic()
	if s.mixer.Len() != 1 || s.musicCtrl.Paused {
		t.Fatalf("Expected one playing music loop, got %d", s.mixer.Len())
	}
	s.StopMusic()
	if !s.musicCtrl.Paused {
		t.Errorf("Expected music paused")
	}

	cfg.Music = false
	quiet := newSink(cfg, nil)
	quiet.StartMusic()
	if quiet.mixer.Len() != 0 {
		t.Errorf("Expected no music when disabled in config")
	}
}

func TestDisabledSinkIsSilent(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig().Audio
	cfg.Enabled = false
	s := New(cfg, nil)

	s.ShotFired()
	s.Thrust(true)
	s.StartMusic()
	s.StopMusic()
	s.Close()

	if s.Enabled() {
		t.Error("Expected disabled sink")
	}
	if s.mixer.Len() != 0 {
		t.Errorf("Expected nothing mixed, got %d", s.mixer.Len())
	}
}

func TestSinkClose(t *testing.T) {
	s := newSink(config.DefaultAsteroidsConfig().Audio, nil)
	s.Thrust(true)
	s.StartMusic()
	s.ShotFired()

	s.Close()

	if s.mixer.Len() != 0 {
		t.Errorf("Expected mixer cleared, got %d", s.mixer.Len())
	}
	s.ShotFired()
	if s.mixer.Len() != 0 {
		t.Errorf("Expected closed sink to ignore events")
	}
}

func TestBasslineEndless(t *testing.T) {
	b := newBassline(beep.SampleRate(8000))
	buf := make([][2]float64, 4096)
	for range 4 {
		if n, ok := b.Stream(buf); n != len(buf) || !ok {
			t.Fatalf("Expected endless music stream, got n=%d ok=%v", n, ok)
		}
	}
}
