// Package audio turns simulation sound events into synthesized audio.
// A missing or broken audio device degrades to silence and never reaches
// the simulation.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
)

const defaultSampleRate = beep.SampleRate(44100)

// speakerBuffer is the device buffer length.
const speakerBuffer = 100 * time.Millisecond

var _ asteroids.Audio = (*Sink)(nil)

// Sink implements asteroids.Audio on a beep mixer.
type Sink struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	music  bool

	mixer       *beep.Mixer
	thrustCtrl  *beep.Ctrl
	musicCtrl   *beep.Ctrl
	enabled     bool // Events are mixed
	device      bool // The mixer is playing on the speaker
	logger      *log.Logger
	thrustState bool
}

// New opens the audio device and returns a sink playing on it.
// When audio is disabled or the device cannot be opened the sink is silent.
func New(cfg config.AudioConfig, logger *log.Logger) *Sink {
	s := newSink(cfg, logger)
	if !s.enabled {
		s.logger.Debug("audio disabled")
		return s
	}

	if err := speaker.Init(s.rate, s.rate.N(speakerBuffer)); err != nil {
		s.logger.Warn("audio device unavailable, continuing without sound", "err", err)
		s.enabled = false
		return s
	}
	speaker.Play(s.mixer)
	s.device = true
	s.logger.Debug("audio started", "rate", int(s.rate), "volume", s.volume)
	return s
}

// newSink builds a sink whose mixer is not attached to any device.
func newSink(cfg config.AudioConfig, logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}
	return &Sink{
		rate:    rate,
		volume:  cfg.MasterVolume,
		music:   cfg.Music,
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled && cfg.MasterVolume > 0,
		logger:  logger,
	}
}

// Enabled reports whether events produce sound.
func (s *Sink) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// withMixer runs fn with exclusive access to the mixer.
// The speaker goroutine reads the mixer, so it is locked too when attached.
func (s *Sink) withMixer(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	if s.device {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (s *Sink) play(st beep.Streamer) {
	s.withMixer(func() {
		s.mixer.Add(newVolume(st, s.volume))
	})
}

func (s *Sink) ShotFired() {
	s.play(shotSound(s.rate))
}

func (s *Sink) Explosion(size asteroids.ExplosionSize) {
	s.play(explosionSound(s.rate, size))
}

func (s *Sink) PowerupSpawned() {
	s.play(powerupSpawnSound(s.rate))
}

func (s *Sink) PowerupCollected() {
	s.play(collectSound(s.rate))
}

func (s *Sink) GameOver() {
	s.play(gameOverSound(s.rate))
}

// Thrust is called every tick; only changes touch the mixer.
func (s *Sink) Thrust(on bool) {
	s.withMixer(func() {
		if on == s.thrustState {
			return
		}
		s.thrustState = on
		if s.thrustCtrl == nil {
			s.thrustCtrl = &beep.Ctrl{Streamer: thrustLoop(s.rate), Paused: true}
			s.mixer.Add(newVolume(s.thrustCtrl, s.volume))
		}
		s.thrustCtrl.Paused = !on
	})
}

func (s *Sink) StartMusic() {
	if !s.music {
		return
	}
	s.withMixer(func() {
		if s.musicCtrl == nil {
			s.musicCtrl = &beep.Ctrl{Streamer: newBassline(s.rate)}
			s.mixer.Add(newVolume(s.musicCtrl, s.volume))
		}
		s.musicCtrl.Paused = false
	})
}

func (s *Sink) StopMusic() {
	s.withMixer(func() {
		if s.musicCtrl != nil {
			s.musicCtrl.Paused = true
		}
	})
}

// Close silences and drops every playing sound.
func (s *Sink) Close() {
	s.withMixer(func() {
		if s.thrustCtrl != nil {
			s.thrustCtrl.Paused = true
		}
		if s.musicCtrl != nil {
			s.musicCtrl.Paused = true
		}
		s.mixer.Clear()
		s.thrustCtrl = nil
		s.musicCtrl = nil
		s.thrustState = false
	})
	s.mu.Lock()
	s.enabled = false
	s.mu.Unlock()
}
