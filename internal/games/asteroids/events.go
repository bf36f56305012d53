package asteroids

// ExplosionSize grades explosion sounds.
type ExplosionSize int

const (
	ExplosionSmall ExplosionSize = iota
	ExplosionLarge
	ExplosionMassive
)

// String returns the name of the explosion size.
func (e ExplosionSize) String() string {
	switch e {
	case ExplosionSmall:
		return "small"
	case ExplosionLarge:
		return "large"
	case ExplosionMassive:
		return "massive"
	default:
		return "unknown"
	}
}

// explosionFor maps an asteroid size class to its explosion sound.
func explosionFor(size SizeClass) ExplosionSize {
	switch size {
	case SizeMassive:
		return ExplosionMassive
	case SizeLarge:
		return ExplosionLarge
	default:
		return ExplosionSmall
	}
}

// Audio receives fire-and-forget sound events from the simulation.
// Implementations must not block and must absorb their own failures.
type Audio interface {
	ShotFired()
	Explosion(size ExplosionSize)
	PowerupSpawned()
	PowerupCollected()
	// Thrust is called every tick with the current engine state.
	Thrust(on bool)
	GameOver()
	StartMusic()
	StopMusic()
}

// Listener receives upward notifications for the HUD and UI state machine.
type Listener interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
	// AccuracyChanged is sent once per run, when the game is over.
	AccuracyChanged(percent int)
	AmmoChanged(ammo int)
	WaveChanged(wave int)
	// RequestGameOver asks the UI to leave the playing state.
	RequestGameOver()
}

// NopAudio discards all sound events.
type NopAudio struct{}

func (NopAudio) ShotFired()              {}
func (NopAudio) Explosion(ExplosionSize) {}
func (NopAudio) PowerupSpawned()         {}
func (NopAudio) PowerupCollected()       {}
func (NopAudio) Thrust(bool)             {}
func (NopAudio) GameOver()               {}
func (NopAudio) StartMusic()             {}
func (NopAudio) StopMusic()              {}

// NopListener discards all notifications.
type NopListener struct{}

func (NopListener) ScoreChanged(int)    {}
func (NopListener) LivesChanged(int)    {}
func (NopListener) AccuracyChanged(int) {}
func (NopListener) AmmoChanged(int)     {}
func (NopListener) WaveChanged(int)     {}
func (NopListener) RequestGameOver()    {}
