package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/asteroids.schema.json
var asteroidsSchemaJSON string

// DefaultAsteroidsConfig returns the hard-coded asteroid field configuration.
// It mirrors defaults/asteroids.yaml and is the fallback when no YAML decodes.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			Radius:             10,
			TurnSpeed:          0.1,
			Thrust:             0.15,
			Friction:           0.99,
			MaxSpeed:           7,
			InvulnerableFrames: 120,
			CollisionMargin:    4,
			StartLives:         3,
			MaxLives:           5,
		},
		Asteroids: AsteroidConfig{
			BaseRadius:         12,
			BaseSpeed:          1.6,
			MinSpeedFactor:     0.5,
			FragmentSpeedBoost: 1.5,
			MinVertices:        8,
			MaxVertices:        12,
			Jitter:             0.2,
			SafeZoneRadius:     150,
			Weights: SizeWeights{
				MassiveChance:     0.05,
				MassiveBonus:      0.15,
				MassiveBonusScore: 2000,
				LargeChance:       0.30,
				LargeChanceMax:    0.45,
				MediumChance:      0.30,
			},
		},
		Bullets: BulletConfig{
			Speed:          8,
			Radius:         2,
			SpreadAngleDeg: 25,
			SpreadAmmo:     10,
		},
		Particles: ParticleConfig{
			Radius:        1,
			DebrisPerSize: 4,
			DeathBurst:    30,
			CollectBurst:  15,
			MinLife:       20,
			MaxLife:       45,
			MinSpeed:      0.5,
			MaxSpeed:      3,
		},
		Powerups: PowerupConfig{
			Radius:          12,
			Lifetime:        600, // 10 seconds
			Margin:          60,
			OfferIntervalMs: 15000,
			LifeColor:       "bright_green",
			SpreadColor:     "bright_magenta",
		},
		Waves: WaveConfig{
			BaseCount:     5,
			ScorePerExtra: 800,
			LifeEvery:     5,
		},
		Timing: TimingConfig{
			RespawnDelayMs:  1500,
			GameOverDelayMs: 2000,
		},
		Scoring: ScoringConfig{
			Small:   100,
			Medium:  50,
			Large:   20,
			Massive: 15,
		},
		Audio: AudioConfig{
			Enabled:      true,
			Music:        true,
			MasterVolume: 0.6,
			SampleRate:   44100,
		},
		TUI: TUIConfig{
			CellWidth:  10,
			CellHeight: 20,
			KeyHoldMs:  140,
		},
		Narrative: NarrativeConfig{
			Briefings: []string{
				"Sector clear of traffic. Rocks inbound. Keep the hull in one piece.",
			},
			Commentary: []CommentaryLine{
				{MinScore: 0, Text: "The rocks won this round."},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
