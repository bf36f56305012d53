// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroid field.
package config

// AsteroidsConfig contains every tunable of the asteroid field simulation
// plus the settings of its collaborators (audio, terminal host, narrative).
type AsteroidsConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Particles  ParticleConfig   `yaml:"particles"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Waves      WaveConfig       `yaml:"waves"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Audio      AudioConfig      `yaml:"audio"`
	TUI        TUIConfig        `yaml:"tui"`
	Narrative  NarrativeConfig  `yaml:"narrative"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShipConfig defines the player craft. Speeds are per tick.
type ShipConfig struct {
	Radius             float64 `yaml:"radius"`
	TurnSpeed          float64 `yaml:"turn_speed"` // Radians per tick while a turn key is held
	Thrust             float64 `yaml:"thrust"`
	Friction           float64 `yaml:"friction"` // Velocity multiplier applied every tick
	MaxSpeed           float64 `yaml:"max_speed"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
	CollisionMargin    float64 `yaml:"collision_margin"` // Forgiveness subtracted from ship-vs-asteroid radii
	StartLives         int     `yaml:"start_lives"`
	MaxLives           int     `yaml:"max_lives"`
}

// AsteroidConfig defines hazard generation.
type AsteroidConfig struct {
	BaseRadius         float64     `yaml:"base_radius"` // Radius per size class
	BaseSpeed          float64     `yaml:"base_speed"`  // Divided by size class
	MinSpeedFactor     float64     `yaml:"min_speed_factor"`
	FragmentSpeedBoost float64     `yaml:"fragment_speed_boost"`
	MinVertices        int         `yaml:"min_vertices"`
	MaxVertices        int         `yaml:"max_vertices"`
	Jitter             float64     `yaml:"jitter"` // Outline radius perturbation, fraction of radius
	SafeZoneRadius     float64     `yaml:"safe_zone_radius"`
	Weights            SizeWeights `yaml:"weights"`
}

// SizeWeights drives the weighted size-class draw.
// Chances are checked largest first; whatever remains is small.
type SizeWeights struct {
	MassiveChance     float64 `yaml:"massive_chance"`
	MassiveBonus      float64 `yaml:"massive_bonus"`       // Added once score reaches MassiveBonusScore
	MassiveBonusScore int     `yaml:"massive_bonus_score"` // Score gate for the bonus
	LargeChance       float64 `yaml:"large_chance"`        // At difficulty level 0
	LargeChanceMax    float64 `yaml:"large_chance_max"`    // At difficulty level 1
	MediumChance      float64 `yaml:"medium_chance"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	SpreadAngleDeg float64 `yaml:"spread_angle_deg"`
	SpreadAmmo     int     `yaml:"spread_ammo"` // Ammo granted by one spread pickup
}

// ParticleConfig defines cosmetic bursts.
type ParticleConfig struct {
	Radius        float64 `yaml:"radius"`
	DebrisPerSize int     `yaml:"debris_per_size"`
	DeathBurst    int     `yaml:"death_burst"`
	CollectBurst  int     `yaml:"collect_burst"`
	MinLife       int     `yaml:"min_life"`
	MaxLife       int     `yaml:"max_life"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
}

// PowerupConfig defines timed pickups.
type PowerupConfig struct {
	Radius          float64 `yaml:"radius"`
	Lifetime        int     `yaml:"lifetime"` // Frames before an uncollected powerup expires
	Margin          float64 `yaml:"margin"`   // Inset from world edges for spawn positions
	OfferIntervalMs int     `yaml:"offer_interval_ms"`
	LifeColor       string  `yaml:"life_color"`
	SpreadColor     string  `yaml:"spread_color"`
}

// WaveConfig defines wave progression.
type WaveConfig struct {
	BaseCount     int `yaml:"base_count"`
	ScorePerExtra int `yaml:"score_per_extra"` // One extra asteroid per this many points
	LifeEvery     int `yaml:"life_every"`      // Life powerup on every Nth wave
}

// TimingConfig defines deferred actions in milliseconds of simulation time.
type TimingConfig struct {
	RespawnDelayMs  int `yaml:"respawn_delay_ms"`
	GameOverDelayMs int `yaml:"game_over_delay_ms"`
}

// ScoringConfig defines points per destroyed asteroid by size class.
type ScoringConfig struct {
	Small   int `yaml:"small"`
	Medium  int `yaml:"medium"`
	Large   int `yaml:"large"`
	Massive int `yaml:"massive"`
}

// AudioConfig defines the sound collaborator.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Music        bool    `yaml:"music"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `yaml:"sample_rate"`
}

// TUIConfig defines how the terminal host maps world units to cells.
type TUIConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
	KeyHoldMs  int     `yaml:"key_hold_ms"` // How long a key counts as held after its last repeat
}

// NarrativeConfig holds flavor text tables.
type NarrativeConfig struct {
	Briefings  []string         `yaml:"briefings"`
	Commentary []CommentaryLine `yaml:"commentary"`
}

// CommentaryLine is shown once the final score reaches MinScore.
type CommentaryLine struct {
	MinScore int    `yaml:"min_score"`
	Text     string `yaml:"text"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to asteroid speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ship.StartLives = 5
		cfg.Ship.InvulnerableFrames += cfg.Ship.InvulnerableFrames / 2
	case DifficultyHard:
		cfg.Ship.StartLives = 2
		cfg.Waves.BaseCount++
	}
}
