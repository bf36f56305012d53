package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "asteroids.yaml"

// LoadAsteroids loads the asteroid field configuration.
// Search order: customPath -> ~/.astro/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files only override the keys they set; everything else keeps the embedded
// defaults. An explicit customPath that cannot be read, parsed or validated is
// an error; broken files on the search path are skipped.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefaults(), nil
}

// Parse validates a YAML document against the config schema and decodes it
// over the embedded defaults.
func Parse(data []byte) (AsteroidsConfig, error) {
	if err := ValidateYAML(data); err != nil {
		return AsteroidsConfig{}, err
	}

	cfg := embeddedDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// embeddedDefaults decodes the embedded YAML, falling back to the hard-coded
// defaults if the embed is unusable.
func embeddedDefaults() AsteroidsConfig {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig()
	}
	return cfg
}

// Check validates cross-field constraints the schema cannot express.
func (c AsteroidsConfig) Check() error {
	var errs []error

	if c.Asteroids.MinVertices > c.Asteroids.MaxVertices {
		errs = append(errs, fmt.Errorf("asteroids.min_vertices (%d) exceeds max_vertices (%d)",
			c.Asteroids.MinVertices, c.Asteroids.MaxVertices))
	}
	if c.Particles.MinLife > c.Particles.MaxLife {
		errs = append(errs, fmt.Errorf("particles.min_life (%d) exceeds max_life (%d)",
			c.Particles.MinLife, c.Particles.MaxLife))
	}
	if c.Particles.MinSpeed > c.Particles.MaxSpeed {
		errs = append(errs, fmt.Errorf("particles.min_speed (%g) exceeds max_speed (%g)",
			c.Particles.MinSpeed, c.Particles.MaxSpeed))
	}
	if c.Ship.StartLives > c.Ship.MaxLives {
		errs = append(errs, fmt.Errorf("ship.start_lives (%d) exceeds max_lives (%d)",
			c.Ship.StartLives, c.Ship.MaxLives))
	}
	w := c.Asteroids.Weights
	if top := w.MassiveChance + w.MassiveBonus + w.LargeChanceMax + w.MediumChance; top > 1+1e-9 {
		errs = append(errs, fmt.Errorf("asteroids.weights: chances sum to %.2f at max difficulty, must not exceed 1", top))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astro", "configs", filename)
}
