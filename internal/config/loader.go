package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and keys.
const AppDir = ".invaders"

// LoadInvasion loads the Alien Invasion configuration.
// Search order: customPath -> ~/.invaders/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default
func LoadInvasion(customPath string) (InvasionConfig, error) {
	// A custom path must load; silently falling back would hide typos
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return DefaultInvasionConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("configs", "invasion.yaml"); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseFile(filepath.Join("configs", "invasion.yaml")); err == nil {
		return cfg, nil
	}

	cfg, err := parse(defaultInvasionYAML)
	if err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads and parses a YAML config file on top of the defaults,
// so a partial file only overrides the keys it names.
func parseFile(path string) (InvasionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that sizes, limits and speeds are usable.
func (c InvasionConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("ship.width", c.Ship.Width)
	positive("ship.height", c.Ship.Height)
	positive("ship.limit", c.Ship.Limit)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.allowed", c.Bullet.Allowed)
	positive("alien.width", c.Alien.Width)
	positive("alien.height", c.Alien.Height)
	positive("button.width", c.Button.Width)
	positive("button.height", c.Button.Height)

	if c.Alien.Points < 0 {
		errs = append(errs, fmt.Errorf("alien.points must not be negative, got %d", c.Alien.Points))
	}
	if c.Fleet.DropSpeed < 0 {
		errs = append(errs, fmt.Errorf("fleet.drop_speed must not be negative, got %d", c.Fleet.DropSpeed))
	}
	if c.Speed.Ship <= 0 || c.Speed.Bullet <= 0 || c.Speed.Alien <= 0 {
		errs = append(errs, errors.New("speed values must be positive"))
	}
	if c.Scaling.Speedup < 1 || c.Scaling.Score < 1 {
		errs = append(errs, errors.New("scaling factors must be at least 1"))
	}
	if c.Gameplay.RespawnDelayMS < 0 {
		errs = append(errs, fmt.Errorf("gameplay.respawn_delay_ms must not be negative, got %d", c.Gameplay.RespawnDelayMS))
	}

	return errors.Join(errs...)
}

// UserPath returns a path under ~/.invaders, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ApplyInvasionPreset modifies the config based on a difficulty preset.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed = 5
		cfg.Speed.Alien *= 0.75
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Bullet.Allowed = 2
		cfg.Speed.Alien *= 1.5
	case DifficultyFixed:
		cfg.Scaling.Enabled = false
	}
}
