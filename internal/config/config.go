// Package config provides YAML-based game configuration loading and
// difficulty presets for Alien Invasion.
package config

// InvasionConfig contains all tunables for the Alien Invasion game.
type InvasionConfig struct {
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Alien    AlienConfig    `yaml:"alien"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Speed    SpeedConfig    `yaml:"speed"`
	Scaling  ScalingConfig  `yaml:"scaling"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Button   ButtonConfig   `yaml:"button"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
	Limit  int    `yaml:"limit"` // Lives per game
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Color   string `yaml:"color"`
	Allowed int    `yaml:"allowed"` // Max bullets on screen at once
}

// AlienConfig defines a single fleet member.
type AlienConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
	Points int    `yaml:"points"` // Score per alien on level 1
}

// FleetConfig defines fleet movement.
type FleetConfig struct {
	DropSpeed int `yaml:"drop_speed"` // Rows dropped on edge contact
}

// SpeedConfig defines level-1 speeds in cells per tick.
type SpeedConfig struct {
	Ship   float64 `yaml:"ship"`
	Bullet float64 `yaml:"bullet"`
	Alien  float64 `yaml:"alien"`
}

// ScalingConfig defines how each cleared wave raises the stakes.
type ScalingConfig struct {
	Enabled bool    `yaml:"enabled"` // false freezes speeds at level 1
	Speedup float64 `yaml:"speedup"` // Speed multiplier per level
	Score   float64 `yaml:"score"`   // Alien points multiplier per level
}

// GameplayConfig holds the remaining game rules.
type GameplayConfig struct {
	RespawnDelayMS int    `yaml:"respawn_delay_ms"`
	Background     string `yaml:"background"`
}

// ButtonConfig defines the start button.
type ButtonConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Label     string `yaml:"label"`
	Color     string `yaml:"color"`
	TextColor string `yaml:"text_color"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty or unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
