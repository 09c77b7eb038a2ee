package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the built-in Alien Invasion configuration.
// It mirrors defaults/invasion.yaml and is the fallback when that fails to parse.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Ship: ShipConfig{
			Width:  5,
			Height: 2,
			Color:  "bright_cyan",
			Limit:  3,
		},
		Bullet: BulletConfig{
			Width:   1,
			Height:  1,
			Color:   "bright_yellow",
			Allowed: 3,
		},
		Alien: AlienConfig{
			Width:  3,
			Height: 1,
			Color:  "bright_green",
			Points: 50,
		},
		Fleet: FleetConfig{
			DropSpeed: 1,
		},
		Speed: SpeedConfig{
			Ship:   0.6,
			Bullet: 0.5,
			Alien:  0.04,
		},
		Scaling: ScalingConfig{
			Enabled: true,
			Speedup: 1.1,
			Score:   1.5,
		},
		Gameplay: GameplayConfig{
			RespawnDelayMS: 500,
			Background:     "default",
		},
		Button: ButtonConfig{
			Width:     12,
			Height:    3,
			Label:     "Play",
			Color:     "green",
			TextColor: "bright_white",
		},
	}
}
