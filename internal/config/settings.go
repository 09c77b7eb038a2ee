package config

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Dynamic holds the settings that change as the game progresses.
type Dynamic struct {
	ShipSpeed      float64 // Cells per tick
	BulletSpeed    float64 // Cells per tick
	AlienSpeed     float64 // Cells per tick
	FleetDirection int     // +1 right, -1 left
	AlienPoints    int
}

// Settings is the resolved configuration owned by one game instance.
// It is a plain value: InitializeDynamic and IncreaseSpeed return new copies.
type Settings struct {
	ScreenW, ScreenH int
	Background       core.Color

	ShipW, ShipH int
	ShipColor    core.Color
	ShipLimit    int

	BulletW, BulletH int
	BulletColor      core.Color
	BulletsAllowed   int

	AlienW, AlienH int
	AlienColor     core.Color

	FleetDropSpeed int

	Progression  bool
	SpeedupScale float64
	ScoreScale   float64
	RespawnDelay time.Duration

	ButtonW, ButtonH int
	ButtonLabel      string
	ButtonColor      core.Color
	ButtonTextColor  core.Color

	Dynamic

	initial Dynamic
}

// NewSettings resolves a config against the given screen size.
// Dynamic values start initialized.
func NewSettings(cfg InvasionConfig, screenW, screenH int) Settings {
	color := func(name string, fallback core.Color) core.Color {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
		return fallback
	}

	s := Settings{
		ScreenW:    screenW,
		ScreenH:    screenH,
		Background: color(cfg.Gameplay.Background, core.ColorDefault),

		ShipW:     cfg.Ship.Width,
		ShipH:     cfg.Ship.Height,
		ShipColor: color(cfg.Ship.Color, core.ColorBrightCyan),
		ShipLimit: cfg.Ship.Limit,

		BulletW:        cfg.Bullet.Width,
		BulletH:        cfg.Bullet.Height,
		BulletColor:    color(cfg.Bullet.Color, core.ColorBrightYellow),
		BulletsAllowed: cfg.Bullet.Allowed,

		AlienW:     cfg.Alien.Width,
		AlienH:     cfg.Alien.Height,
		AlienColor: color(cfg.Alien.Color, core.ColorBrightGreen),

		FleetDropSpeed: cfg.Fleet.DropSpeed,

		Progression:  cfg.Scaling.Enabled,
		SpeedupScale: cfg.Scaling.Speedup,
		ScoreScale:   cfg.Scaling.Score,
		RespawnDelay: time.Duration(cfg.Gameplay.RespawnDelayMS) * time.Millisecond,

		ButtonW:         cfg.Button.Width,
		ButtonH:         cfg.Button.Height,
		ButtonLabel:     cfg.Button.Label,
		ButtonColor:     color(cfg.Button.Color, core.ColorGreen),
		ButtonTextColor: color(cfg.Button.TextColor, core.ColorBrightWhite),

		initial: Dynamic{
			ShipSpeed:      cfg.Speed.Ship,
			BulletSpeed:    cfg.Speed.Bullet,
			AlienSpeed:     cfg.Speed.Alien,
			FleetDirection: 1,
			AlienPoints:    cfg.Alien.Points,
		},
	}
	return s.InitializeDynamic()
}

// InitializeDynamic returns a copy with the dynamic values reset for a new game.
func (s Settings) InitializeDynamic() Settings {
	s.Dynamic = s.initial
	return s
}

// IncreaseSpeed returns a copy tuned for the next level: faster entities and
// more valuable aliens. With progression disabled only the points scale.
func (s Settings) IncreaseSpeed() Settings {
	if s.Progression {
		s.ShipSpeed *= s.SpeedupScale
		s.BulletSpeed *= s.SpeedupScale
		s.AlienSpeed *= s.SpeedupScale
	}
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
	return s
}

// RespawnTicks converts the respawn delay to simulation ticks at the given rate.
func (s Settings) RespawnTicks(tickRate int) int {
	if s.RespawnDelay <= 0 || tickRate <= 0 {
		return 0
	}
	ticks := int(math.Round(s.RespawnDelay.Seconds() * float64(tickRate)))
	return max(ticks, 1)
}
