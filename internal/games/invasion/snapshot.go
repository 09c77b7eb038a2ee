package invasion

import "math"

// Snapshot is a flat copy of the game state used to compare runs.
type Snapshot struct {
	Tick      uint64
	State     int
	Paused    bool
	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Respawn   int

	ShipX        int
	ShipMovement int
	Direction    int
	AlienSpeed   uint64 // IEEE-754 bits
	AlienPoints  int

	// Each bullet is 2 ints: X, Y
	BulletData []int
	// Each alien is 2 ints: X, Y
	AlienData []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	bulletData := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, b.Rect.X, b.Rect.Y)
	}

	alienData := make([]int, 0, len(g.aliens)*2)
	for _, a := range g.aliens {
		alienData = append(alienData, a.Rect.X, a.Rect.Y)
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     int(g.state),
		Paused:    g.paused,
		Score:     g.stats.Score,
		HighScore: g.stats.HighScore,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		Respawn:   g.respawnTicks,

		ShipX:        g.ship.Rect.X,
		ShipMovement: int(g.ship.Movement),
		Direction:    g.settings.FleetDirection,
		AlienSpeed:   math.Float64bits(g.settings.AlienSpeed),
		AlienPoints:  g.settings.AlienPoints,

		BulletData: bulletData,
		AlienData:  alienData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Respawn)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipMovement) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)    //#nosec G115 -- hash computation
	h = h*31 + snap.AlienSpeed
	h = h*31 + uint64(snap.AlienPoints) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
