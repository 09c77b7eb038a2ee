package invasion

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Movement is the ship's steering intent. Both bits may be set at once,
// in which case the two moves cancel out.
type Movement uint8

const (
	MovingLeft Movement = 1 << iota
	MovingRight

	Idle Movement = 0
)

// Has reports whether the given direction is set.
func (m Movement) Has(dir Movement) bool {
	return m&dir != 0
}

// ShipGlyph is the ship sprite, one string per row. Rows are padded or
// truncated to the configured ship size when drawn.
var ShipGlyph = []string{
	"  ▲  ",
	"◢███◣",
}

// AlienGlyph is the alien sprite, one string per row.
var AlienGlyph = []string{
	"<@>",
	"/ \\",
}

// BulletGlyph fills each bullet cell.
const BulletGlyph = '║'

// Ship is the player's ship. There is exactly one per game; it is
// repositioned, never recreated.
type Ship struct {
	X        float64 // Left edge with sub-cell precision
	Rect     core.Rect
	Movement Movement
}

// NewShip creates a ship centered at the bottom of the screen.
func NewShip(s config.Settings) *Ship {
	ship := &Ship{Rect: core.NewRect(0, 0, s.ShipW, s.ShipH)}
	ship.Center(s)
	return ship
}

// Center places the ship at the bottom center of the screen.
func (sh *Ship) Center(s config.Settings) {
	sh.Rect.X = (s.ScreenW - sh.Rect.W) / 2
	sh.Rect.Y = s.ScreenH - sh.Rect.H
	sh.X = float64(sh.Rect.X)
}

// Update moves the ship according to its movement intent.
// The ship only moves toward an edge it has not yet reached.
func (sh *Ship) Update(s config.Settings) {
	if sh.Movement.Has(MovingRight) && sh.Rect.Right() < s.ScreenW {
		sh.X += s.ShipSpeed
	}
	if sh.Movement.Has(MovingLeft) && sh.Rect.X > 0 {
		sh.X -= s.ShipSpeed
	}

	maxX := float64(max(s.ScreenW-sh.Rect.W, 0))
	sh.X = core.ClampF(sh.X, 0, maxX)
	sh.Rect.X = core.ToCell(sh.X)
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	Y     float64 // Top edge with sub-cell precision
	Rect  core.Rect
	trail int // Rows crossed by the last update
}

// NewBullet creates a bullet at the ship's mid-top.
func NewBullet(s config.Settings, ship *Ship) Bullet {
	r := core.NewRect(ship.Rect.CenterX()-s.BulletW/2, ship.Rect.Y-s.BulletH, s.BulletW, s.BulletH)
	return Bullet{Y: float64(r.Y), Rect: r}
}

// Update moves the bullet up by the current bullet speed.
func (b *Bullet) Update(s config.Settings) {
	prev := b.Rect.Y
	b.Y -= s.BulletSpeed
	b.Rect.Y = core.ToCell(b.Y)
	b.trail = max(prev-b.Rect.Y, 0)
}

// Swept returns the cells covered by the bullet during its last update, from
// its new top down to its previous bottom. At speeds above one cell per tick
// the bullet skips rows, so hits are tested against this rect.
func (b Bullet) Swept() core.Rect {
	r := b.Rect
	r.H += b.trail
	return r
}

// OffScreen reports whether the bullet has left the top of the screen.
func (b Bullet) OffScreen() bool {
	return b.Rect.Bottom() <= 0
}

// Alien is one member of the fleet.
type Alien struct {
	X    float64 // Left edge with sub-cell precision
	Rect core.Rect
}

// NewAlien creates an alien with its top-left corner at the given cell.
func NewAlien(s config.Settings, x, y int) Alien {
	return Alien{X: float64(x), Rect: core.NewRect(x, y, s.AlienW, s.AlienH)}
}

// Update moves the alien horizontally in the fleet direction.
func (a *Alien) Update(s config.Settings) {
	a.X += s.AlienSpeed * float64(s.FleetDirection)
	a.Rect.X = core.ToCell(a.X)
}

// AtEdge reports whether the alien touches the screen edge it is moving toward.
func (a Alien) AtEdge(s config.Settings) bool {
	if s.FleetDirection > 0 {
		return a.Rect.Right() >= s.ScreenW
	}
	return a.Rect.X <= 0
}
