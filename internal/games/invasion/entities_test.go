package invasion

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func testSettings() config.Settings {
	return config.NewSettings(config.DefaultInvasionConfig(), 80, 24)
}

func TestMovementFlags(t *testing.T) {
	m := Idle
	if m.Has(MovingLeft) || m.Has(MovingRight) {
		t.Error("Idle should have no direction")
	}

	m |= MovingLeft | MovingRight
	if !m.Has(MovingLeft) || !m.Has(MovingRight) {
		t.Error("Both directions should be set")
	}

	m &^= MovingLeft
	if m.Has(MovingLeft) || !m.Has(MovingRight) {
		t.Error("Clearing left should keep right")
	}
}

func TestNewShipCentered(t *testing.T) {
	s := testSettings()
	ship := NewShip(s)

	if ship.Rect.X != 37 || ship.Rect.Y != 22 {
		t.Errorf("Ship at (%d,%d), expected (37,22)", ship.Rect.X, ship.Rect.Y)
	}
	if ship.Rect.W != 5 || ship.Rect.H != 2 {
		t.Errorf("Ship size %dx%d, expected 5x2", ship.Rect.W, ship.Rect.H)
	}
	if ship.Movement != Idle {
		t.Error("New ship should be idle")
	}
}

func TestShipSubCellMotion(t *testing.T) {
	s := testSettings()
	s.ShipSpeed = 0.25
	ship := NewShip(s)
	ship.Movement = MovingLeft

	ship.Update(s)
	if ship.Rect.X != 36 {
		t.Errorf("Ship X = %d after a quarter step left, expected 36", ship.Rect.X)
	}
	for range 3 {
		ship.Update(s)
	}
	if ship.Rect.X != 36 || ship.X != 36 {
		t.Errorf("Ship X = %d (%v), expected 36", ship.Rect.X, ship.X)
	}
}

func TestNewBullet(t *testing.T) {
	s := testSettings()
	ship := NewShip(s)
	b := NewBullet(s, ship)

	if b.Rect.X != ship.Rect.CenterX() {
		t.Errorf("Bullet X = %d, expected ship center %d", b.Rect.X, ship.Rect.CenterX())
	}
	if b.Rect.Bottom() != ship.Rect.Y {
		t.Errorf("Bullet should sit on top of the ship, bottom=%d ship top=%d", b.Rect.Bottom(), ship.Rect.Y)
	}

	b.Update(s)
	if b.Y != 20.5 || b.Rect.Y != 20 {
		t.Errorf("Bullet after one update: Y=%v row=%d", b.Y, b.Rect.Y)
	}
}

func TestBulletSwept(t *testing.T) {
	s := testSettings()

	tests := []struct {
		name    string
		speed   float64
		startY  float64
		expectY int
		expectH int
	}{
		{"slow, same row", 0.5, 10.5, 10, 1},
		{"slow, next row", 0.5, 10, 9, 2},
		{"one row", 1, 10, 9, 2},
		{"skips a row", 2.2, 10, 7, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.BulletSpeed = tt.speed
			b := Bullet{Y: tt.startY, Rect: core.NewRect(3, core.ToCell(tt.startY), 1, 1)}
			b.Update(s)

			got := b.Swept()
			if got.Y != tt.expectY || got.H != tt.expectH {
				t.Errorf("Swept() = y %d h %d, expected y %d h %d", got.Y, got.H, tt.expectY, tt.expectH)
			}
			if got.Bottom() != core.ToCell(tt.startY)+1 {
				t.Errorf("Swept bottom = %d, expected the previous bottom %d", got.Bottom(), core.ToCell(tt.startY)+1)
			}
		})
	}

	fresh := Bullet{Rect: core.NewRect(3, 4, 1, 1)}
	if fresh.Swept() != fresh.Rect {
		t.Errorf("Swept() before any update = %v, expected %v", fresh.Swept(), fresh.Rect)
	}
}

func TestBulletOffScreen(t *testing.T) {
	tests := []struct {
		y   int
		off bool
	}{
		{5, false},
		{0, false},
		{-1, true},
		{-4, true},
	}
	for _, tt := range tests {
		b := Bullet{Rect: core.NewRect(0, tt.y, 1, 1)}
		if b.OffScreen() != tt.off {
			t.Errorf("OffScreen() at y=%d = %v, expected %v", tt.y, b.OffScreen(), tt.off)
		}
	}
}

func TestAlienAtEdge(t *testing.T) {
	s := testSettings()

	tests := []struct {
		name string
		x    int
		dir  int
		edge bool
	}{
		{"right edge heading right", 77, 1, true},
		{"right edge heading left", 77, -1, false},
		{"left edge heading left", 0, -1, true},
		{"left edge heading right", 0, 1, false},
		{"middle", 40, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.FleetDirection = tt.dir
			a := NewAlien(s, tt.x, 5)
			if a.AtEdge(s) != tt.edge {
				t.Errorf("AtEdge() = %v, expected %v", a.AtEdge(s), tt.edge)
			}
		})
	}
}

func TestAlienUpdate(t *testing.T) {
	s := testSettings()
	s.AlienSpeed = 0.5
	a := NewAlien(s, 10, 5)

	a.Update(s)
	a.Update(s)
	if a.Rect.X != 11 {
		t.Errorf("Alien X = %d, expected 11", a.Rect.X)
	}

	s.FleetDirection = -1
	for range 4 {
		a.Update(s)
	}
	if a.Rect.X != 9 {
		t.Errorf("Alien X = %d, expected 9", a.Rect.X)
	}
}
