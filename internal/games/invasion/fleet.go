package invasion

import "github.com/vovakirdan/tui-invaders/internal/core"

// FleetLayout describes the starting grid of a fleet.
type FleetLayout struct {
	Rows    int
	Cols    int
	Origins []core.Point // Top-left of each alien, row-major
}

// Size returns the number of aliens in the layout.
func (l FleetLayout) Size() int {
	return len(l.Origins)
}

// LayoutFleet computes the starting grid for a screen of screenW×screenH cells.
// Aliens are spaced one alien width (and height) apart, starting one alien in
// from the left and two down from the top. The bottom three alien rows plus
// the ship's height stay free.
func LayoutFleet(screenW, screenH, alienW, alienH, shipH int) FleetLayout {
	if alienW <= 0 || alienH <= 0 {
		return FleetLayout{}
	}

	availableX := screenW - alienW
	availableY := screenH - 3*alienH - shipH

	cols := max(availableX/(2*alienW), 0)
	rows := max(availableY/(2*alienH), 0)

	layout := FleetLayout{
		Rows:    rows,
		Cols:    cols,
		Origins: make([]core.Point, 0, rows*cols),
	}
	for row := range rows {
		for col := range cols {
			layout.Origins = append(layout.Origins, core.Point{
				X: alienW + 2*alienW*col,
				Y: 2*alienH + 2*alienH*row,
			})
		}
	}
	return layout
}
