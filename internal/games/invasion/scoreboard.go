package invasion

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// LifeGlyph marks one remaining ship in the HUD.
const LifeGlyph = '▲'

// Scoreboard holds the prepared HUD strings. The Prep methods are called when
// the underlying value changes; Render only draws what was prepared.
type Scoreboard struct {
	scoreText string
	highText  string
	levelText string
	ships     int
	color     core.Color
}

// NewScoreboard prepares every HUD line from the given stats.
func NewScoreboard(st *Stats, color core.Color) *Scoreboard {
	sb := &Scoreboard{color: color}
	sb.PrepAll(st)
	return sb
}

// PrepAll refreshes every HUD line.
func (sb *Scoreboard) PrepAll(st *Stats) {
	sb.PrepScore(st)
	sb.PrepHighScore(st)
	sb.PrepLevel(st)
	sb.PrepShips(st)
}

// PrepScore refreshes the score line.
func (sb *Scoreboard) PrepScore(st *Stats) {
	sb.scoreText = FormatScore(st.Score)
}

// PrepHighScore refreshes the high score line.
func (sb *Scoreboard) PrepHighScore(st *Stats) {
	sb.highText = "HI " + FormatScore(st.HighScore)
}

// PrepLevel refreshes the level line.
func (sb *Scoreboard) PrepLevel(st *Stats) {
	sb.levelText = fmt.Sprintf("L%d", st.Level)
}

// PrepShips refreshes the remaining-ships indicator.
func (sb *Scoreboard) PrepShips(st *Stats) {
	sb.ships = st.ShipsLeft
}

// CheckHighScore raises the high score if beaten and refreshes its line.
func (sb *Scoreboard) CheckHighScore(st *Stats) {
	if st.CheckHighScore() {
		sb.PrepHighScore(st)
	}
}

// Render draws the HUD: ships top-left, high score top-center,
// score top-right with the level beneath it.
func (sb *Scoreboard) Render(dst *core.Screen) {
	if sb.ships > 0 {
		lives := strings.TrimSpace(strings.Repeat(string(LifeGlyph)+" ", sb.ships))
		dst.DrawTextColor(1, 0, lives, sb.color)
	}

	highX := (dst.Width() - len(sb.highText)) / 2
	dst.DrawText(highX, 0, sb.highText)

	dst.DrawText(dst.Width()-len(sb.scoreText)-1, 0, sb.scoreText)
	dst.DrawText(dst.Width()-len(sb.levelText)-1, 1, sb.levelText)
}

// FormatScore rounds to the nearest ten, ties to even, and adds thousands
// separators.
func FormatScore(score int) string {
	rounded := int64(math.RoundToEven(float64(score)/10)) * 10
	return humanize.Comma(rounded)
}
