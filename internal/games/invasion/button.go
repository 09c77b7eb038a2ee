package invasion

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Button is the clickable start control shown while no game is running.
type Button struct {
	Rect      core.Rect
	Label     string
	Color     core.Color
	TextColor core.Color
}

// NewButton creates a button centered on the screen.
func NewButton(s config.Settings) Button {
	w := min(s.ButtonW, s.ScreenW)
	h := min(s.ButtonH, s.ScreenH)
	return Button{
		Rect:      core.NewRect((s.ScreenW-w)/2, (s.ScreenH-h)/2, w, h),
		Label:     s.ButtonLabel,
		Color:     s.ButtonColor,
		TextColor: s.ButtonTextColor,
	}
}

// Hit reports whether a click at (x, y) lands on the button.
func (b Button) Hit(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Render draws the button with its label centered inside.
func (b Button) Render(dst *core.Screen) {
	dst.DrawRect(b.Rect, ' ')
	if b.Rect.W >= 2 && b.Rect.H >= 2 {
		dst.DrawBoxColor(b.Rect, b.Color)
	}

	_, cy := b.Rect.Center()
	x := b.Rect.X + (b.Rect.W-utf8.RuneCountInString(b.Label))/2
	dst.DrawTextColor(x, cy, b.Label, b.TextColor)
}
