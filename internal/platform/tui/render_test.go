package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "HI")
	s.DrawTextColor(3, 1, "<@>", core.ColorBrightGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "HI") {
		t.Errorf("Row 0 missing text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "<@>") {
		t.Errorf("Row 1 missing colored text: %q", lines[1])
	}
}

func TestCellStyle(t *testing.T) {
	plain := cellStyle(core.ColorDefault, core.ColorDefault)
	if plain.GetForeground() != plain.GetBackground() {
		t.Error("Default colors should leave the style unset")
	}

	styled := cellStyle(core.ColorRed, core.ColorBlue)
	if styled.GetForeground() != colorCodes[core.ColorRed] {
		t.Errorf("Foreground = %v", styled.GetForeground())
	}
	if styled.GetBackground() != colorCodes[core.ColorBlue] {
		t.Errorf("Background = %v", styled.GetBackground())
	}
}
