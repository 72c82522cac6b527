package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/catball/internal/config"
	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/games/catball"
)

func TestCanvasDrawsFrame(t *testing.T) {
	screen := core.NewScreen(80, 24) // 80x48 units, arena at x=16..64
	canvas := NewCanvas(screen, DefaultSkins())

	g := catball.New()
	g.Frame(catball.FrameInput{Screen: ScreenUnits(80, 24)}, canvas)

	tests := []struct {
		name string
		x, y int
		want core.Cell
	}{
		{"background", 17, 10, core.Cell{Rune: '·', Color: core.ColorGray}},
		{"left of arena", 5, 5, core.Cell{Rune: ' '}},
		{"right of arena", 70, 5, core.Cell{Rune: ' '}},
		{"ball", 40, 11, core.Cell{Rune: '●', Color: core.ColorBrightYellow}},
		{"left paw", 30, 21, core.Cell{Rune: '█', Color: core.ColorBrightMagenta}},
		{"right paw", 48, 21, core.Cell{Rune: '█', Color: core.ColorBrightCyan}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("cell (%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if row := screen.Row(1); !strings.Contains(row, "Score: 0") {
		t.Errorf("row 1 = %q, expected score text", row)
	}
	if row := screen.Row(3); !strings.Contains(row, "Best Score: 0") {
		t.Errorf("row 3 = %q, expected best score text", row)
	}
	if c := screen.GetCell(18, 1); c.Rune != 'S' || c.Color != core.ColorBrightWhite {
		t.Errorf("score text cell = %+v, expected bright white 'S'", c)
	}
}

func TestCanvasClear(t *testing.T) {
	screen := core.NewScreen(10, 5)
	canvas := NewCanvas(screen, DefaultSkins())

	canvas.DrawSprite(catball.SpriteBall, core.Vec2{}, core.Vec2{X: 10, Y: 10})
	canvas.Clear(catball.ClearColor)

	if screen.String() != strings.Repeat(strings.Repeat(" ", 10)+"\n", 4)+strings.Repeat(" ", 10) {
		t.Errorf("Clear should blank the screen, got %q", screen.String())
	}
}

func TestCanvasTinySpriteCoversOneCell(t *testing.T) {
	screen := core.NewScreen(10, 5)
	canvas := NewCanvas(screen, DefaultSkins())

	canvas.DrawSprite(catball.SpriteBall, core.Vec2{X: 3.1, Y: 4.1}, core.Vec2{X: 0.2, Y: 0.2})
	if screen.Get(3, 2) != '●' {
		t.Errorf("tiny sprite should still cover a cell:\n%s", screen.String())
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		start, length float64
		lo, hi        int
	}{
		{0.4, 0.2, 0, 1},
		{2, 0, 0, 0},
		{1.5, 3, 2, 5},
		{-1, 3, -1, 2},
	}
	for _, tc := range tests {
		lo, hi := cellSpan(tc.start, tc.length)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("cellSpan(%v, %v) = (%d, %d), expected (%d, %d)", tc.start, tc.length, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestSkinsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Terminal
	cfg.Skins.Ball = config.Skin{Rune: "o", Color: "red"}
	cfg.TextColor = "yellow"

	skins, err := SkinsFromConfig(cfg)
	if err != nil {
		t.Fatalf("SkinsFromConfig: %v", err)
	}
	if skins.Sprites[catball.SpriteBall] != (core.Cell{Rune: 'o', Color: core.ColorRed}) {
		t.Errorf("ball skin = %+v", skins.Sprites[catball.SpriteBall])
	}
	if skins.Text != core.ColorYellow {
		t.Errorf("text color = %v, expected yellow", skins.Text)
	}

	cfg.Skins.PawLeft = config.Skin{Rune: "", Color: "red"}
	if _, err := SkinsFromConfig(cfg); err == nil {
		t.Error("empty rune should be rejected")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.ColorPink)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Styles may add escape codes; the characters must survive in order.
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output %q lacks %q", out, want)
		}
	}
}
