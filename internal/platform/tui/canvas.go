package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/catball/internal/config"
	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/games/catball"
)

// Skins decide how sprites and text look in a terminal.
type Skins struct {
	Sprites map[catball.Sprite]core.Cell
	Text    core.Color
}

// SkinsFromConfig resolves the terminal section of the config.
func SkinsFromConfig(cfg config.TerminalConfig) (Skins, error) {
	skins := Skins{Sprites: make(map[catball.Sprite]core.Cell, 4)}
	entries := []struct {
		sprite catball.Sprite
		skin   config.Skin
	}{
		{catball.SpriteBackground, cfg.Skins.Background},
		{catball.SpriteBall, cfg.Skins.Ball},
		{catball.SpritePawLeft, cfg.Skins.PawLeft},
		{catball.SpritePawRight, cfg.Skins.PawRight},
	}
	for _, e := range entries {
		cell, err := e.skin.Cell()
		if err != nil {
			return Skins{}, fmt.Errorf("skin %s: %w", e.sprite, err)
		}
		skins.Sprites[e.sprite] = cell
	}

	text, err := core.ParseColor(cfg.TextColor)
	if err != nil {
		return Skins{}, fmt.Errorf("text color: %w", err)
	}
	skins.Text = text
	return skins, nil
}

// DefaultSkins returns the skins of the default config.
func DefaultSkins() Skins {
	skins, err := SkinsFromConfig(config.DefaultConfig().Terminal)
	if err != nil {
		panic(err) // defaults are validated by tests
	}
	return skins
}

// Canvas is a catball.Renderer that draws into a cell screen.
// Screen units map to cells with CellAspect.
type Canvas struct {
	screen *core.Screen
	skins  Skins
}

// NewCanvas creates a canvas drawing into screen.
func NewCanvas(screen *core.Screen, skins Skins) *Canvas {
	return &Canvas{screen: screen, skins: skins}
}

// Screen returns the screen the canvas draws into.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Clear blanks the screen. Terminals keep their own background color.
func (c *Canvas) Clear(color.Color) {
	c.screen.Clear()
}

// DrawSprite fills the cells covered by the sprite with its skin.
func (c *Canvas) DrawSprite(s catball.Sprite, pos, size core.Vec2) {
	cell, ok := c.skins.Sprites[s]
	if !ok {
		return
	}
	x0, x1 := cellSpan(pos.X, size.X)
	y0, y1 := cellSpan(pos.Y/CellAspect, size.Y/CellAspect)
	c.screen.DrawRect(core.NewCellRect(x0, y0, x1-x0, y1-y0), cell)
}

// DrawText writes text on the row holding the middle of the glyphs.
// Terminal text has one size and the configured color.
func (c *Canvas) DrawText(text string, pos core.Vec2, size float64, _ color.Color) {
	col := int(math.Round(pos.X))
	row := int(math.Floor((pos.Y - size/2) / CellAspect))
	c.screen.DrawTextColored(col, row, text, c.skins.Text)
}

// cellSpan converts a start and length in cell units to a half-open cell
// range. Anything with a positive length covers at least one cell.
func cellSpan(start, length float64) (lo, hi int) {
	if length <= 0 {
		return 0, 0
	}
	lo = int(math.Round(start))
	hi = int(math.Round(start + length))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
