package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catball/internal/core"
)

// CellAspect is how many screen units tall one terminal cell is, relative to
// its width. Cells are roughly twice as tall as wide, so the game sees a
// terminal of W x H cells as W x 2H units and its arena stays square.
const CellAspect = 2.0

// ScreenUnits returns the size of a cols x rows terminal in screen units.
func ScreenUnits(cols, rows int) core.Vec2 {
	return core.Vec2{X: float64(cols), Y: float64(rows) * CellAspect}
}

// pointer tracks the mouse as a single touch: active while the left button
// is held.
type pointer struct {
	active bool
	x, y   int
}

// update applies a mouse event.
func (p *pointer) update(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.active = true
			p.x, p.y = msg.X, msg.Y
		}
	case tea.MouseActionMotion:
		if p.active || msg.Button == tea.MouseButtonLeft {
			p.active = true
			p.x, p.y = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		p.active = false
	}
}

// positions returns the active pointers in screen units, at the cell center.
func (p pointer) positions() []core.Vec2 {
	if !p.active {
		return nil
	}
	return []core.Vec2{{
		X: float64(p.x) + 0.5,
		Y: (float64(p.y) + 0.5) * CellAspect,
	}}
}
