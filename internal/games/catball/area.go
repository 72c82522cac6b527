package catball

import (
	"math"

	"github.com/vovakirdan/catball/internal/core"
)

// GameShape is the size of logical game space.
var GameShape = core.Vec2{X: 100, Y: 100}

// TranslateMode selects how ToScreen treats its argument.
type TranslateMode int

const (
	// Normal maps a position: scale, then offset by the viewport origin.
	Normal TranslateMode = iota
	// ScaleOnly maps an extent: scale without offset.
	ScaleOnly
)

// GameArea is the on-screen square that logical space is displayed in.
// It is recomputed every frame from the window size.
type GameArea struct {
	rect core.Rect
}

// Update recenters the viewport in a window of the given size.
// The viewport is a square with side min(width, height); negative sizes
// count as zero.
func (a *GameArea) Update(width, height float64) {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	side := math.Min(width, height)

	a.rect = core.Rect{
		X: width/2 - side/2,
		Y: height/2 - side/2,
		W: side,
		H: side,
	}
}

// Rect returns the current viewport in screen coordinates.
func (a *GameArea) Rect() core.Rect {
	return a.rect
}

// ToScreen converts a logical point or extent to screen coordinates.
func (a *GameArea) ToScreen(p core.Vec2, mode TranslateMode) core.Vec2 {
	scaled := a.rect.Size().Mul(p).Mul(core.Vec2{X: 1 / GameShape.X, Y: 1 / GameShape.Y})
	if mode == ScaleOnly {
		return scaled
	}
	return scaled.Add(a.rect.Pos())
}

// ToLogical converts a screen point to logical coordinates.
// A zero-size viewport maps everything to the origin.
func (a *GameArea) ToLogical(p core.Vec2) core.Vec2 {
	if a.rect.W <= 0 || a.rect.H <= 0 {
		return core.Vec2{}
	}
	rel := p.Sub(a.rect.Pos())
	return core.Vec2{
		X: rel.X / a.rect.W * GameShape.X,
		Y: rel.Y / a.rect.H * GameShape.Y,
	}
}

// Draw draws the background over the viewport.
func (a *GameArea) Draw(r Renderer) {
	r.DrawSprite(SpriteBackground, a.rect.Pos(), a.rect.Size())
}
