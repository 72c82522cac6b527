package catball

import (
	"math"

	"github.com/vovakirdan/catball/internal/core"
)

// Paw tuning. Values are per frame; there is no delta time.
const (
	PawAcceleration = 5.0
	PawFriction     = -0.2
)

// PawShape is the fixed paw size in logical units.
var PawShape = core.Vec2{X: 20.0 / 1.5, Y: 30.0 / 1.5}

// Side tells which half of the arena a paw lives in.
type Side int

const (
	Left Side = iota
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Paw is a player-controlled paddle that slides along the bottom edge.
type Paw struct {
	Rect     core.Rect
	Velocity float64 // horizontal, logical units per frame
	Side     Side
}

// NewPaw creates a paw at its starting position on the given side.
func NewPaw(side Side) *Paw {
	x := 25.0
	if side == Right {
		x = 75 - PawShape.X
	}
	return &Paw{
		Rect: core.Rect{
			X: x,
			Y: GameShape.Y - PawShape.Y,
			W: PawShape.X,
			H: PawShape.Y,
		},
		Side: side,
	}
}

// Lane returns the legal range for the paw's x position.
func (p *Paw) Lane() (min, max float64) {
	half := GameShape.X / 2
	if p.Side == Left {
		return 0, half - p.Rect.W
	}
	return half, GameShape.X - p.Rect.W
}

// owns reports whether a logical point is on this paw's half of the arena.
// The center line x == 50 belongs to neither half.
func (p *Paw) owns(pt core.Vec2) bool {
	if pt.X <= 0 || pt.X >= GameShape.X {
		return false
	}
	if p.Side == Left {
		return pt.X < GameShape.X/2
	}
	return pt.X > GameShape.X/2
}

// Update moves the paw one frame towards the nearest pointer on its half.
// Pointers are in screen coordinates and are mapped through area.
func (p *Paw) Update(area *GameArea, pointers []core.Vec2) {
	center := p.Rect.Center().X

	// Nearest pointer wins; on ties the first one seen is kept.
	accel := 0.0
	nearest := math.Inf(1)
	for _, sp := range pointers {
		pt := area.ToLogical(sp)
		if !p.owns(pt) {
			continue
		}
		dist := math.Abs(pt.X - center)
		if dist >= nearest {
			continue
		}
		nearest = dist
		// 5 / (1 / (d/100)) without dividing by zero at d == 0
		magnitude := PawAcceleration * dist / GameShape.X
		switch {
		case pt.X > center:
			accel = magnitude
		case pt.X < center:
			accel = -magnitude
		default:
			accel = 0
		}
	}

	accel += p.Velocity * PawFriction
	p.Velocity += accel
	p.Rect.X += p.Velocity + 0.5*accel

	lo, hi := p.Lane()
	p.Rect.X = core.ClampF(p.Rect.X, lo, hi)
}

// Sprite returns the image used for this paw.
func (p *Paw) Sprite() Sprite {
	if p.Side == Left {
		return SpritePawLeft
	}
	return SpritePawRight
}

// Draw draws the paw at its current position.
func (p *Paw) Draw(r Renderer, area *GameArea) {
	r.DrawSprite(p.Sprite(), area.ToScreen(p.Rect.Pos(), Normal), area.ToScreen(p.Rect.Size(), ScaleOnly))
}
