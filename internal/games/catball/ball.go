package catball

import "github.com/vovakirdan/catball/internal/core"

// BaseBallVelocity is the ball speed at the start of a round.
const BaseBallVelocity = 0.4

// BallShape is the fixed ball size in logical units.
var BallShape = core.Vec2{X: 10, Y: 10}

// Ball bounces around the arena and is kept up by the paws.
type Ball struct {
	Rect     core.Rect
	Velocity core.Vec2
}

// NewBall creates a ball at the arena center moving down-right.
func NewBall() *Ball {
	b := &Ball{}
	b.reset()
	return b
}

func (b *Ball) reset() {
	b.Rect = core.Rect{
		X: GameShape.X/2 - BallShape.X/2,
		Y: GameShape.Y/2 - BallShape.Y/2,
		W: BallShape.X,
		H: BallShape.Y,
	}
	b.Velocity = core.Vec2{X: BaseBallVelocity, Y: BaseBallVelocity}
}

// Speed returns the bounce speed for the given score. It grows by 1% of the
// base velocity per point.
func Speed(score uint32) float64 {
	return BaseBallVelocity + BaseBallVelocity*(float64(score)+1)/100
}

// BallResult describes what happened to the ball in one frame.
type BallResult struct {
	Bounces   int    // bounce events this frame
	Missed    bool   // ball left past the bottom edge
	LostScore uint32 // score at the moment of the miss
}

// Update advances the ball one frame against this frame's paw positions.
// Every check is independent: several bounces can score in the same frame.
func (b *Ball) Update(paws []core.Rect, scores *Scores) BallResult {
	var res BallResult
	speed := Speed(scores.Score)

	bounce := func() {
		scores.Score++
		res.Bounces++
	}

	if b.Rect.X < 0 {
		b.Velocity.X = speed
		bounce()
	}
	if b.Rect.Right() > GameShape.X {
		b.Velocity.X = -speed
		bounce()
	}
	if b.Rect.Y < 0 {
		b.Velocity.Y = speed
		bounce()
	}

	// A paw hits when its center point is inside the ball.
	for _, paw := range paws {
		if b.Rect.ContainsPoint(paw.Center()) {
			b.Velocity.Y = -speed
			bounce()
		}
	}

	if b.Rect.Y > GameShape.Y {
		res.Missed = true
		res.LostScore = scores.Score
		b.reset()
		scores.Score = 0
	}

	b.Rect.X += b.Velocity.X
	b.Rect.Y += b.Velocity.Y
	return res
}

// Draw draws the ball at its current position.
func (b *Ball) Draw(r Renderer, area *GameArea) {
	r.DrawSprite(SpriteBall, area.ToScreen(b.Rect.Pos(), Normal), area.ToScreen(b.Rect.Size(), ScaleOnly))
}
