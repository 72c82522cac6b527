// Package catball implements Cat Ball: two paws keep a ball in the air
// inside a square arena, scoring on every wall and paw bounce.
//
// All simulation happens in a fixed 100x100 logical space. A GameArea maps
// it onto whatever screen the host provides, so the rules never see pixels
// or terminal cells. One call to Game.Frame is one simulation step; there is
// no delta time, so the game speed follows the host frame rate.
package catball

import "github.com/vovakirdan/catball/internal/core"

// ID and Title identify the game to hosts.
const (
	ID    = "catball"
	Title = "Cat Ball Wow!"
)

// FrameInput is what a host samples once per presented frame.
type FrameInput struct {
	Screen   core.Vec2   // screen size in host units
	Pointers []core.Vec2 // active touches/mouse, screen coordinates, enumeration order
}

// State is a snapshot of the scores.
type State struct {
	Score uint32
	Best  uint32
}

// FrameResult is returned by Game.Frame.
type FrameResult struct {
	State     State
	Bounces   int    // bounce events this frame
	Missed    bool   // the round ended this frame
	LostScore uint32 // score the round ended with, when Missed
}

// Game owns every entity of one session.
type Game struct {
	area   GameArea
	left   *Paw
	right  *Paw
	ball   *Ball
	scores Scores
	frames uint64
}

// New creates a game in its starting layout.
func New() *Game {
	return &Game{
		left:  NewPaw(Left),
		right: NewPaw(Right),
		ball:  NewBall(),
	}
}

// Frame runs one tick: update and draw interleaved in a fixed order.
// The ball sees this frame's paw positions and the score drawn already
// includes this frame's bounces.
func (g *Game) Frame(in FrameInput, r Renderer) FrameResult {
	g.frames++

	r.Clear(ClearColor)

	g.area.Update(in.Screen.X, in.Screen.Y)
	g.area.Draw(r)

	g.left.Update(&g.area, in.Pointers)
	g.right.Update(&g.area, in.Pointers)
	g.left.Draw(r, &g.area)
	g.right.Draw(r, &g.area)

	paws := []core.Rect{g.left.Rect, g.right.Rect}
	ball := g.ball.Update(paws, &g.scores)
	g.ball.Draw(r, &g.area)

	g.scores.Update()
	g.scores.Draw(r, &g.area)

	return FrameResult{
		State:     g.State(),
		Bounces:   ball.Bounces,
		Missed:    ball.Missed,
		LostScore: ball.LostScore,
	}
}

// State returns the current scores.
func (g *Game) State() State {
	return State{Score: g.scores.Score, Best: g.scores.Best}
}

// Frames returns how many frames have been simulated.
func (g *Game) Frames() uint64 {
	return g.frames
}

// Area returns the viewport computed by the last frame.
func (g *Game) Area() *GameArea {
	return &g.area
}

// Paws returns the left and right paw.
func (g *Game) Paws() (left, right *Paw) {
	return g.left, g.right
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}
