package catball

import (
	"math"
	"testing"

	"github.com/vovakirdan/catball/internal/core"
)

func ballAt(x, y, vx, vy float64) *Ball {
	b := NewBall()
	b.Rect.X, b.Rect.Y = x, y
	b.Velocity = core.Vec2{X: vx, Y: vy}
	return b
}

func TestNewBall(t *testing.T) {
	b := NewBall()
	if b.Rect != (core.Rect{X: 45, Y: 45, W: 10, H: 10}) {
		t.Errorf("ball rect = %+v", b.Rect)
	}
	if b.Velocity != (core.Vec2{X: 0.4, Y: 0.4}) {
		t.Errorf("ball velocity = %v", b.Velocity)
	}
}

func TestSpeed(t *testing.T) {
	tests := []struct {
		score uint32
		want  float64
	}{
		{0, 0.404},
		{1, 0.408},
		{99, 0.8},
	}
	for _, tc := range tests {
		if got := Speed(tc.score); math.Abs(got-tc.want) > eps {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestBallLeftWallBounce(t *testing.T) {
	// Sitting exactly on the edge is not past it; the bounce fires once the
	// left edge is below zero.
	b := ballAt(0, 50, -0.4, 0)
	var s Scores

	res := b.Update(nil, &s)
	if res.Bounces != 0 || s.Score != 0 {
		t.Fatalf("x=0 should not bounce yet: %+v score=%d", res, s.Score)
	}
	if math.Abs(b.Rect.X+0.4) > eps {
		t.Fatalf("x = %v, expected -0.4", b.Rect.X)
	}

	res = b.Update(nil, &s)
	if math.Abs(b.Velocity.X-0.404) > eps {
		t.Errorf("velocity.x = %v, expected 0.404", b.Velocity.X)
	}
	if s.Score != 1 || res.Bounces != 1 {
		t.Errorf("score = %d bounces = %d, expected 1/1", s.Score, res.Bounces)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("velocity.y = %v, expected unchanged 0", b.Velocity.Y)
	}
}

func TestBallWalls(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantVX     float64
		wantVY     float64
		wantScore  uint32
		wantBounce int
	}{
		{"left", -0.1, 50, 0.404, 0.1, 1, 1},
		{"right", 90.5, 50, -0.404, 0.1, 1, 1},
		{"top", 50, -0.1, 0.1, 0.404, 1, 1},
		{"top-left corner", -0.1, -0.1, 0.404, 0.404, 2, 2},
		{"top-right corner", 91, -1, -0.404, 0.404, 2, 2},
		{"inside", 50, 50, 0.1, 0.1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := ballAt(tc.x, tc.y, 0.1, 0.1)
			var s Scores
			res := b.Update(nil, &s)

			if math.Abs(b.Velocity.X-tc.wantVX) > eps || math.Abs(b.Velocity.Y-tc.wantVY) > eps {
				t.Errorf("velocity = %v, expected (%v, %v)", b.Velocity, tc.wantVX, tc.wantVY)
			}
			if s.Score != tc.wantScore || res.Bounces != tc.wantBounce {
				t.Errorf("score = %d bounces = %d, expected %d/%d", s.Score, res.Bounces, tc.wantScore, tc.wantBounce)
			}
		})
	}
}

func TestBallSpeedUsesScoreAtFrameStart(t *testing.T) {
	b := ballAt(-1, -1, 0, 0)
	s := Scores{Score: 9}
	b.Update(nil, &s)

	want := Speed(9)
	if math.Abs(b.Velocity.X-want) > eps || math.Abs(b.Velocity.Y-want) > eps {
		t.Errorf("velocity = %v, expected both components %v", b.Velocity, want)
	}
	if s.Score != 11 {
		t.Errorf("score = %d, expected 11", s.Score)
	}
}

func TestBallPawHitUsesCenterPoint(t *testing.T) {
	paw := core.Rect{X: 40, Y: 80, W: PawShape.X, H: PawShape.Y} // center (46.67, 90)

	// Center inside the ball: bounce up.
	b := ballAt(42, 85, 0.4, 0.4)
	var s Scores
	res := b.Update([]core.Rect{paw}, &s)
	if b.Velocity.Y >= 0 || s.Score != 1 || res.Bounces != 1 {
		t.Errorf("expected paw bounce, got v=%v score=%d", b.Velocity, s.Score)
	}

	// Rectangles overlap but the center is outside the ball: no bounce.
	b = ballAt(30, 72, 0.4, 0.4)
	s = Scores{}
	b.Update([]core.Rect{paw}, &s)
	if b.Velocity.Y != 0.4 || s.Score != 0 {
		t.Errorf("overlap without center containment should not bounce, v=%v score=%d", b.Velocity, s.Score)
	}
}

func TestBallWallAndPawSameFrame(t *testing.T) {
	// Ball past the left wall with a paw center inside it.
	paw := core.Rect{X: -5, Y: 80, W: 10, H: 20} // center (0, 90)
	b := ballAt(-1, 85, -0.4, 0.4)
	var s Scores

	res := b.Update([]core.Rect{paw}, &s)
	if res.Bounces != 2 || s.Score != 2 {
		t.Errorf("bounces = %d score = %d, expected 2/2", res.Bounces, s.Score)
	}
	if b.Velocity.X <= 0 || b.Velocity.Y >= 0 {
		t.Errorf("velocity = %v, expected right and up", b.Velocity)
	}
}

func TestBallMissResets(t *testing.T) {
	b := ballAt(20, 101, -0.3, 0.9)
	s := Scores{Score: 37, Best: 40}

	res := b.Update(nil, &s)
	if !res.Missed || res.LostScore != 37 {
		t.Errorf("result = %+v, expected miss losing 37", res)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Score)
	}
	if s.Best != 40 {
		t.Errorf("best = %d, ball must not touch best", s.Best)
	}
	if b.Velocity != (core.Vec2{X: 0.4, Y: 0.4}) {
		t.Errorf("velocity = %v, expected base velocity", b.Velocity)
	}
	// Reset to (45, 45), then advanced by one step in the same frame.
	if !b.Rect.Pos().ApproxEqual(core.Vec2{X: 45.4, Y: 45.4}, eps) || b.Rect.Size() != BallShape {
		t.Errorf("rect = %+v, expected center position advanced one step", b.Rect)
	}
}

func TestBallMissNeedsTopEdgePastBottom(t *testing.T) {
	for _, y := range []float64{95, 99.9, 100} {
		b := ballAt(50, y, 0, 0.4)
		var s Scores
		if res := b.Update(nil, &s); res.Missed {
			t.Errorf("y=%v should not be a miss yet", y)
		}
	}
}

func TestBallScoreNeverDecreasesWithoutMiss(t *testing.T) {
	b := ballAt(50, 20, 0.9, -0.7)
	var s Scores
	prev := s.Score

	for i := 0; i < 3000; i++ {
		// A paw that follows the ball keeps it in play.
		paw := core.Rect{X: b.Rect.Center().X - 5, Y: 85, W: 10, H: 10}
		res := b.Update([]core.Rect{paw}, &s)
		if res.Missed {
			t.Fatalf("ball missed at step %d", i)
		}
		if s.Score < prev {
			t.Fatalf("score decreased at step %d: %d -> %d", i, prev, s.Score)
		}
		prev = s.Score
	}
	if s.Score == 0 {
		t.Error("expected bounces over 3000 frames")
	}
}
