package catball

import (
	"fmt"

	"github.com/vovakirdan/catball/internal/core"
)

// Text layout in logical units. Positions are baselines.
var (
	scoreTextPos = core.Vec2{X: 5, Y: 10}
	bestTextPos  = core.Vec2{X: 5, Y: 17.5}
	textSize     = core.Vec2{X: 10, Y: 10}
)

// Scores tracks the current round and the session best.
type Scores struct {
	Score uint32
	Best  uint32
}

// Update raises Best to Score if the current round beat it.
func (s *Scores) Update() {
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

// Draw draws both scores in the top-left of the arena.
func (s *Scores) Draw(r Renderer, area *GameArea) {
	size := area.ToScreen(textSize, ScaleOnly).X
	r.DrawText(fmt.Sprintf("Score: %d", s.Score), area.ToScreen(scoreTextPos, Normal), size, TextColor)
	r.DrawText(fmt.Sprintf("Best Score: %d", s.Best), area.ToScreen(bestTextPos, Normal), size, TextColor)
}
