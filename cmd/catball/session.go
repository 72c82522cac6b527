package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catball/internal/games/catball"
)

// newSession starts a game and returns it with a frame function driving it.
func newSession(logger *log.Logger) (*catball.Game, catball.FrameFunc) {
	g := catball.New()
	frame := func(in catball.FrameInput, r catball.Renderer) {
		res := g.Frame(in, r)
		if res.Missed {
			logger.Debug("round over", "score", res.LostScore, "best", res.State.Best, "frame", g.Frames())
		}
	}
	return g, frame
}
