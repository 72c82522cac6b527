package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/games/catball"
)

var (
	flagSimFrames  int
	flagSimTouches []string
	flagSimWidth   float64
	flagSimHeight  float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run frames headless and print the scores",
	Long: `Run the game without a display. Every frame sees the same screen
size and the same touches, given in screen coordinates.

Examples:
  catball sim --frames 600
  catball sim --frames 2000 --touch 30,90 --touch 70,90
  catball sim --width 1920 --height 1080 --touch 900,1000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().StringArrayVar(&flagSimTouches, "touch", nil, "Touch position x,y (repeatable)")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 100, "Screen width")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 100, "Screen height")
}

func runSim(cmd *cobra.Command, _ []string) error {
	_, logger, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	touches := make([]core.Vec2, 0, len(flagSimTouches))
	for _, s := range flagSimTouches {
		p, err := parseTouch(s)
		if err != nil {
			return err
		}
		touches = append(touches, p)
	}

	driver := &catball.HeadlessDriver{
		Frames: flagSimFrames,
		Input: catball.StaticInput(catball.FrameInput{
			Screen:   core.Vec2{X: flagSimWidth, Y: flagSimHeight},
			Pointers: touches,
		}),
	}

	g, frame := newSession(logger)
	start := time.Now()
	if err := driver.Run(cmd.Context(), frame); err != nil {
		return err
	}
	logger.Debug("simulation finished", "frames", g.Frames(), "elapsed", time.Since(start))

	st := g.State()
	fmt.Fprintf(cmd.OutOrStdout(), "frames=%d score=%d best=%d\n", g.Frames(), st.Score, st.Best)
	return nil
}

// parseTouch parses "x,y" into a point.
func parseTouch(s string) (core.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Vec2{}, fmt.Errorf("touch %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("touch %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("touch %q: %w", s, err)
	}
	return core.Vec2{X: x, Y: y}, nil
}
