package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Cat Ball in the current terminal.

Controls:
  Mouse drag   - Move the paw on that half of the arena
  P/Space      - Pause
  ?            - More help (while paused)
  Q/Esc        - Quit

Examples:
  catball play
  catball play --fps 30
  catball play --log-file ~/catball.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the game; logs only go to --log-file.
	cfg, logger, closeLog, err := setup(true)
	if err != nil {
		return err
	}
	defer closeLog()

	skins, err := tui.SkinsFromConfig(cfg.Terminal)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := &tui.Driver{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Terminal.TickRate,
		},
		Skins: skins,
	}
	g, frame := newSession(logger)
	logger.Info("terminal session started", "width", width, "height", height, "tick_rate", cfg.Terminal.TickRate)
	if err := driver.Run(ctx, frame); err != nil {
		return err
	}
	logger.Info("terminal session ended", "frames", g.Frames(), "best", g.State().Best)
	return nil
}
