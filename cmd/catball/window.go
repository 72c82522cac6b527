package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catball/internal/assets"
	"github.com/vovakirdan/catball/internal/config"
	"github.com/vovakirdan/catball/internal/platform/window"
)

var (
	flagAssetsDir    string
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with touches or the mouse.

Controls:
  Touch / left mouse  - Move the paw on that half of the arena
  P/Space             - Pause
  Q/Esc               - Quit

Sprites are embedded in the binary. Point --assets at a directory holding
ball.png, background.png, paw_left.png and paw_right.png to replace them
(the file names can be changed in the config).

Examples:
  catball window
  catball window --width 600 --height 900
  catball window --assets ./my-sprites`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssetsDir, "assets", "", "Directory with sprite images (default: embedded)")
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 0, "Window width (0 = from config)")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 0, "Window height (0 = from config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagAssetsDir != "" {
		cfg.Assets.Dir = flagAssetsDir
	}
	if flagWindowWidth > 0 {
		cfg.Window.Width = flagWindowWidth
	}
	if flagWindowHeight > 0 {
		cfg.Window.Height = flagWindowHeight
	}

	dir := cfg.Assets.Dir
	if dir != "" {
		if dir, err = config.ExpandHome(dir); err != nil {
			return err
		}
	}
	sprites, err := assets.Load(dir, assets.Files{
		Ball:       cfg.Assets.Ball,
		Background: cfg.Assets.Background,
		PawLeft:    cfg.Assets.PawLeft,
		PawRight:   cfg.Assets.PawRight,
	})
	if err != nil {
		logger.Fatal("failed to load sprites", "dir", dir, "err", err)
	}
	logger.Info("sprites loaded", "dir", dir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := &window.Driver{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		TPS:     flagFPS,
		Sprites: sprites,
		Logger:  logger,
	}
	g, frame := newSession(logger)
	if err := driver.Run(ctx, frame); err != nil {
		return err
	}
	logger.Info("window closed", "frames", g.Frames(), "best", g.State().Best)
	return nil
}
