// catball is Cat Ball Wow!: keep the ball in the air with two cat paws.
//
// Usage:
//
//	catball play      - Play in the terminal (drag with the mouse)
//	catball window    - Play in a desktop window (touch or mouse)
//	catball serve     - Start SSH server for remote play
//	catball sim       - Run frames headless and print the scores
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catball/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catball",
	Short: "Cat Ball Wow! - keep the ball up with two paws",
	Long: `Cat Ball is a one-screen arcade game. Two paws at the bottom of a
square arena follow your touches; every bounce off a wall or a paw scores
a point and speeds the ball up. Miss it and the round starts over.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation

Examples:
  catball play
  catball window --width 600 --height 900
  catball serve --ssh :2222
  catball sim --frames 1000 --touch 30,90`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the config and builds the logger every command shares.
// Logs go to stderr unless quiet is set, and always to --log-file if given.
func setup(quiet bool) (config.Config, *log.Logger, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if flagFPS > 0 {
		cfg.Terminal.TickRate = flagFPS
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	if quiet {
		out = io.Discard
	}
	closer := func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return config.Config{}, nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return config.Config{}, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "catball",
		Level:           lvl,
	})
	return cfg, logger, closer, nil
}
