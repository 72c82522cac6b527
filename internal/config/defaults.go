package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catball.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/catball.yaml.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Cat Ball Wow!",
			Width:  480,
			Height: 720,
		},
		Assets: AssetsConfig{
			Ball:       "ball.png",
			Background: "background.png",
			PawLeft:    "paw_left.png",
			PawRight:   "paw_right.png",
		},
		Terminal: TerminalConfig{
			TickRate:  60,
			TextColor: "bright_white",
			Skins: SkinsConfig{
				Background: Skin{Rune: "·", Color: "gray"},
				Ball:       Skin{Rune: "●", Color: "bright_yellow"},
				PawLeft:    Skin{Rune: "█", Color: "bright_magenta"},
				PawRight:   Skin{Rune: "█", Color: "bright_cyan"},
			},
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
