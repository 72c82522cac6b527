// Package config provides YAML-based configuration loading for the hosts.
// Game rules are fixed and deliberately absent from it.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catball/internal/core"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the hosts.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Assets   AssetsConfig   `yaml:"assets"`
	Terminal TerminalConfig `yaml:"terminal"`
	SSH      SSHConfig      `yaml:"ssh"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AssetsConfig locates the four sprite images.
// An empty Dir selects the images embedded in the binary.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Ball       string `yaml:"ball"`
	Background string `yaml:"background"`
	PawLeft    string `yaml:"paw_left"`
	PawRight   string `yaml:"paw_right"`
}

// TerminalConfig defines the terminal host.
type TerminalConfig struct {
	TickRate  int         `yaml:"tick_rate"`
	TextColor string      `yaml:"text_color"`
	Skins     SkinsConfig `yaml:"skins"`
}

// SkinsConfig maps each sprite to how the terminal draws it.
type SkinsConfig struct {
	Background Skin `yaml:"background"`
	Ball       Skin `yaml:"ball"`
	PawLeft    Skin `yaml:"paw_left"`
	PawRight   Skin `yaml:"paw_right"`
}

// Skin is a single rune and a color name.
type Skin struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

// Cell resolves the skin to a screen cell.
func (s Skin) Cell() (core.Cell, error) {
	if utf8.RuneCountInString(s.Rune) != 1 {
		return core.Cell{}, fmt.Errorf("%w: skin rune %q must be a single character", ErrInvalidConfig, s.Rune)
	}
	r, _ := utf8.DecodeRuneInString(s.Rune)
	c, err := core.ParseColor(s.Color)
	if err != nil {
		return core.Cell{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return core.Cell{Rune: r, Color: c}, nil
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"` // empty: ~/.catball/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks the config for values no host can work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Terminal.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Terminal.TickRate)
	}
	if _, err := core.ParseColor(c.Terminal.TextColor); err != nil {
		return fmt.Errorf("%w: text_color: %v", ErrInvalidConfig, err)
	}
	skins := map[string]Skin{
		"background": c.Terminal.Skins.Background,
		"ball":       c.Terminal.Skins.Ball,
		"paw_left":   c.Terminal.Skins.PawLeft,
		"paw_right":  c.Terminal.Skins.PawRight,
	}
	for name, s := range skins {
		if _, err := s.Cell(); err != nil {
			return fmt.Errorf("skin %s: %w", name, err)
		}
	}
	files := []string{c.Assets.Ball, c.Assets.Background, c.Assets.PawLeft, c.Assets.PawRight}
	for _, f := range files {
		if f == "" {
			return fmt.Errorf("%w: asset file names must not be empty", ErrInvalidConfig)
		}
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("%w: ssh address is empty", ErrInvalidConfig)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh idle_timeout is negative", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	return nil
}
