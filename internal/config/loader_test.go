package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/catball/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	if got := embedded(); !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig differ:\n%+v\n%+v", got, DefaultConfig())
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
terminal:
  tick_rate: 30
  skins:
    ball: { rune: "o", color: orange }
ssh:
  idle_timeout: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.TickRate != 30 {
		t.Errorf("tick_rate = %d, expected 30", cfg.Terminal.TickRate)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("idle_timeout = %v, expected 5m", cfg.SSH.IdleTimeout)
	}
	cell, err := cfg.Terminal.Skins.Ball.Cell()
	if err != nil || cell != (core.Cell{Rune: 'o', Color: core.ColorOrange}) {
		t.Errorf("ball skin = %+v, %v", cell, err)
	}
	// Untouched keys keep their defaults.
	if cfg.Window.Title != "Cat Ball Wow!" || cfg.Terminal.Skins.PawLeft.Rune != "█" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, expected ErrNotExist", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "window: [not, a, map")
	if _, err := Load(broken); err == nil {
		t.Error("broken YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "terminal:\n  skins:\n    ball: { rune: \"oo\", color: red }\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("two-rune skin: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	if err != nil || !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %+v, %v", cfg, err)
	}

	writeFile(t, filepath.Join(work, "configs", "catball.yaml"), "window:\n  title: local\n")
	if cfg, _ = Load(""); cfg.Window.Title != "local" {
		t.Errorf("title = %q, expected local config", cfg.Window.Title)
	}

	writeFile(t, filepath.Join(home, ".catball", "config.yaml"), "window:\n  title: user\n")
	if cfg, _ = Load(""); cfg.Window.Title != "user" {
		t.Errorf("title = %q, expected user config to win", cfg.Window.Title)
	}

	// An invalid user file is skipped.
	writeFile(t, filepath.Join(home, ".catball", "config.yaml"), "terminal:\n  tick_rate: 0\n")
	if cfg, _ = Load(""); cfg.Window.Title != "local" {
		t.Errorf("title = %q, expected fallback to local config", cfg.Window.Title)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Terminal.TickRate = 0 }},
		{"bad text color", func(c *Config) { c.Terminal.TextColor = "plaid" }},
		{"empty skin rune", func(c *Config) { c.Terminal.Skins.Background.Rune = "" }},
		{"bad skin color", func(c *Config) { c.Terminal.Skins.PawRight.Color = "plaid" }},
		{"empty asset name", func(c *Config) { c.Assets.Ball = "" }},
		{"empty ssh address", func(c *Config) { c.SSH.Address = "" }},
		{"negative idle timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/cat")

	got, err := ExpandHome("~/.catball/host_key")
	if err != nil || got != filepath.Join("/home/cat", ".catball", "host_key") {
		t.Errorf("ExpandHome = %q, %v", got, err)
	}
	if got, _ := ExpandHome("/abs/key"); got != "/abs/key" {
		t.Errorf("absolute path changed: %q", got)
	}
}
