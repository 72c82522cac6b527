package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catball/internal/games/catball"
	"github.com/vovakirdan/catball/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Cat Ball SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; nothing is shared between players.
Use a terminal with mouse support and drag to move the paws.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catball/host_key

Examples:
  catball serve                           # Listen on :23234 with auto-generated key
  catball serve --ssh :2222               # Listen on port 2222
  catball serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting (-1 = from config, 0 = never)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	skins, err := tui.SkinsFromConfig(cfg.Terminal)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		IdleTimeout: cfg.SSH.IdleTimeout,
		TickRate:    cfg.Terminal.TickRate,
		Skins:       skins,
	}, sessionFactory(logger), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connect with: ssh localhost -p <port>", "address", cfg.SSH.Address)
	return server.ListenAndServe(ctx)
}

// sessionFactory gives every SSH user a fresh game.
func sessionFactory(logger *log.Logger) tui.SessionFactory {
	return func(user string) catball.FrameFunc {
		_, frame := newSession(logger.With("user", user))
		return frame
	}
}
