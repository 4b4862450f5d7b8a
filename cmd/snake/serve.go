package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own private game on the configured board.
Scores are stored per-server with the SSH user name as the player.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --difficulty easy         # Slower games for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addBoardFlags(serveCmd)
	serveCmd.Flags().String("ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().String("host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().Duration("idle-timeout", tui.DefaultSSHServerConfig().IdleTimeout, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	v, err := bindSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(v)
	if err != nil {
		return err
	}

	game, err := gameConfig(v)
	if err != nil {
		return err
	}

	store, err := storage.Open(v.GetString("db"))
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     v.GetString("ssh"),
		HostKeyPath: v.GetString("host-key"),
		IdleTimeout: v.GetDuration("idle-timeout"),
		Game:        game,
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("snake-ssh"))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("accepting connections", "address", server.Addr(), "board", snake.BoardID(game.Columns, game.Rows))
	return server.ListenAndServe(ctx)
}
