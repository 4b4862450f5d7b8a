package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C         - Quit

Difficulty options (fixed speed for the whole game):
  easy   - one move every 180ms
  normal - one move every 120ms
  hard   - one move every 70ms

Examples:
  snake play
  snake play --difficulty hard
  snake play --columns 40 --rows 20
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	v, err := bindSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(v)
	if err != nil {
		return err
	}

	cfg, err := gameConfig(v)
	if err != nil {
		return err
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// The game still works without storage.
	store, err := storage.Open(v.GetString("db"))
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "columns", cfg.Columns, "rows", cfg.Rows, "tick", cfg.TickInterval)
	return tui.Run(store, cfg, logger)
}
