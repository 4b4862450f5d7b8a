package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// autopilotPlayer is the player name stored with demo scores.
const autopilotPlayer = "autopilot"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Let the autopilot play without a UI",
	Long: `Run a game headless on a fixed interval with the autopilot steering.
The run stops when the game ends, after --ticks moves, or on Ctrl+C,
then prints the final board.

Examples:
  snake demo
  snake demo --interval 1ms --ticks 5000
  snake demo --seed 7 --columns 10 --rows 10 --save`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	addBoardFlags(demoCmd)
	demoCmd.Flags().Int("ticks", 2000, "Stop after this many ticks (0 = until game over)")
	demoCmd.Flags().Duration("interval", 0, "Tick interval (0 = from config/difficulty)")
	demoCmd.Flags().Bool("save", false, "Save the result to the scores database")
}

func runDemo(cmd *cobra.Command, _ []string) error {
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
	if interval := v.GetDuration("interval"); interval > 0 {
		cfg.TickInterval = interval
	}
	cfg.Seed = cfg.ResolveSeed(time.Now())

	game := snake.NewGame(cfg.Columns, cfg.Rows)
	if err := game.Reset(cfg); err != nil {
		return err
	}
	engine := game.Engine()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := driver.Loop{
		Interval: cfg.TickInterval,
		MaxTicks: v.GetInt("ticks"),
		Logger:   logger,
		Before: func() {
			engine.RequestDirection(snake.Autopilot(engine))
		},
	}

	logger.Info("demo started", "board", game.ID(), "seed", cfg.Seed, "interval", cfg.TickInterval)
	res, err := loop.Run(ctx, engine)
	if err != nil {
		return err
	}
	snap := engine.Snapshot()
	logger.Info("demo finished",
		"reason", res.Reason,
		"ticks", snap.Tick,
		"score", snap.Score,
		"length", snap.SnakeLen,
		"head", snap.Head,
		"state", snap.State,
		"duration", res.Duration.Round(time.Millisecond),
	)

	screen := core.NewScreen(max(cfg.Columns+2, 40), cfg.Rows+2+4)
	game.Resize(screen.Width(), screen.Height())
	game.Render(screen)
	fmt.Fprintln(cmd.OutOrStdout(), screen.String())

	if !v.GetBool("save") {
		return nil
	}
	runID, err := saveDemo(v.GetString("db"), game, res)
	if err != nil {
		return err
	}
	logger.Info("demo saved", "run", runID, "hint", "snake scores --run "+runID)
	return nil
}

// saveDemo records a finished demo run and returns its run id.
func saveDemo(dbPath string, game *snake.Game, res driver.Result) (string, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	engine := game.Engine()
	entry := storage.ScoreEntry{
		RunID:  uuid.NewString(),
		Board:  game.ID(),
		Player: autopilotPlayer,
		Score:  res.Score,
		Length: len(engine.SnakePositions()),
		Ticks:  res.Ticks,
		Seed:   game.Seed(),
	}
	if _, err := store.SaveScore(entry); err != nil {
		return "", err
	}
	return entry.RunID, nil
}
