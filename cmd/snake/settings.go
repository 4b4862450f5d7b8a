package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// envPrefix prefixes environment overrides, e.g. SNAKE_DB or SNAKE_LOG_LEVEL.
const envPrefix = "SNAKE"

// bindSettings returns a viper instance that resolves every flag of cmd,
// falling back to SNAKE_* environment variables.
func bindSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// newLogger creates the stderr logger used by every command.
func newLogger(v *viper.Viper) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// gameConfig resolves board size, speed and seed.
// Precedence: flags/env -> difficulty preset -> snake.yaml -> defaults.
func gameConfig(v *viper.Viper) (core.RuntimeConfig, error) {
	snakeCfg, err := config.LoadSnake(v.GetString("config"))
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	if name := v.GetString("difficulty"); name != "" {
		preset, err := config.ParseDifficulty(name)
		if err != nil {
			return core.RuntimeConfig{}, err
		}
		config.ApplySnakePreset(&snakeCfg, preset)
	}
	if columns := v.GetInt("columns"); columns > 0 {
		snakeCfg.Board.Columns = columns
	}
	if rows := v.GetInt("rows"); rows > 0 {
		snakeCfg.Board.Rows = rows
	}
	if err := snakeCfg.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := core.DefaultConfig()
	cfg.Columns = snakeCfg.Board.Columns
	cfg.Rows = snakeCfg.Board.Rows
	cfg.TickInterval = snakeCfg.TickInterval()
	cfg.Seed = v.GetInt64("seed")
	return cfg, nil
}

// addBoardFlags registers the flags that choose a board and speed.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().Int("columns", 0, "Board width in cells (0 = from config)")
	cmd.Flags().Int("rows", 0, "Board height in cells (0 = from config)")
	cmd.Flags().String("difficulty", "", "Speed preset: easy, normal, hard")
}
