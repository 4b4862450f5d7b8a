// snake is a terminal snake game with a headless autopilot mode, a local
// scoreboard and an SSH server for remote play.
//
// Usage:
//
//	snake play              - Play in the terminal
//	snake demo              - Let the autopilot play without a UI
//	snake scores [board]    - Show high scores
//	snake serve             - Start SSH server for remote play
//
// Global flags (also read from SNAKE_* environment variables):
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Use a custom snake.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake moves across a bounded grid, grows by eating apples and
ends when it hits a wall or itself.

Available commands:
  play     - Play in the terminal
  demo     - Watch the autopilot play headless
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --columns 30 --rows 20 --difficulty hard
  snake demo --ticks 1000 --save
  snake scores 20x15
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().String("db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().String("config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
