// Package config provides YAML-based configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"
	"time"
)

// MinBoardSide is the smallest playable board side; a single row or column
// leaves no room for the apple next to the starting snake.
const MinBoardSide = 2

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the playing field size in cells.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SpeedConfig defines the fixed tick interval.
type SpeedConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the tick period as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Speed.TickMS) * time.Millisecond
}

// Validate reports the first invalid field.
func (c SnakeConfig) Validate() error {
	if c.Board.Columns < MinBoardSide {
		return fmt.Errorf("config: board.columns must be at least %d, got %d", MinBoardSide, c.Board.Columns)
	}
	if c.Board.Rows < MinBoardSide {
		return fmt.Errorf("config: board.rows must be at least %d, got %d", MinBoardSide, c.Board.Rows)
	}
	if c.Speed.TickMS <= 0 {
		return fmt.Errorf("config: speed.tick_ms must be positive, got %d", c.Speed.TickMS)
	}
	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			return err
		}
	}
	return nil
}
