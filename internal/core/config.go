package core

import "time"

// RuntimeConfig contains the settings a driver needs to run a game.
type RuntimeConfig struct {
	Columns      int           // Board width in cells
	Rows         int           // Board height in cells
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed; 0 means derive one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Columns:      20,
		Rows:         15,
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 120 * time.Millisecond,
	}
}

// ResolveSeed returns cfg.Seed, or now's nanoseconds when no seed was given.
func (cfg RuntimeConfig) ResolveSeed(now time.Time) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return now.UnixNano()
}
