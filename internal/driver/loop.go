// Package driver runs a simulation on a fixed interval without a terminal.
//
// Loop owns its ticker for the duration of Run only: cancelling the context,
// reaching the tick limit or the game ending stops and releases it, so a
// stale loop can never tick an engine that was re-initialised elsewhere.
package driver

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// Sim is the part of the engine the loop drives.
type Sim interface {
	Tick()
	IsGameOver() bool
	Score() int
}

// StopReason says why Run returned.
type StopReason string

const (
	StopGameOver  StopReason = "game_over"
	StopMaxTicks  StopReason = "max_ticks"
	StopCancelled StopReason = "cancelled"
)

// Result summarises a finished run.
type Result struct {
	Ticks    int
	Score    int
	Reason   StopReason
	Duration time.Duration
}

// Loop ticks a Sim at a fixed interval.
type Loop struct {
	Interval time.Duration
	MaxTicks int // 0 means no limit
	Logger   *log.Logger

	// Before runs ahead of every tick, e.g. to feed input.
	Before func()
	// After runs after every tick.
	After func()
}

// ErrInvalidInterval is returned for a non-positive interval.
var ErrInvalidInterval = errors.New("driver: interval must be positive")

// Run ticks sim until it is over, MaxTicks is reached or ctx is done.
// Cancellation is reported through Result.Reason, not as an error.
func (l *Loop) Run(ctx context.Context, sim Sim) (Result, error) {
	if l.Interval <= 0 {
		return Result{}, ErrInvalidInterval
	}
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}

	start := time.Now()
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	res := Result{}
	finish := func(reason StopReason) (Result, error) {
		res.Reason = reason
		res.Score = sim.Score()
		res.Duration = time.Since(start)
		logger.Debug("loop stopped", "reason", reason, "ticks", res.Ticks, "score", res.Score)
		return res, nil
	}

	if sim.IsGameOver() {
		return finish(StopGameOver)
	}

	logger.Debug("loop started", "interval", l.Interval, "max_ticks", l.MaxTicks)
	for {
		select {
		case <-ctx.Done():
			return finish(StopCancelled)
		case <-ticker.C:
		}

		if l.Before != nil {
			l.Before()
		}
		sim.Tick()
		res.Ticks++
		if l.After != nil {
			l.After()
		}

		switch {
		case sim.IsGameOver():
			return finish(StopGameOver)
		case l.MaxTicks > 0 && res.Ticks >= l.MaxTicks:
			return finish(StopMaxTicks)
		}
	}
}
