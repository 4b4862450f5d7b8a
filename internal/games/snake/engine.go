// Package snake implements the snake simulation: a single snake on a bounded
// grid that grows by eating apples and dies on walls or itself.
//
// Engine is the only mutator of game state. It has no timers and no locks;
// the caller decides when Tick runs and must not call it concurrently.
package snake

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// StartDirection is the heading of a freshly initialised snake.
const StartDirection = core.DirRight

// Engine owns the authoritative game state.
type Engine struct {
	rng core.Rand

	xMax, yMax int
	body       []core.Position // Head at index 0
	direction  core.Direction  // Applied on the most recent tick
	pending    core.Direction  // Applied on the next tick
	apple      core.Position
	gameOver   bool
	won        bool
	ticks      uint64
}

// New creates an engine that draws apple positions from rng.
// Call Initialize before ticking.
func New(rng core.Rand) *Engine {
	return &Engine{
		rng:   rng,
		apple: core.NoPosition,
	}
}

// Initialize replaces the whole game state with a new game on a
// columns x rows board. On error the previous state is kept.
func (e *Engine) Initialize(columns, rows int) error {
	if columns < 1 || rows < 1 {
		return fmt.Errorf("snake: board %dx%d: %w", columns, rows, core.ErrInvalidDimension)
	}

	xMax, yMax := columns-1, rows-1
	body := []core.Position{{X: xMax / 2, Y: yMax / 2}}

	apple, err := core.PickFreePositionExcluding(core.NewPositionSet(body...), xMax, yMax, e.rng)
	if err != nil {
		return fmt.Errorf("snake: place first apple: %w", err)
	}

	e.xMax, e.yMax = xMax, yMax
	e.body = body
	e.direction = StartDirection
	e.pending = StartDirection
	e.apple = apple
	e.gameOver = false
	e.won = false
	e.ticks = 0
	return nil
}

// RequestDirection queues d for the next tick, overwriting any earlier
// request. Reversing onto the neck and unknown headings are ignored.
func (e *Engine) RequestDirection(d core.Direction) {
	if !d.Valid() || d == e.direction.Opposite() {
		return
	}
	e.pending = d
}

// Tick advances the snake by one cell. It does nothing once the game is over.
func (e *Engine) Tick() {
	if e.gameOver || len(e.body) == 0 {
		return
	}
	e.ticks++

	e.direction = e.pending
	newHead := e.body[0].Add(e.direction)

	if !core.IsWithinBounds(newHead, e.xMax, e.yMax) {
		e.gameOver = true
		return
	}

	willGrow := newHead == e.apple

	// The tail leaves its cell this tick unless the snake grows.
	checkLen := len(e.body)
	if !willGrow {
		checkLen--
	}
	if slices.Contains(e.body[:checkLen], newHead) {
		e.gameOver = true
		return
	}

	if !willGrow {
		copy(e.body[1:], e.body[:len(e.body)-1])
		e.body[0] = newHead
		return
	}

	e.body = slices.Insert(e.body, 0, newHead)
	apple, err := core.PickFreePositionExcluding(core.NewPositionSet(e.body...), e.xMax, e.yMax, e.rng)
	if err != nil {
		// Only ErrExhaustedGrid is possible here: the snake covers the board.
		e.apple = core.NoPosition
		e.gameOver = true
		e.won = true
		return
	}
	e.apple = apple
}

// SnakePositions returns a copy of the body, head first.
func (e *Engine) SnakePositions() []core.Position {
	return slices.Clone(e.body)
}

// Head returns the head cell, or core.NoPosition before Initialize.
func (e *Engine) Head() core.Position {
	if len(e.body) == 0 {
		return core.NoPosition
	}
	return e.body[0]
}

// ApplePosition returns the apple cell. After a board-filling win it is
// core.NoPosition.
func (e *Engine) ApplePosition() core.Position {
	return e.apple
}

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Won reports whether the game ended because the snake filled the board.
func (e *Engine) Won() bool {
	return e.won
}

// Score is the number of apples eaten.
func (e *Engine) Score() int {
	return max(0, len(e.body)-1)
}

// Direction returns the heading applied on the most recent tick.
func (e *Engine) Direction() core.Direction {
	return e.direction
}

// PendingDirection returns the heading that the next tick will apply.
func (e *Engine) PendingDirection() core.Direction {
	return e.pending
}

// Bounds returns the largest valid x and y.
func (e *Engine) Bounds() (xMax, yMax int) {
	return e.xMax, e.yMax
}

// Ticks returns the number of ticks processed since Initialize.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Occupies reports whether the snake's body covers p.
func (e *Engine) Occupies(p core.Position) bool {
	return slices.Contains(e.body, p)
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Board: %dx%d\n", e.ticks, e.Score(), e.xMax+1, e.yMax+1)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(e.body), e.direction, e.pending)
	fmt.Fprintf(&b, "Head: %s, Apple: %s\n", e.Head(), e.apple)
	fmt.Fprintf(&b, "GameOver: %v, Won: %v\n", e.gameOver, e.won)
	return b.String()
}
