package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady GameStateType = "ready"
	StateOver  GameStateType = "game_over"
	StateWon   GameStateType = "won"
)

// Snapshot captures the observable game state for determinism testing and
// for drivers that report progress.
type Snapshot struct {
	Tick     uint64
	Columns  int
	Rows     int
	Score    int
	SnakeLen int
	Head     core.Position
	Dir      core.Direction
	Apple    core.Position
	State    GameStateType
}

// State returns the state machine state.
func (e *Engine) State() GameStateType {
	switch {
	case e.won:
		return StateWon
	case e.gameOver:
		return StateOver
	default:
		return StateReady
	}
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.ticks,
		Columns:  e.xMax + 1,
		Rows:     e.yMax + 1,
		Score:    e.Score(),
		SnakeLen: len(e.body),
		Head:     e.Head(),
		Dir:      e.direction,
		Apple:    e.apple,
		State:    e.State(),
	}
}
