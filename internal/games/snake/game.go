package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of lines above the board (status + separator).
const hudHeight = 2

// Game wraps an Engine with the presentation state a terminal driver needs:
// pause, screen size and rendering.
type Game struct {
	engine  *Engine
	columns int
	rows    int
	seed    int64
	paused  bool
	screenW int
	screenH int
}

// NewGame creates a game for a columns x rows board. Call Reset to start it.
func NewGame(columns, rows int) *Game {
	return &Game{columns: columns, rows: rows}
}

// BoardID identifies the board size, e.g. "20x15". Scores are kept per board.
func BoardID(columns, rows int) string {
	return fmt.Sprintf("%dx%d", columns, rows)
}

// ID returns the board id of this game.
func (g *Game) ID() string {
	return BoardID(g.columns, g.rows)
}

// Reset starts a new game with a generator seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	engine := New(core.NewRand(cfg.Seed))
	if err := engine.Initialize(g.columns, g.rows); err != nil {
		return err
	}
	g.engine = engine
	return nil
}

// Engine exposes the simulation for drivers and tests.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.seed
}

// Paused reports whether ticks are currently ignored.
func (g *Game) Paused() bool {
	return g.paused
}

// Resize records the new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// TooSmall reports whether the screen cannot show the framed board and HUD.
func (g *Game) TooSmall() bool {
	screen := core.NewRect(0, 0, g.screenW, g.screenH-hudHeight)
	return !screen.Fits(g.columns+2, g.rows+2)
}

// Handle applies a steering or pause action.
func (g *Game) Handle(a core.Action) {
	if g.engine == nil || g.engine.IsGameOver() {
		return
	}
	if a == core.ActionPause {
		g.paused = !g.paused
		return
	}
	if g.paused {
		return
	}
	if d, ok := a.Direction(); ok {
		g.engine.RequestDirection(d)
	}
}

// Step runs one engine tick unless the game is paused or cannot be shown.
func (g *Game) Step() {
	if g.engine == nil || g.paused || g.TooSmall() {
		return
	}
	g.engine.Tick()
}

// GameOver reports whether the engine has reached its terminal state.
func (g *Game) GameOver() bool {
	return g.engine != nil && g.engine.IsGameOver()
}

// Score returns the current score.
func (g *Game) Score() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Score()
}
