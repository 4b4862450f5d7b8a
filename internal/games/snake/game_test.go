package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, screenW, screenH int) *Game {
	t.Helper()
	g := NewGame(20, 10)
	err := g.Reset(core.RuntimeConfig{Seed: 444, ScreenW: screenW, ScreenH: screenH})
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestBoardID(t *testing.T) {
	if id := BoardID(20, 15); id != "20x15" {
		t.Errorf("BoardID() = %q, expected 20x15", id)
	}
	if id := NewGame(7, 9).ID(); id != "7x9" {
		t.Errorf("ID() = %q, expected 7x9", id)
	}
}

func TestResetRejectsBadBoard(t *testing.T) {
	g := NewGame(0, 10)
	if err := g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24}); err == nil {
		t.Fatal("expected error for zero-width board")
	}
	g.Step() // must not panic without an engine
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 80, 24)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
	if !strings.Contains(content, "O") {
		t.Error("snake head should be drawn")
	}
	if !strings.Contains(content, "*") {
		t.Error("apple should be drawn")
	}
	if !strings.Contains(content, "┌") {
		t.Error("board frame should be drawn")
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := newTestGame(t, 80, 24)

	g.Handle(core.ActionPause)
	g.Step()
	if g.Engine().Ticks() != 0 {
		t.Error("paused game should not tick")
	}

	// Steering is ignored while paused.
	g.Handle(core.ActionUp)
	if g.Engine().PendingDirection() == core.DirUp {
		t.Error("paused game should ignore steering")
	}

	g.Handle(core.ActionPause)
	g.Handle(core.ActionDown)
	g.Step()
	if g.Engine().Ticks() != 1 || g.Engine().Direction() != core.DirDown {
		t.Errorf("resumed game should tick downward:\n%s", g.Engine().DebugState())
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := newTestGame(t, 10, 5)

	if !g.TooSmall() {
		t.Fatal("Game should detect window is too small")
	}
	g.Step()
	if g.Engine().Ticks() != 0 {
		t.Error("game should not tick while the board cannot be shown")
	}

	screen := core.NewScreen(30, 8)
	g.Resize(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}

func TestGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 80, 24)
	for i := 0; i < 50 && !g.GameOver(); i++ {
		g.Step()
	}
	if !g.GameOver() {
		t.Fatal("snake heading right should hit the wall")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected game over overlay")
	}
}
