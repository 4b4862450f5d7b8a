package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	entries := []storage.ScoreEntry{
		{Board: "10x10", Score: 4, Length: 5, Player: "bob"},
		{Board: "20x15", Score: 12, Length: 13},
		{Board: "20x15", Score: 30, Length: 31, Player: "alice"},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardSelectsInitialBoard(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "20x15", 100, 30)

	if m.Board() != "20x15" {
		t.Fatalf("Board() = %q, expected 20x15", m.Board())
	}
	if len(m.scores) != 2 || m.scores[0].Score != 30 {
		t.Errorf("unexpected scores: %+v", m.scores)
	}
	if !strings.Contains(m.View(), "Board 20x15") {
		t.Error("title should name the board")
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "", 60, 30)
	if m.Board() != "10x10" {
		t.Fatalf("first board = %q, expected 10x10", m.Board())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != "20x15" {
		t.Errorf("after tab Board() = %q, expected 20x15", m.Board())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != "10x10" {
		t.Errorf("tab should wrap around, got %q", m.Board())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Board() != "20x15" {
		t.Errorf("shift+tab should wrap backwards, got %q", m.Board())
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if m.Board() != "" {
		t.Errorf("Board() = %q, expected empty", m.Board())
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 9, Length: 10, Player: "carol"},
		{Score: 3, Length: 4},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "9" || rows[0][2] != "10" || rows[0][3] != "carol" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][3] != "local" {
		t.Errorf("empty player should show as local, got %q", rows[1][3])
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View should be empty after quitting")
	}
}
