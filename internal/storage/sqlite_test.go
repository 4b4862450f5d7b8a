package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, board string, score int) int64 {
	t.Helper()
	id, err := store.SaveScore(ScoreEntry{Board: board, Score: score, Length: score + 1})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "20x15", 12)
	store.Close()

	// Migrations already applied: second open must succeed and keep data.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("20x15")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "20x15", 10)
	save(t, store, "20x15", 5)
	save(t, store, "20x15", 20)
	save(t, store, "10x10", 50)

	scores, err := store.TopScores("20x15", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Length != 21 || scores[0].Board != "20x15" {
		t.Errorf("Entry fields not stored: %+v", scores[0])
	}
	if scores[0].RunID == "" {
		t.Error("RunID should be generated")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	other, err := store.TopScores("10x10", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for 10x10, got %d", len(other))
	}
}

func TestStoreRunIDUnique(t *testing.T) {
	store := openTestStore(t)

	entry := ScoreEntry{RunID: "run-1", Board: "5x5", Score: 3, Length: 4, Player: "alice", Seed: 77, Ticks: 40}
	if _, err := store.SaveScore(entry); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(entry); err == nil {
		t.Error("saving the same run twice should fail")
	}

	got, err := store.ScoreByRunID("run-1")
	if err != nil {
		t.Fatalf("ScoreByRunID() failed: %v", err)
	}
	if got == nil || got.Player != "alice" || got.Seed != 77 || got.Ticks != 40 {
		t.Errorf("ScoreByRunID() = %+v", got)
	}

	missing, err := store.ScoreByRunID("nope")
	if err != nil || missing != nil {
		t.Errorf("ScoreByRunID(missing) = %+v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("20x15")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	save(t, store, "20x15", 100)
	save(t, store, "20x15", 300)
	save(t, store, "20x15", 200)

	high, err = store.HighScore("20x15")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "20x15", 100)
	save(t, store, "20x15", 200)
	save(t, store, "10x10", 300)

	if err := store.ClearScores("20x15"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("20x15", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("10x10", 10)
	if len(kept) != 1 {
		t.Errorf("Other boards should not be affected by clearing")
	}
}

func TestStoreAllScoresAndBoards(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "test", i*10)
	}
	save(t, store, "alpha", 1)

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}

	boards, err := store.Boards()
	if err != nil {
		t.Fatalf("Boards() failed: %v", err)
	}
	if len(boards) != 2 || boards[0] != "alpha" || boards[1] != "test" {
		t.Errorf("Boards() = %v, expected [alpha test]", boards)
	}
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetBoardStats("none")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	save(t, store, "20x15", 10)
	save(t, store, "20x15", 30)

	stats, err := store.GetBoardStats("20x15")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
