package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("database should be created under HOME: %v", err)
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun(Run{
		GameID:   "shooter",
		Player:   "alice",
		Score:    120,
		Kills:    12,
		Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.ID == 0 {
		t.Error("ID should be set")
	}
	if _, err := uuid.Parse(run.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", run.RunID, err)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	if got.Player != "alice" || got.Score != 120 || got.Kills != 12 || got.Duration != 95*time.Second {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled by the database")
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v", missing, err)
	}
}

func TestSaveRunKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	run, err := store.SaveRun(Run{RunID: id, GameID: "shooter", Score: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.RunID != id {
		t.Errorf("RunID = %q, expected %q", run.RunID, id)
	}

	if _, err := store.SaveRun(Run{RunID: id, GameID: "shooter", Score: 20}); err == nil {
		t.Error("duplicate RunID should be rejected")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 300, 400} {
		if _, err := store.SaveScore("shooter", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 999)

	scores, err := store.TopScores("shooter", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 400 || scores[1].Score != 300 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("shooter", 0)
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 runs, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 4; i++ {
		store.SaveRun(Run{GameID: "shooter", Score: i * 10})
	}

	runs, err := store.RecentRuns("shooter", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 40 || runs[1].Score != 30 {
		t.Errorf("expected newest first, got %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 300)
	store.SaveScore("shooter", 200)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("shooter", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "shooter", Score: 100, Kills: 10, Duration: 30 * time.Second})
	store.SaveRun(Run{GameID: "shooter", Score: 300, Kills: 30, Duration: 90 * time.Second})

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalKills != 40 || stats.TotalPlayTime != 2*time.Minute {
		t.Errorf("kills %d play time %v", stats.TotalKills, stats.TotalPlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
