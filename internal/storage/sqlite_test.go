package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{LevelID: "01-classic", Score: 40}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("01-classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("HighScore() = %d after reopen, expected 40", high)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{LevelID: "classic", Player: "ann", Score: 100},
		{LevelID: "classic", Player: "bob", Score: 50},
		{LevelID: "classic", Player: "cy", Score: 200, Won: true, LivesLeft: 2, Ticks: 3600},
		{LevelID: "classic", Player: "dee", Score: 100},
		{LevelID: "pyramid", Player: "ann", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	expected := []string{"cy", "ann", "dee", "bob"}
	if len(top) != len(expected) {
		t.Fatalf("len(TopRuns()) = %d, expected %d", len(top), len(expected))
	}
	for i, player := range expected {
		if top[i].Player != player {
			t.Errorf("TopRuns()[%d].Player = %q, expected %q", i, top[i].Player, player)
		}
	}

	best := top[0]
	if !best.Won || best.LivesLeft != 2 || best.Ticks != 3600 {
		t.Errorf("best run = %+v, expected won with 2 lives after 3600 ticks", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
	if time.Since(best.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent time", best.CreatedAt)
	}

	limited, err := store.TopRuns("classic", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(TopRuns(2)) = %d, expected 2", len(limited))
	}
}

func TestStoreSaveRunRequiresLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("expected an error for a run without a level")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("nothing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{LevelID: "a", Score: 10})
	store.SaveRun(Run{LevelID: "b", Score: 20})

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("a", 10)
	if len(runs) != 0 {
		t.Errorf("level a still has %d runs", len(runs))
	}
	runs, _ = store.TopRuns("b", 10)
	if len(runs) != 1 {
		t.Errorf("level b has %d runs, expected 1", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{LevelID: "a", Score: 10},
		{LevelID: "a", Score: 30, Won: true},
		{LevelID: "b", Score: 5},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(Stats()) = %d, expected 2", len(stats))
	}

	a := stats["a"]
	if a.Runs != 2 || a.Wins != 1 || a.HighScore != 30 || a.AvgScore != 20 {
		t.Errorf("stats[a] = %+v, expected 2 runs, 1 win, high 30, avg 20", a)
	}
	if stats["b"].Wins != 0 {
		t.Errorf("stats[b].Wins = %d, expected 0", stats["b"].Wins)
	}
}
