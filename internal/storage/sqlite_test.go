package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTest(t)

	runs := []Run{
		{Score: 100, Round: 3, Difficulty: "normal", Seed: 1},
		{Score: 50, Round: 2, Difficulty: "easy", Seed: 2},
		{Score: 200, Round: 5, Difficulty: "hard", Seed: 3},
		{Score: 100, Round: 4, Difficulty: "normal", Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	if top[0].Score != 200 || top[0].Difficulty != "hard" || top[0].Seed != 3 {
		t.Errorf("top[0] = %+v", top[0])
	}
	// Equal scores: the later round ranks first.
	if top[1].Round != 4 || top[2].Round != 3 {
		t.Errorf("tie order = rounds %d, %d; expected 4, 3", top[1].Round, top[2].Round)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestHighScoreAndStats(t *testing.T) {
	store := openTest(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty HighScore() = %d, expected 0", hs)
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", st)
	}

	for _, r := range []Run{{Score: 30, Round: 2}, {Score: 90, Round: 6}} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	hs, _ = store.HighScore()
	if hs != 90 {
		t.Errorf("HighScore() = %d, expected 90", hs)
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 90 || st.BestRound != 6 || st.AvgScore != 60 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTest(t)

	if _, err := store.SaveRun(Run{Score: 10, Round: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}
