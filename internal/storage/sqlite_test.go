package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/redblock/internal/core"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("redblock", 10); err != nil {
		t.Fatalf("SaveScore() on memory store failed: %v", err)
	}
	if high, _ := store.HighScore("redblock"); high != 10 {
		t.Errorf("Expected high score 10, got %d", high)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("redblock", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("redblock", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100) //nolint:errcheck
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

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 scores without a limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("redblock")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("redblock", 100) //nolint:errcheck
	store.SaveScore("redblock", 300) //nolint:errcheck
	store.SaveScore("redblock", 200) //nolint:errcheck

	high, err = store.HighScore("redblock")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun(Run{
		GameID:     "redblock",
		Outcome:    core.OutcomeWin,
		Score:      640,
		Seed:       42,
		PathLength: 23,
		Hazards:    4,
		ElapsedMs:  15500,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run ID %q should be a uuid: %v", runID, err)
	}

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if r.Outcome != core.OutcomeWin || r.Score != 640 || r.Seed != 42 ||
		r.PathLength != 23 || r.Hazards != 4 || r.ElapsedMs != 15500 {
		t.Errorf("run fields not preserved: %+v", r)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID() for unknown id = (%v, %v), expected (nil, nil)", missing, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	got, err := store.SaveRun(Run{RunID: id, GameID: "redblock", Outcome: core.OutcomeLose})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() = %q, expected the given id %q", got, id)
	}

	if _, err := store.SaveRun(Run{RunID: id, GameID: "redblock", Outcome: core.OutcomeLose}); err == nil {
		t.Error("duplicate run id should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "redblock", Outcome: core.OutcomeLose, Seed: int64(i)}) //nolint:errcheck
	}
	store.SaveRun(Run{GameID: "other", Outcome: core.OutcomeWin}) //nolint:errcheck

	runs, err := store.RecentRuns("redblock", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("runs not newest first: %+v", runs)
	}
}

func TestStoreRecordRound(t *testing.T) {
	store := openTestStore(t)

	win := core.RunSummary{Outcome: core.OutcomeWin, Score: 590, PathLength: 18, ElapsedMs: 11000}
	lose := core.RunSummary{Outcome: core.OutcomeLose, PathLength: 25, Hazards: 3, ElapsedMs: 60016}

	if _, err := store.RecordRound("redblock", win); err != nil {
		t.Fatalf("RecordRound(win) failed: %v", err)
	}
	if _, err := store.RecordRound("redblock", lose); err != nil {
		t.Fatalf("RecordRound(lose) failed: %v", err)
	}

	scores, _ := store.TopScores("redblock", 10)
	if len(scores) != 1 || scores[0].Score != 590 {
		t.Errorf("only the scoring round should reach the high scores, got %v", scores)
	}
	runs, _ := store.RecentRuns("redblock", 10)
	if len(runs) != 2 {
		t.Errorf("both rounds should be in the history, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("redblock")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.FastestWin != 0 || empty.WinRate() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeWin, Score: 500, ElapsedMs: 20000}) //nolint:errcheck
	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeWin, Score: 300, ElapsedMs: 40000}) //nolint:errcheck
	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeLose, ElapsedMs: 60016})            //nolint:errcheck
	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeLose})                              //nolint:errcheck

	stats, err := store.GetGameStats("redblock")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Runs != 4 || stats.Wins != 2 || stats.Losses != 2 {
		t.Errorf("counts = %d runs, %d wins, %d losses", stats.Runs, stats.Wins, stats.Losses)
	}
	if stats.HighScore != 500 {
		t.Errorf("HighScore = %d, expected 500", stats.HighScore)
	}
	if stats.AvgScore != 400 {
		t.Errorf("AvgScore = %v, expected 400", stats.AvgScore)
	}
	if stats.FastestWin != 20000 {
		t.Errorf("FastestWin = %d, expected 20000", stats.FastestWin)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate = %v, expected 0.5", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeWin, Score: 100}) //nolint:errcheck
	store.RecordRound("other", core.RunSummary{Outcome: core.OutcomeWin, Score: 300})    //nolint:errcheck

	if err := store.ClearScores("redblock"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("redblock", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("redblock", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected")
	}
}
