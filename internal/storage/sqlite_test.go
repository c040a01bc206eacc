package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/usmanser71/runner-game-pro/internal/config"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreProfileDefaults(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProfile("nobody")
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if p.BestScore != 0 || p.TotalCoins != 0 || p.SkinID != config.DefaultSkin {
		t.Errorf("LoadProfile() = %+v, expected zeros and default skin", p)
	}
}

func TestStoreProfileRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveTotalCoins("alice", 45); err != nil {
		t.Fatalf("SaveTotalCoins() failed: %v", err)
	}
	if err := store.SaveBestScore("alice", 310); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if err := store.SaveSkin("alice", "skin_cyan"); err != nil {
		t.Fatalf("SaveSkin() failed: %v", err)
	}
	// Later writes overwrite, other columns are kept
	if err := store.SaveTotalCoins("alice", 15); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveBestScore("bob", 5); err != nil {
		t.Fatal(err)
	}

	p, err := store.LoadProfile("alice")
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if p.BestScore != 310 || p.TotalCoins != 15 || p.SkinID != "skin_cyan" {
		t.Errorf("alice = %+v, expected {310 15 skin_cyan}", p)
	}

	bob, err := store.LoadProfile("bob")
	if err != nil {
		t.Fatal(err)
	}
	if bob.BestScore != 5 || bob.TotalCoins != 0 || bob.SkinID != config.DefaultSkin {
		t.Errorf("bob = %+v, expected {5 0 %s}", bob, config.DefaultSkin)
	}
}

func TestPlayerProfile(t *testing.T) {
	store := openTestStore(t)
	pp := store.Profile("carol")

	if err := pp.SaveSkin("skin_gold"); err != nil {
		t.Fatal(err)
	}
	if err := pp.SaveTotalCoins(7); err != nil {
		t.Fatal(err)
	}
	if err := pp.SaveBestScore(99); err != nil {
		t.Fatal(err)
	}
	if err := pp.SaveRun(99, 10, 12*time.Second); err != nil {
		t.Fatal(err)
	}

	p, err := pp.LoadProfile()
	if err != nil {
		t.Fatal(err)
	}
	if p.SkinID != "skin_gold" || p.TotalCoins != 7 || p.BestScore != 99 {
		t.Errorf("LoadProfile() = %+v", p)
	}

	runs, err := store.PlayerRuns("carol", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Score != 99 || runs[0].Coins != 10 || runs[0].Duration != 12*time.Second {
		t.Errorf("PlayerRuns() = %+v", runs)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Player: "alice", Score: 100, Coins: 5, Duration: 20 * time.Second},
		{Player: "bob", Score: 50},
		{Player: "alice", Score: 200, Coins: 15},
		{Player: "bob", Score: 150},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []int{200, 150, 100}
	for i, r := range runs {
		if r.Score != expected[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, expected[i])
		}
	}
	if runs[2].Duration != 20*time.Second {
		t.Errorf("Duration = %v, expected 20s", runs[2].Duration)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	recent, err := store.PlayerRuns("bob", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Score != 150 {
		t.Errorf("PlayerRuns(bob) = %+v, expected newest first", recent)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty history = %d, expected 0", high)
	}

	store.SaveRun(RunRecord{Player: LocalPlayer, Score: 42})
	store.SaveRun(RunRecord{Player: LocalPlayer, Score: 17})
	if err := store.SaveBestScore(LocalPlayer, 42); err != nil {
		t.Fatal(err)
	}

	high, _ = store.HighScore()
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	// Clearing history keeps the profile
	p, _ := store.LoadProfile(LocalPlayer)
	if p.BestScore != 42 {
		t.Errorf("BestScore = %d after ClearRuns, expected 42", p.BestScore)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty history = %+v", empty)
	}

	store.SaveRun(RunRecord{Player: "alice", Score: 10, Coins: 5})
	store.SaveRun(RunRecord{Player: "alice", Score: 30, Coins: 10})
	store.SaveRun(RunRecord{Player: "bob", Score: 80})

	all, err := store.Stats("")
	if err != nil {
		t.Fatal(err)
	}
	if all.Runs != 3 || all.HighScore != 80 || all.TotalCoins != 15 {
		t.Errorf("Stats(all) = %+v", all)
	}

	alice, err := store.Stats("alice")
	if err != nil {
		t.Fatal(err)
	}
	if alice.Runs != 2 || alice.HighScore != 30 || alice.AvgScore != 20 {
		t.Errorf("Stats(alice) = %+v", alice)
	}
}
