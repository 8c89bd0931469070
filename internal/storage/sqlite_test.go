package storage

import (
	"os"
	"path/filepath"
	"sync"
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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.weatherwhether/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".weatherwhether", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("weatherwhether")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() = %d, expected 0", score)
	}

	entry, err := store.Entry("weatherwhether")
	if err != nil {
		t.Fatalf("Entry() failed: %v", err)
	}
	if entry != nil {
		t.Errorf("Entry() = %+v, expected nil", entry)
	}
}

func TestStoreSaveHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		candidate int
		changed   bool
		stored    int
	}{
		{0, false, 0},
		{2, true, 2},
		{1, false, 2},
		{2, false, 2},
		{3, true, 3},
		{-5, false, 3},
	}

	for i, step := range steps {
		changed, err := store.SaveHighScore("weatherwhether", step.candidate)
		if err != nil {
			t.Fatalf("step %d: SaveHighScore() failed: %v", i, err)
		}
		if changed != step.changed {
			t.Errorf("step %d: SaveHighScore(%d) changed = %v, expected %v", i, step.candidate, changed, step.changed)
		}
		got, _ := store.HighScore("weatherwhether")
		if got != step.stored {
			t.Errorf("step %d: HighScore() = %d, expected %d", i, got, step.stored)
		}
	}

	entry, err := store.Entry("weatherwhether")
	if err != nil || entry == nil {
		t.Fatalf("Entry() = %v, %v", entry, err)
	}
	if entry.Score != 3 {
		t.Errorf("Entry().Score = %d, expected 3", entry.Score)
	}
}

func TestStoreGamesAreIndependent(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore("a", 3)
	store.SaveHighScore("b", 1)

	if got, _ := store.HighScore("a"); got != 3 {
		t.Errorf("HighScore(a) = %d, expected 3", got)
	}
	if got, _ := store.HighScore("b"); got != 1 {
		t.Errorf("HighScore(b) = %d, expected 1", got)
	}
}

func TestStoreClearHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore("weatherwhether", 4)
	if err := store.ClearHighScore("weatherwhether"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}
	if got, _ := store.HighScore("weatherwhether"); got != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", got)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveHighScore("weatherwhether", 2)
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	if got, _ := store2.HighScore("weatherwhether"); got != 2 {
		t.Errorf("HighScore() after reopen = %d, expected 2", got)
	}
}

func TestGameHighScore(t *testing.T) {
	store := openTestStore(t)
	hs := store.ForGame("weatherwhether")

	if changed, err := hs.SaveHighScore(3); err != nil || !changed {
		t.Fatalf("SaveHighScore(3) = %v, %v", changed, err)
	}
	if got, err := hs.LoadHighScore(); err != nil || got != 3 {
		t.Errorf("LoadHighScore() = %d, %v, expected 3", got, err)
	}
}

func TestMemoryHighScore(t *testing.T) {
	var m Memory

	if changed, _ := m.SaveHighScore(0); changed {
		t.Error("saving 0 over 0 should not change")
	}
	if changed, _ := m.SaveHighScore(2); !changed {
		t.Error("saving 2 over 0 should change")
	}
	if changed, _ := m.SaveHighScore(2); changed {
		t.Error("saving an equal score should not change")
	}

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			m.SaveHighScore(v)
		}(i)
	}
	wg.Wait()

	if got, _ := m.LoadHighScore(); got != 10 {
		t.Errorf("LoadHighScore() = %d, expected 10", got)
	}
}
