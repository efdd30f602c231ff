package scoreboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/vi-slicer/parameter"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "scores.toml"))
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var tick int
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestTopScoresEmptyFile(t *testing.T) {
	s := newTestStore(t)
	top, err := s.TopScores("easy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected empty table, got %d entries", len(top))
	}
}

func TestAddScoreRanksHighestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, score := range []int{5, 12, 3, 12} {
		if _, err := s.AddScore("easy", "ada", score); err != nil {
			t.Fatalf("AddScore failed: %v", err)
		}
	}

	top, err := s.TopScores("easy")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{12, 12, 5, 3}
	if len(top) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(top))
	}
	for i, e := range top {
		if e.Score != want[i] {
			t.Errorf("Position %d: expected %d, got %d", i+1, want[i], e.Score)
		}
	}
	// Earlier of the tied entries stays ahead
	if !top[0].Timestamp.Before(top[1].Timestamp) {
		t.Error("Expected earlier tied entry to rank first")
	}
}

func TestAddScoreCapsTable(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= parameter.ScoreboardSize+5; i++ {
		if _, err := s.AddScore("hard", "bob", i); err != nil {
			t.Fatal(err)
		}
	}

	top, _ := s.TopScores("hard")
	if len(top) != parameter.ScoreboardSize {
		t.Fatalf("Expected %d entries, got %d", parameter.ScoreboardSize, len(top))
	}
	if top[0].Score != parameter.ScoreboardSize+5 || top[len(top)-1].Score != 6 {
		t.Errorf("Unexpected table bounds %d..%d", top[0].Score, top[len(top)-1].Score)
	}

	entry, err := s.AddScore("hard", "low", 1)
	if err != nil {
		t.Fatal(err)
	}
	top, _ = s.TopScores("hard")
	if RankOf(top, entry.ID) != 0 {
		t.Error("Expected low score to fall off the table")
	}
}

func TestTablesArePerDifficulty(t *testing.T) {
	s := newTestStore(t)
	s.AddScore("Easy", "a", 10)
	s.AddScore("hard", "b", 20)

	easy, _ := s.TopScores("easy")
	hard, _ := s.TopScores("HARD")
	if len(easy) != 1 || easy[0].Name != "a" {
		t.Errorf("Unexpected easy table %+v", easy)
	}
	if len(hard) != 1 || hard[0].Name != "b" {
		t.Errorf("Unexpected hard table %+v", hard)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.toml")
	s := NewStore(path)
	first, err := s.AddScore("medium", "ada", 7)
	if err != nil {
		t.Fatalf("AddScore failed: %v", err)
	}
	s.AddScore("medium", "bob", 9)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected scoreboard file, got %v", err)
	}

	reloaded := NewStore(path)
	top, err := reloaded.TopScores("medium")
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 2 || top[0].Name != "bob" || top[1].ID != first.ID {
		t.Errorf("Unexpected reloaded table %+v", top)
	}
	if best, _ := reloaded.Best("medium"); best != 9 {
		t.Errorf("Expected best 9, got %d", best)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the scoreboard file, found %d entries", len(entries))
	}
}

func TestCorruptFileReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.toml")
	if err := os.WriteFile(path, []byte("tables = [[[ not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	if _, err := s.TopScores("easy"); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
	if _, err := s.AddScore("easy", "a", 1); err == nil {
		t.Error("Expected AddScore to fail on corrupt file")
	}
}

func TestFailedSaveKeepsTable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	s := NewStore(filepath.Join(dir, "scores.toml"))
	if _, err := s.AddScore("easy", "ada", 7); err != nil {
		t.Fatalf("AddScore failed: %v", err)
	}

	// A regular file where the directory was makes every write fail
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.AddScore("easy", "bob", 99); err == nil {
		t.Fatal("Expected save error")
	}
	if _, err := s.AddScore("hard", "bob", 5); err == nil {
		t.Fatal("Expected save error")
	}

	top, err := s.TopScores("easy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(top) != 1 || top[0].Name != "ada" {
		t.Errorf("Expected only the saved entry, got %+v", top)
	}
	if hard, _ := s.TopScores("hard"); len(hard) != 0 {
		t.Errorf("Expected no hard table, got %d entries", len(hard))
	}
}

func TestRank(t *testing.T) {
	s := NewStore("")
	if r, _ := s.Rank("easy", 0); r != 1 {
		t.Errorf("Expected rank 1 on empty table, got %d", r)
	}
	for i := 0; i < parameter.ScoreboardSize; i++ {
		s.AddScore("easy", "x", 10)
	}
	if r, _ := s.Rank("easy", 10); r != 0 {
		t.Errorf("Expected tie with full table to miss, got %d", r)
	}
	if r, _ := s.Rank("easy", 11); r != 1 {
		t.Errorf("Expected rank 1, got %d", r)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewStore("")
	entry, err := s.AddScore("easy", "  ada  ", 3)
	if err != nil {
		t.Fatalf("Memory store should not fail: %v", err)
	}
	if entry.Name != "ada" {
		t.Errorf("Expected trimmed name, got %q", entry.Name)
	}
	if entry.ID == "" {
		t.Error("Expected entry id")
	}
}
