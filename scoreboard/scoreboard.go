// Package scoreboard keeps a ranked high-score table per difficulty
package scoreboard

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-slicer/parameter"
)

// Entry is one persisted score
type Entry struct {
	ID        string    `toml:"id"`
	Name      string    `toml:"name"`
	Score     int       `toml:"score"`
	Timestamp time.Time `toml:"timestamp"`
}

type fileData struct {
	Tables map[string][]Entry `toml:"tables"`
}

// Store is a file-backed scoreboard
// An empty path keeps tables in memory only
type Store struct {
	mu     sync.Mutex
	path   string
	tables map[string][]Entry
	loaded bool

	// now is replaceable for tests
	now func() time.Time
}

// NewStore creates a store persisted at path
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		tables: make(map[string][]Entry),
		now:    time.Now,
	}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// AddScore appends a score, re-ranks and persists the difficulty table
// The returned entry is the candidate even when it did not make the table
// A failed save leaves the table as it was
func (s *Store) AddScore(difficulty, name string, score int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Score:     score,
		Timestamp: s.now().UTC().Truncate(time.Second),
	}

	key := tableKey(difficulty)
	prev, existed := s.tables[key]
	s.tables[key] = rank(append(append([]Entry(nil), prev...), entry))

	// Tables only hold what reached the file
	if err := s.save(); err != nil {
		if existed {
			s.tables[key] = prev
		} else {
			delete(s.tables, key)
		}
		return entry, err
	}
	return entry, nil
}

// TopScores returns the table for a difficulty, highest first, at most ten entries
func (s *Store) TopScores(difficulty string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	table := s.tables[tableKey(difficulty)]
	out := make([]Entry, len(table))
	copy(out, table)
	return out, nil
}

// Best returns the top score of a difficulty, 0 for an empty table
func (s *Store) Best(difficulty string) (int, error) {
	top, err := s.TopScores(difficulty)
	if err != nil || len(top) == 0 {
		return 0, err
	}
	return top[0].Score, nil
}

// Rank returns the 1-based position a new score would take,
// 0 if it would not enter the table
func (s *Store) Rank(difficulty string, score int) (int, error) {
	top, err := s.TopScores(difficulty)
	if err != nil {
		return 0, err
	}
	for i, e := range top {
		// Ties rank below existing entries
		if score > e.Score {
			return i + 1, nil
		}
	}
	if len(top) < parameter.ScoreboardSize {
		return len(top) + 1, nil
	}
	return 0, nil
}

// RankOf returns the 1-based position of an entry id in a table, 0 if absent
func RankOf(table []Entry, id string) int {
	for i, e := range table {
		if e.ID == id {
			return i + 1
		}
	}
	return 0
}

// rank sorts highest first, keeping earlier entries ahead on ties, and caps the table
func rank(table []Entry) []Entry {
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Score > table[j].Score
	})
	if len(table) > parameter.ScoreboardSize {
		table = table[:parameter.ScoreboardSize]
	}
	return table
}

func tableKey(difficulty string) string {
	key := strings.ToLower(strings.TrimSpace(difficulty))
	if key == "" {
		return "default"
	}
	return key
}

// load reads the file once; a missing file is an empty scoreboard
func (s *Store) load() error {
	if s.loaded || s.path == "" {
		s.loaded = true
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read scoreboard")
	}

	var fd fileData
	if _, err := toml.Decode(string(data), &fd); err != nil {
		return errors.Wrapf(err, "decode scoreboard %s", s.path)
	}
	for key, table := range fd.Tables {
		s.tables[tableKey(key)] = rank(table)
	}
	s.loaded = true
	return nil
}

// save writes through a temp file and rename so a crash never truncates the table
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fileData{Tables: s.tables}); err != nil {
		return errors.Wrap(err, "encode scoreboard")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create scoreboard dir")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create scoreboard temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write scoreboard")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close scoreboard")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "replace scoreboard")
	}
	return nil
}
