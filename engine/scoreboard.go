package engine

import "github.com/lixenwraith/vi-slicer/scoreboard"

//go:generate go tool mockgen -destination=./mocks/scoreboard_mock.go -package=mocks . Scoreboard,Clock

// Scoreboard persists round results, implemented by scoreboard.Store
type Scoreboard interface {
	// AddScore appends a result and returns the stored entry
	AddScore(difficulty, name string, score int) (scoreboard.Entry, error)
	// TopScores returns the table for difficulty, highest first, at most 10
	TopScores(difficulty string) ([]scoreboard.Entry, error)
}

var _ Scoreboard = (*scoreboard.Store)(nil)

// bestScore returns the top table score, 0 when the table is empty or unreadable
func bestScore(board Scoreboard, difficulty string) (int, error) {
	if board == nil {
		return 0, nil
	}
	top, err := board.TopScores(difficulty)
	if err != nil || len(top) == 0 {
		return 0, err
	}
	return top[0].Score, nil
}
