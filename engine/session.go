package engine

import (
	"github.com/lixenwraith/vi-slicer/event"
)

// Session runs consecutive rounds and keeps the best score across restarts
// Round time is read through a PausableClock so pausing stops every timer
type Session struct {
	cfg   RoundConfig
	clock *PausableClock
	rng   Random
	board Scoreboard

	round     *Round
	highScore int
	rounds    int
}

// NewSession seeds the high score from the scoreboard and starts the first round
// A scoreboard read failure leaves the high score at 0 and is returned
// alongside a usable session
func NewSession(cfg RoundConfig, clock *PausableClock, rng Random, board Scoreboard) (*Session, error) {
	if clock == nil {
		clock = NewPausableClock(nil)
	}

	best, boardErr := bestScore(board, cfg.Difficulty.Name)
	s := &Session{
		cfg:       cfg,
		clock:     clock,
		rng:       rng,
		board:     board,
		highScore: max(best, cfg.HighScore),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, boardErr
}

// Restart discards the current round and starts a fresh one
// Only the session high score carries over
func (s *Session) Restart() error {
	if s.round != nil {
		s.highScore = max(s.highScore, s.round.HighScore())
	}

	cfg := s.cfg
	cfg.HighScore = s.highScore
	round, err := NewRound(cfg, s.clock, s.rng, s.board)
	if err != nil {
		return err
	}
	s.clock.Resume()
	s.round = round
	s.rounds++
	return nil
}

// Tick advances the round unless paused
func (s *Session) Tick(in Input) Frame {
	if s.clock.IsPaused() {
		snap := s.round.Snapshot()
		snap.Paused = true
		return Frame{Snapshot: snap}
	}

	f := s.round.Tick(in)
	s.highScore = max(s.highScore, s.round.HighScore())
	return f
}

// TogglePause pauses or resumes, returns true if now paused
// Ended rounds cannot be paused
func (s *Session) TogglePause() bool {
	if s.round.Terminal() && !s.clock.IsPaused() {
		return false
	}
	// Pointer releases during a pause never reach the round
	s.round.EndStroke()
	return s.clock.Toggle()
}

// Paused reports whether the session is paused
func (s *Session) Paused() bool {
	return s.clock.IsPaused()
}

// Quit ends the current round and returns its end events
func (s *Session) Quit() []event.Event {
	s.clock.Resume()
	events := s.round.Quit()
	s.highScore = max(s.highScore, s.round.HighScore())
	return events
}

// Round returns the current round
func (s *Session) Round() *Round {
	return s.round
}

// HighScore returns the best score seen this session
func (s *Session) HighScore() int {
	return s.highScore
}

// Rounds returns how many rounds were started
func (s *Session) Rounds() int {
	return s.rounds
}

// Clock returns the session game clock
func (s *Session) Clock() *PausableClock {
	return s.clock
}
