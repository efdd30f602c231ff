package engine

import (
	"sync"
	"time"
)

// PausableClock derives game time from a source clock minus all paused spans
// While paused, Now stays at the instant Pause was called
type PausableClock struct {
	mu sync.RWMutex

	source Clock

	paused    bool
	pausedAt  time.Time     // Source time when the current pause began
	totalIdle time.Duration // Sum of completed pauses
}

// NewPausableClock creates a running clock over source, the wall clock if nil
func NewPausableClock(source Clock) *PausableClock {
	if source == nil {
		source = NewTimeProvider()
	}
	return &PausableClock{source: source}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pausedAt.Add(-pc.totalIdle)
	}
	return pc.source.Now().Add(-pc.totalIdle)
}

// RealTime returns source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

// Resume continues game time advancement, no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalIdle += pc.source.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and returns true if now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalIdle
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
