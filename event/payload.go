package event

import (
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/scoreboard"
)

// Event is a notification produced during a tick
type Event struct {
	Type    EventType
	Time    time.Time
	Payload any
}

// SlicedPayload identifies the cut object
type SlicedPayload struct {
	ID      component.ID
	Kind    component.Kind
	Variant component.Variant // Fruit only
}

// ComboPayload describes a scoring step
type ComboPayload struct {
	Points int
	Size   int
	Label  string
	Medal  string
}

// MissPayload describes a strike
type MissPayload struct {
	ID         component.ID
	Strikes    int
	MaxStrikes int
}

// FreezePayload carries the freeze deadline
type FreezePayload struct {
	Until time.Time
}

// EndReason tells why a round terminated
type EndReason int

const (
	EndStrikes EndReason = iota // Too many missed fruit
	EndBomb                     // Bomb sliced
	EndQuit                     // Player abandoned the round
)

func (r EndReason) String() string {
	switch r {
	case EndStrikes:
		return "strikes"
	case EndBomb:
		return "bomb"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// RoundEndedPayload carries the final result and the persisted entry
type RoundEndedPayload struct {
	Reason       EndReason
	Score        int
	HighScore    int
	NewHighScore bool
	// Entry is the candidate handed to the scoreboard
	Entry scoreboard.Entry
	// Rank is the 1-based table position, 0 when not ranked or not persisted
	Rank int
	// Err is the scoreboard failure, if any; the round still ends
	Err error
}
