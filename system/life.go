package system

import (
	"time"

	"github.com/lixenwraith/vi-slicer/event"
	"github.com/lixenwraith/vi-slicer/parameter"
)

// LifePolicy counts strikes, applies the ice freeze and decides termination
type LifePolicy struct {
	rng        Random
	maxStrikes int
	strikes    int

	terminal bool
	reason   event.EndReason

	frozenUntil time.Time
}

// NewLifePolicy creates a policy ending the round at maxStrikes misses
func NewLifePolicy(maxStrikes int, rng Random) *LifePolicy {
	if maxStrikes < 1 {
		maxStrikes = parameter.MaxStrikes
	}
	return &LifePolicy{rng: rng, maxStrikes: maxStrikes}
}

// RecordMiss counts an unsliced fruit, returns true if this ended the round
func (p *LifePolicy) RecordMiss() bool {
	if p.terminal {
		return false
	}
	p.strikes++
	if p.strikes >= p.maxStrikes {
		p.end(event.EndStrikes)
		return true
	}
	return false
}

// BombSliced ends the round regardless of strikes
func (p *LifePolicy) BombSliced() {
	p.end(event.EndBomb)
}

// Quit ends the round on player request
func (p *LifePolicy) Quit() {
	p.end(event.EndQuit)
}

func (p *LifePolicy) end(reason event.EndReason) {
	if p.terminal {
		return
	}
	p.terminal = true
	p.reason = reason
}

// IceSliced freezes the round for a random 3-5s from now
// An earlier, longer freeze is never shortened
func (p *LifePolicy) IceSliced(now time.Time) time.Time {
	span := int64(parameter.FreezeMaxDuration-parameter.FreezeMinDuration) / int64(time.Millisecond)
	d := parameter.FreezeMinDuration + time.Duration(p.rng.Intn(int(span)+1))*time.Millisecond
	until := now.Add(d)
	if until.After(p.frozenUntil) {
		p.frozenUntil = until
	}
	return p.frozenUntil
}

// Frozen reports whether spawn and motion are suspended at now
func (p *LifePolicy) Frozen(now time.Time) bool {
	return now.Before(p.frozenUntil)
}

// FrozenUntil returns the freeze deadline, zero if never frozen
func (p *LifePolicy) FrozenUntil() time.Time {
	return p.frozenUntil
}

// FreezeRemaining returns the time left in the freeze, 0 when not frozen
func (p *LifePolicy) FreezeRemaining(now time.Time) time.Duration {
	if !p.Frozen(now) {
		return 0
	}
	return p.frozenUntil.Sub(now)
}

// Strikes returns the missed fruit count
func (p *LifePolicy) Strikes() int {
	return p.strikes
}

// MaxStrikes returns the strike limit
func (p *LifePolicy) MaxStrikes() int {
	return p.maxStrikes
}

// Terminal reports whether the round has ended
func (p *LifePolicy) Terminal() bool {
	return p.terminal
}

// Reason returns why the round ended, valid only when Terminal
func (p *LifePolicy) Reason() event.EndReason {
	return p.reason
}
