package component

import "time"

// ID identifies an object for its whole lifetime, never reused within a round
type ID uint64

// State is the lifecycle state of an object
type State uint8

const (
	StateFalling  State = iota // Launched, not yet cut
	StateSliced                // Cut this tick, kind effects applied
	StateDecaying              // Remnants animating until the decay delay elapses
	StateRemoved               // Evicted from the live set
)

func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateSliced:
		return "sliced"
	case StateDecaying:
		return "decaying"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// PartSide identifies a split half
type PartSide uint8

const (
	PartLeft   PartSide = iota // Fruit half going up-left
	PartRight                  // Fruit half going down-right
	PartTop                    // Ice shard thrown up
	PartBottom                 // Ice shard thrown down
)

// Part is one independently animated half of a cut object
type Part struct {
	Kinetic
	Side PartSide
}

// Particle is a short-lived decorative droplet
type Particle struct {
	Kinetic
	Born     time.Time
	Lifetime time.Duration
}

// Alive reports whether the particle is still within its lifetime
func (p *Particle) Alive(now time.Time) bool {
	return now.Sub(p.Born) < p.Lifetime
}

// Object is one launched item
// SlicedAt is set exactly while State is Sliced or Decaying
type Object struct {
	ID      ID
	Payload Payload
	Kinetic

	// Size is the collision diameter, fixed at creation
	Size float64

	State    State
	SlicedAt time.Time

	// Key is the discrete-input binding, 0 when unbound
	Key rune

	// Derived display data, populated on slice
	Parts     []Part
	Particles []Particle
}

// NewObject creates a falling object at the given kinetic state
func NewObject(id ID, payload Payload, k Kinetic, key rune) *Object {
	return &Object{
		ID:      id,
		Payload: payload,
		Kinetic: k,
		Size:    payload.Size(),
		State:   StateFalling,
		Key:     key,
	}
}

// Kind returns the object kind
func (o *Object) Kind() Kind {
	return o.Payload.Kind()
}

// CutThreshold is the maximum line distance from center that counts as a cut
func (o *Object) CutThreshold() float64 {
	return o.Size / o.Payload.CutDivisor()
}

// Live reports whether the object is still in the live set
func (o *Object) Live() bool {
	return o.State != StateRemoved
}

// Slice transitions Falling → Sliced, returns false for any other state
func (o *Object) Slice(now time.Time) bool {
	if o.State != StateFalling {
		return false
	}
	o.State = StateSliced
	o.SlicedAt = now
	return true
}

// Decay transitions Sliced → Decaying
func (o *Object) Decay() bool {
	if o.State != StateSliced {
		return false
	}
	o.State = StateDecaying
	return true
}

// Remove evicts a falling or decaying object
// Sliced objects must decay first so the state order is preserved
func (o *Object) Remove() bool {
	switch o.State {
	case StateFalling, StateDecaying:
		o.State = StateRemoved
		o.SlicedAt = time.Time{}
		return true
	default:
		return false
	}
}
