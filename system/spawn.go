package system

import (
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/config"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// SpawnPolicy decides when to launch a batch and what it contains
// The interval only tightens during a round; a new round needs a new policy
type SpawnPolicy struct {
	profile config.Difficulty
	rng     Random

	interval  time.Duration
	lastSpawn time.Time
	batches   int

	nextID     component.ID
	fruitCount int
}

// NewSpawnPolicy creates a policy whose first batch fires one interval after start
func NewSpawnPolicy(profile config.Difficulty, rng Random, start time.Time) *SpawnPolicy {
	return &SpawnPolicy{
		profile:   profile,
		rng:       rng,
		interval:  profile.SpawnInterval,
		lastSpawn: start,
		nextID:    1,
	}
}

// Interval returns the current spawn interval
func (s *SpawnPolicy) Interval() time.Duration {
	return s.interval
}

// Batches returns how many batches have fired
func (s *SpawnPolicy) Batches() int {
	return s.batches
}

// Due reports whether more than one interval has passed since the last batch
func (s *SpawnPolicy) Due(now time.Time) bool {
	return now.Sub(s.lastSpawn) > s.interval
}

// Update fires a batch when due and ratchets the interval toward the floor
// Returns nil when nothing spawns
func (s *SpawnPolicy) Update(now time.Time) []*component.Object {
	if !s.Due(now) {
		return nil
	}

	count := 1 + s.rng.Intn(s.profile.BatchSize)
	batch := make([]*component.Object, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, s.Create(s.ChooseKind()))
	}

	s.lastSpawn = now
	s.batches++
	s.interval = max(s.profile.MinInterval, s.interval-parameter.SpawnRatchetStep)

	return batch
}

// ChooseKind draws a kind by weight; zero-weight kinds are never chosen
func (s *SpawnPolicy) ChooseKind() component.Kind {
	w := s.profile.Weights
	r := s.rng.Float64() * w.Total()

	chosen := component.KindFruit
	for k := component.Kind(0); int(k) < component.KindCount; k++ {
		weight := w.For(k)
		if weight <= 0 {
			continue
		}
		chosen = k
		if r < weight {
			return k
		}
		r -= weight
	}
	// Float rounding past the last bucket lands on the last positive kind
	return chosen
}

// Create builds one object of the given kind at a random launch position
func (s *SpawnPolicy) Create(kind component.Kind) *component.Object {
	var payload component.Payload
	var key rune

	switch kind {
	case component.KindBomb:
		payload = component.Bomb{}
		key = parameter.BombKey
	case component.KindIce:
		payload = component.Ice{}
		key = parameter.IceKey
	default:
		payload = component.Fruit{Variant: component.Variant(s.rng.Intn(component.VariantCount))}
		key = parameter.FruitKeys[s.fruitCount%len(parameter.FruitKeys)]
		s.fruitCount++
	}

	x := uniform(s.rng, parameter.SpawnMargin, parameter.PlayWidth-parameter.SpawnMargin)
	angle := uniform(s.rng, parameter.LaunchAngleMin, parameter.LaunchAngleMax)
	speed := uniform(s.rng, parameter.LaunchSpeedMin, parameter.LaunchSpeedMax)

	k := component.Kinetic{
		Pos:        vmath.Vec2{X: x, Y: parameter.PlayHeight},
		Vel:        vmath.V2FromPolar(angle, speed),
		Gravity:    parameter.Gravity,
		AngularVel: uniform(s.rng, -parameter.SpinMax, parameter.SpinMax),
	}

	id := s.nextID
	s.nextID++
	return component.NewObject(id, payload, k, key)
}
