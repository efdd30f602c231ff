package config

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-slicer/component"
)

// Sentinel errors for profile validation
var (
	ErrInvalidWeights    = errors.New("type weights must be non-negative with a positive total")
	ErrNegativeDuration  = errors.New("durations must be positive")
	ErrInvalidBatch      = errors.New("batch size must be at least 1")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Weights is the relative spawn chance per object kind
type Weights struct {
	Fruit float64 `toml:"fruit"`
	Bomb  float64 `toml:"bomb"`
	Ice   float64 `toml:"ice"`
}

// For returns the weight of a kind
func (w Weights) For(k component.Kind) float64 {
	switch k {
	case component.KindFruit:
		return w.Fruit
	case component.KindBomb:
		return w.Bomb
	case component.KindIce:
		return w.Ice
	default:
		return 0
	}
}

// Total returns the sum of all weights
func (w Weights) Total() float64 {
	return w.Fruit + w.Bomb + w.Ice
}

// Normalized returns weights scaled to sum to 1
// Callers must validate first; a zero total returns zero weights
func (w Weights) Normalized() Weights {
	total := w.Total()
	if total <= 0 {
		return Weights{}
	}
	return Weights{Fruit: w.Fruit / total, Bomb: w.Bomb / total, Ice: w.Ice / total}
}

func (w Weights) validate() error {
	if w.Fruit < 0 || w.Bomb < 0 || w.Ice < 0 || !(w.Total() > 0) {
		return errors.Wrapf(ErrInvalidWeights, "fruit=%g bomb=%g ice=%g", w.Fruit, w.Bomb, w.Ice)
	}
	return nil
}

// Difficulty is the spawn profile of a round
type Difficulty struct {
	Name string
	// SpawnInterval is the starting delay between batches
	SpawnInterval time.Duration
	// MinInterval is the floor the interval ratchets down to
	MinInterval time.Duration
	// BatchSize is the maximum objects per batch, at least 1
	BatchSize int
	Weights   Weights
}

// NewDifficulty builds and validates a profile, weights are normalized
func NewDifficulty(name string, spawn, min time.Duration, batch int, w Weights) (Difficulty, error) {
	d := Difficulty{
		Name:          name,
		SpawnInterval: spawn,
		MinInterval:   min,
		BatchSize:     batch,
		Weights:       w,
	}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	d.Weights = w.Normalized()
	return d, nil
}

// Validate rejects profiles that cannot drive a round
func (d Difficulty) Validate() error {
	if d.SpawnInterval <= 0 || d.MinInterval <= 0 {
		return errors.Wrapf(ErrNegativeDuration, "%s: spawn=%v min=%v", d.Name, d.SpawnInterval, d.MinInterval)
	}
	if d.MinInterval > d.SpawnInterval {
		return errors.Wrapf(ErrNegativeDuration, "%s: min interval %v above spawn interval %v", d.Name, d.MinInterval, d.SpawnInterval)
	}
	if d.BatchSize < 1 {
		return errors.Wrapf(ErrInvalidBatch, "%s: batch=%d", d.Name, d.BatchSize)
	}
	return errors.Wrap(d.Weights.validate(), d.Name)
}

// Built-in difficulty presets
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var presets = map[string]Difficulty{
	DifficultyEasy: {
		Name:          DifficultyEasy,
		SpawnInterval: 1500 * time.Millisecond,
		MinInterval:   600 * time.Millisecond,
		BatchSize:     2,
		Weights:       Weights{Fruit: 0.8, Bomb: 0.1, Ice: 0.1},
	},
	DifficultyMedium: {
		Name:          DifficultyMedium,
		SpawnInterval: 1000 * time.Millisecond,
		MinInterval:   450 * time.Millisecond,
		BatchSize:     3,
		Weights:       Weights{Fruit: 0.7, Bomb: 0.2, Ice: 0.1},
	},
	DifficultyHard: {
		Name:          DifficultyHard,
		SpawnInterval: 800 * time.Millisecond,
		MinInterval:   350 * time.Millisecond,
		BatchSize:     4,
		Weights:       Weights{Fruit: 0.6, Bomb: 0.3, Ice: 0.1},
	},
}

// Preset returns a built-in difficulty by case-insensitive name
func Preset(name string) (Difficulty, error) {
	d, ok := presets[strings.ToLower(name)]
	if !ok {
		return Difficulty{}, errors.Wrapf(ErrUnknownDifficulty, "%q", name)
	}
	return d, nil
}

// PresetNames lists built-in difficulty names in ascending pressure
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return presets[names[i]].SpawnInterval > presets[names[j]].SpawnInterval
	})
	return names
}
