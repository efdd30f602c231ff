package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-slicer/system"
)

// Random is the uniform draw source used by spawn, lifecycle and freeze
type Random = system.Random

// NewRandom returns a seeded source, seed 0 picks one from the wall clock
// The result is not safe for concurrent use; each round owns its own draws
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
