package system

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/config"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// seqRand replays scripted draws, cycling when exhausted
type seqRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func seededRand(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return testEpoch.Add(time.Duration(ms) * time.Millisecond)
}

func mustDifficulty(spawn, min time.Duration, batch int, w config.Weights) config.Difficulty {
	d, err := config.NewDifficulty("test", spawn, min, batch, w)
	if err != nil {
		panic(err)
	}
	return d
}

var nextTestID component.ID

func objectAt(p component.Payload, x, y float64) *component.Object {
	nextTestID++
	return component.NewObject(nextTestID, p, component.Kinetic{Pos: vmath.Vec2{X: x, Y: y}}, 0)
}

func fruitAt(x, y float64) *component.Object {
	return objectAt(component.Fruit{Variant: component.VariantApple}, x, y)
}
