package input

import (
	"time"

	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// TrailPoint is one pointer sample kept for display
type TrailPoint struct {
	Pos  vmath.Vec2
	Time time.Time
}

// Trail keeps the most recent pointer samples and fades them out
type Trail struct {
	points []TrailPoint
	size   int
	decay  time.Duration
}

// NewTrail creates a trail holding TrailLength points for TrailDecayMs
func NewTrail() *Trail {
	return &Trail{
		points: make([]TrailPoint, 0, parameter.TrailLength),
		size:   parameter.TrailLength,
		decay:  parameter.TrailDecayMs * time.Millisecond,
	}
}

// Add appends a sample, dropping the oldest when full
func (t *Trail) Add(p vmath.Vec2, now time.Time) {
	if len(t.points) == t.size {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.size-1]
	}
	t.points = append(t.points, TrailPoint{Pos: p, Time: now})
}

// Prune drops samples older than the decay time
func (t *Trail) Prune(now time.Time) {
	i := 0
	for i < len(t.points) && now.Sub(t.points[i].Time) >= t.decay {
		i++
	}
	if i > 0 {
		t.points = append(t.points[:0], t.points[i:]...)
	}
}

// Points returns live samples oldest first
func (t *Trail) Points() []TrailPoint {
	return t.points
}

// Fade returns how much of its lifetime a sample has left, 1 new to 0 gone
func (t *Trail) Fade(p TrailPoint, now time.Time) float64 {
	age := now.Sub(p.Time)
	if age >= t.decay {
		return 0
	}
	return 1 - float64(age)/float64(t.decay)
}

// Clear removes all samples
func (t *Trail) Clear() {
	t.points = t.points[:0]
}
