package system

import (
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/parameter"
)

// ScoringMode selects how points are awarded while a combo window is open
type ScoringMode uint8

const (
	// ScoreWindowTier awards the tier difference on each extension, so a
	// window is worth exactly the tier of its final size
	ScoreWindowTier ScoringMode = iota
	// ScoreCompound awards the full tier of the new size on every extension
	ScoreCompound
)

// Combo labels for display
const (
	LabelPlain  = ""
	LabelTriple = "triple"
	LabelMega   = "mega"
)

// Medal is the display reward for a combo size
type Medal uint8

const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
)

func (m Medal) String() string {
	switch m {
	case MedalBronze:
		return "bronze"
	case MedalSilver:
		return "silver"
	case MedalGold:
		return "gold"
	default:
		return ""
	}
}

// PointsForSize is the coarse tier table: 1, 1, 2, then 3 for four or more
func PointsForSize(size int) int {
	switch {
	case size <= 0:
		return 0
	case size <= 2:
		return 1
	case size == 3:
		return 2
	default:
		return 3
	}
}

// LabelForSize classifies a combo for display
func LabelForSize(size int) string {
	switch {
	case size >= parameter.ComboMegaSize:
		return LabelMega
	case size == parameter.ComboTripleSize:
		return LabelTriple
	default:
		return LabelPlain
	}
}

// MedalForSize maps a combo size to its medal
func MedalForSize(size int) Medal {
	switch {
	case size >= parameter.MedalGoldSize:
		return MedalGold
	case size >= parameter.MedalSilverSize:
		return MedalSilver
	case size >= parameter.MedalBronzeSize:
		return MedalBronze
	default:
		return MedalNone
	}
}

// ComboAggregator groups fruit hits landing within a rolling window
// A hit after the window expires starts a new combo, it never merges
type ComboAggregator struct {
	window time.Duration
	mode   ScoringMode

	hits        []component.ID
	windowStart time.Time
	lastSlice   time.Time
	open        bool

	best int
}

// NewComboAggregator creates an aggregator
func NewComboAggregator(window time.Duration, mode ScoringMode) *ComboAggregator {
	return &ComboAggregator{window: window, mode: mode}
}

// RegisterHits adds this tick's cut objects to the combo and returns the
// points to add to the score and the resulting combo size
// Only fruit count; nil or removed objects are ignored
func (c *ComboAggregator) RegisterHits(hits []*component.Object, now time.Time) (points, size int) {
	fruit := make([]component.ID, 0, len(hits))
	for _, o := range hits {
		if o == nil || o.State == component.StateRemoved || o.Kind() != component.KindFruit {
			continue
		}
		if c.open && c.contains(o.ID) {
			continue
		}
		fruit = append(fruit, o.ID)
	}

	if len(fruit) == 0 {
		c.Expire(now)
		return 0, len(c.hits)
	}

	prevSize := 0
	if c.open && now.Sub(c.lastSlice) < c.window {
		prevSize = len(c.hits)
		c.hits = append(c.hits, fruit...)
	} else {
		c.hits = fruit
		c.windowStart = now
		c.open = true
	}
	c.lastSlice = now

	size = len(c.hits)
	c.best = max(c.best, size)

	switch c.mode {
	case ScoreCompound:
		points = PointsForSize(size)
	default:
		points = PointsForSize(size) - PointsForSize(prevSize)
	}
	return points, size
}

// Expire clears a combo whose window has elapsed since the last fruit hit
// Returns true if a combo was closed
func (c *ComboAggregator) Expire(now time.Time) bool {
	if !c.open || now.Sub(c.lastSlice) < c.window {
		return false
	}
	c.hits = nil
	c.open = false
	return true
}

func (c *ComboAggregator) contains(id component.ID) bool {
	for _, h := range c.hits {
		if h == id {
			return true
		}
	}
	return false
}

// Size returns the current combo size, 0 when no combo is open
func (c *ComboAggregator) Size() int {
	return len(c.hits)
}

// Label returns the display label of the current combo
func (c *ComboAggregator) Label() string {
	return LabelForSize(len(c.hits))
}

// WindowStart returns when the current combo began
func (c *ComboAggregator) WindowStart() time.Time {
	return c.windowStart
}

// Best returns the largest combo size reached
func (c *ComboAggregator) Best() int {
	return c.best
}
