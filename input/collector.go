package input

import (
	"github.com/lixenwraith/vi-slicer/engine"
)

// Collector batches slicing intents between ticks
// Each queued batch carries at most one stroke end, a stroke started after a
// pen-up waits for the next tick; keys always go to the next batch drained
type Collector struct {
	queue []engine.Input
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a slicing intent, returns false for intents it does not batch
func (c *Collector) Add(in *Intent) bool {
	if in == nil {
		return false
	}
	switch in.Type {
	case IntentPoint:
		tail := c.tail()
		if tail.PenUp {
			c.queue = append(c.queue, engine.Input{})
			tail = &c.queue[len(c.queue)-1]
		}
		tail.Points = append(tail.Points, in.Point)
	case IntentPenUp:
		c.tail().PenUp = true
	case IntentKey:
		head := c.head()
		head.Keys = append(head.Keys, in.Key)
	default:
		return false
	}
	return true
}

func (c *Collector) head() *engine.Input {
	if len(c.queue) == 0 {
		c.queue = append(c.queue, engine.Input{})
	}
	return &c.queue[0]
}

func (c *Collector) tail() *engine.Input {
	if len(c.queue) == 0 {
		c.queue = append(c.queue, engine.Input{})
	}
	return &c.queue[len(c.queue)-1]
}

// Drain returns the oldest batch, strokes still queued follow on later ticks
func (c *Collector) Drain() engine.Input {
	if len(c.queue) == 0 {
		return engine.Input{}
	}
	out := c.queue[0]
	copy(c.queue, c.queue[1:])
	c.queue[len(c.queue)-1] = engine.Input{}
	c.queue = c.queue[:len(c.queue)-1]
	return out
}

// Reset drops everything batched
func (c *Collector) Reset() {
	c.queue = nil
}
