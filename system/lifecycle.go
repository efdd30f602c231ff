package system

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/physics"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// Lifecycle drives objects through Falling → Sliced → Decaying → Removed
// and the off-screen path Falling → Removed
type Lifecycle struct {
	rng        Random
	decayDelay time.Duration
	bottom     float64
}

// NewLifecycle creates a lifecycle with the default decay delay and bounds
func NewLifecycle(rng Random) *Lifecycle {
	return &Lifecycle{
		rng:        rng,
		decayDelay: parameter.DecayDelay,
		bottom:     parameter.PlayHeight + parameter.OffscreenMargin,
	}
}

// DecayDelay returns how long cut remnants stay live
func (l *Lifecycle) DecayDelay() time.Duration {
	return l.decayDelay
}

// Slice cuts a falling object and builds its kind-specific remnants
// Returns false for objects that are not falling
func (l *Lifecycle) Slice(o *component.Object, now time.Time) bool {
	if !o.Slice(now) {
		return false
	}

	switch o.Payload.(type) {
	case component.Fruit:
		o.Parts = []component.Part{
			l.part(o, component.PartLeft, vmath.Vec2{X: -o.Size / 4},
				vmath.Vec2{X: -parameter.FruitSplitSpeed, Y: -parameter.FruitSplitLift}, -parameter.PartSpin),
			l.part(o, component.PartRight, vmath.Vec2{X: o.Size / 4},
				vmath.Vec2{X: parameter.FruitSplitSpeed, Y: parameter.FruitSplitLift / 2}, parameter.PartSpin),
		}
		o.Particles = l.burst(o, now)

	case component.Ice:
		o.Parts = []component.Part{
			l.part(o, component.PartTop, vmath.Vec2{Y: -o.Size / 4},
				vmath.Vec2{X: -parameter.IceSplitSpeed, Y: -parameter.IceSplitLift}, -2*parameter.PartSpin),
			l.part(o, component.PartBottom, vmath.Vec2{Y: o.Size / 4},
				vmath.Vec2{X: parameter.IceSplitSpeed, Y: parameter.IceSplitLift / 2}, 2*parameter.PartSpin),
		}

	case component.Bomb:
		// No halves; the renderer overlays an explosion on the body
	}
	return true
}

func (l *Lifecycle) part(o *component.Object, side component.PartSide, offset, vel vmath.Vec2, spin float64) component.Part {
	return component.Part{
		Side: side,
		Kinetic: component.Kinetic{
			Pos:        vmath.V2Add(o.Pos, offset),
			Vel:        vel,
			Gravity:    o.Gravity,
			Rotation:   o.Rotation,
			AngularVel: spin,
		},
	}
}

// burst spawns the decorative particle spray for a cut fruit
func (l *Lifecycle) burst(o *component.Object, now time.Time) []component.Particle {
	particles := make([]component.Particle, parameter.ParticleCount)
	for i := range particles {
		angle := uniform(l.rng, 0, 2*math.Pi)
		speed := uniform(l.rng, parameter.ParticleSpeedMin, parameter.ParticleSpeedMax)
		particles[i] = component.Particle{
			Kinetic: component.Kinetic{
				Pos:     o.Pos,
				Vel:     vmath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
				Gravity: parameter.Gravity,
			},
			Born:     now,
			Lifetime: parameter.ParticleLifetimeMs * time.Millisecond,
		}
	}
	return particles
}

// Sweep applies timeouts and evicts removed objects
// Returns the surviving live set, reusing the input slice, and the fruit
// that fell off-screen unsliced
func (l *Lifecycle) Sweep(objects []*component.Object, now time.Time) (live, missed []*component.Object) {
	live = objects[:0]
	for _, o := range objects {
		switch o.State {
		case component.StateFalling:
			if physics.Below(&o.Kinetic, l.bottom) {
				o.Remove()
				if o.Kind() == component.KindFruit {
					missed = append(missed, o)
				}
			}
		case component.StateSliced:
			// Stays Sliced for the tick it was cut in
			if now.After(o.SlicedAt) {
				o.Decay()
			}
		}

		if o.State == component.StateDecaying && now.Sub(o.SlicedAt) >= l.decayDelay {
			o.Remove()
		}

		if o.Live() {
			live = append(live, o)
		}
	}
	// Clear the tail so evicted objects can be collected
	for i := len(live); i < len(objects); i++ {
		objects[i] = nil
	}
	return live, missed
}
