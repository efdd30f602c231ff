package system

import (
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/physics"
)

// Trajectory advances object bodies, split halves and particles
type Trajectory struct {
	friction float64
}

// NewTrajectory creates a trajectory model with the default part friction
func NewTrajectory() *Trajectory {
	return &Trajectory{friction: parameter.PartFriction}
}

// Advance moves one object by dt seconds
// Falling bodies fly ballistically; cut objects animate their halves with
// horizontal friction and drop particles past their lifetime
func (t *Trajectory) Advance(o *component.Object, dt float64, now time.Time) {
	switch o.State {
	case component.StateFalling:
		physics.Integrate(&o.Kinetic, dt)

	case component.StateSliced, component.StateDecaying:
		for i := range o.Parts {
			physics.IntegrateDamped(&o.Parts[i].Kinetic, dt, t.friction)
		}
		alive := o.Particles[:0]
		for i := range o.Particles {
			p := o.Particles[i]
			if !p.Alive(now) {
				continue
			}
			physics.Integrate(&p.Kinetic, dt)
			alive = append(alive, p)
		}
		o.Particles = alive
	}
}

// AdvanceAll moves every live object
func (t *Trajectory) AdvanceAll(objects []*component.Object, dt float64, now time.Time) {
	for _, o := range objects {
		if o.Live() {
			t.Advance(o, dt, now)
		}
	}
}
