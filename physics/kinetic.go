package physics

import (
	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// Integrate performs ballistic integration over dt seconds:
// p = p + v*dt; v.y = v.y + g*dt; r = r + w*dt
func Integrate(k *component.Kinetic, dt float64) {
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(k.Vel, dt))
	k.Vel.Y += k.Gravity * dt
	k.Rotation += k.AngularVel * dt
}

// IntegrateDamped integrates like Integrate, then damps horizontal velocity
// by friction once; gravity keeps accumulating unmodified
func IntegrateDamped(k *component.Kinetic, dt, friction float64) {
	Integrate(k, dt)
	k.Vel.X *= friction
}

// Below reports whether the body center is past the bottom bound
func Below(k *component.Kinetic, bound float64) bool {
	return k.Pos.Y > bound
}
