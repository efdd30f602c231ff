package component

import "github.com/lixenwraith/vi-slicer/vmath"

// Kinetic is the ballistic state shared by objects, split halves and particles
type Kinetic struct {
	// Pos is the body center in play-space pixels
	Pos vmath.Vec2
	// Vel is velocity in pixels per second
	Vel vmath.Vec2
	// Gravity is added to Vel.Y every second
	Gravity float64
	// Rotation in radians, AngularVel in radians per second
	Rotation   float64
	AngularVel float64
}
