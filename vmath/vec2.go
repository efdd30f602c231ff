package vmath

import "math"

// Vec2 is a float64 2D vector in play-space coordinates
// Y grows downward, matching screen space
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns the euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Lerp interpolates between a and b, t in [0, 1]
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2FromPolar builds a velocity from an angle in degrees and a speed
// Angle is measured from the positive X axis counter-clockwise as seen on screen,
// so 90° points straight up (negative Y)
func V2FromPolar(angleDeg, speed float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	return Vec2{math.Cos(rad) * speed, -math.Sin(rad) * speed}
}
