package vmath

import "math"

// SegmentProjection projects point p onto the segment a→b
// Returns the normalized projection t (0 at a, 1 at b, unclamped) and the
// perpendicular distance from p to the infinite line through a and b
// A degenerate segment (a == b) yields t = 0 and the distance to a
func SegmentProjection(p, a, b Vec2) (t, dist float64) {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	ap := V2Sub(p, a)
	if lenSq == 0 {
		return 0, V2Mag(ap)
	}
	t = V2Dot(ap, ab) / lenSq
	dist = math.Abs(V2Cross(ab, ap)) / math.Sqrt(lenSq)
	return t, dist
}

// SegmentHits reports whether a circle-ish target at p is cut by a→b
// The closest point must lie within the segment and the line must pass
// closer than threshold
func SegmentHits(p, a, b Vec2, threshold float64) bool {
	t, dist := SegmentProjection(p, a, b)
	return t >= 0 && t <= 1 && dist < threshold
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
