package system

// Random is the random source systems draw from
// Implementations need not be safe for concurrent use
type Random interface {
	// Intn returns a uniform int in [0, n), n > 0
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1)
	Float64() float64
}

// uniform returns a float in [lo, hi)
func uniform(rng Random, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
