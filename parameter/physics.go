package parameter

// Units are play-space pixels and seconds

// Launch
const (
	// LaunchAngleMin and LaunchAngleMax bound the launch arc in degrees from horizontal
	LaunchAngleMin = 60.0
	LaunchAngleMax = 120.0

	// LaunchSpeedMin and LaunchSpeedMax bound the initial speed
	// With Gravity both ends peak inside the play area
	LaunchSpeedMin = 700.0
	LaunchSpeedMax = 1000.0

	// Gravity is applied to the vertical velocity of every body
	Gravity = 900.0

	// SpinMax bounds the initial angular velocity in radians per second
	SpinMax = 6.0
)

// Sub-part motion after a slice
const (
	// PartFriction damps horizontal velocity of split halves once per tick
	PartFriction = 0.985

	// Fruit halves: one goes up-left, the other down-right
	FruitSplitSpeed = 140.0
	FruitSplitLift  = 220.0

	// Ice shatters harder than fruit
	IceSplitSpeed = 360.0
	IceSplitLift  = 480.0

	// PartSpin is the angular velocity given to split halves
	PartSpin = 8.0
)

// Particles
const (
	// ParticleCount is the burst size spawned when a fruit is cut
	ParticleCount = 8

	ParticleSpeedMin = 120.0
	ParticleSpeedMax = 320.0

	// ParticleLifetimeMs is how long decorative juice particles live
	ParticleLifetimeMs = 400
)

// Object sizes, collision diameter in play-space pixels
const (
	SizeApple      = 96.0
	SizeBanana     = 110.0
	SizeOrange     = 96.0
	SizeStrawberry = 72.0
	SizeWatermelon = 128.0
	SizePineapple  = 120.0
	SizeBomb       = 100.0
	SizeIce        = 100.0
)

// Cut thresholds are size / divisor
const (
	CutDivisorDefault = 2.0
	CutDivisorBomb    = 3.0
)

// MinSliceMovement ignores pointer segments shorter than this
const MinSliceMovement = 5.0
