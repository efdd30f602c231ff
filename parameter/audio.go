package parameter

import "time"

// Slice Sound Timing
const (
	SliceSoundDuration = 120 * time.Millisecond
	SliceSoundAttack   = 2 * time.Millisecond
	SliceSoundRelease  = 90 * time.Millisecond
)

// Bomb Sound Timing
const (
	BombSoundDuration = 700 * time.Millisecond
	BombSoundAttack   = 5 * time.Millisecond
	BombSoundRelease  = 600 * time.Millisecond
)

// Ice Sound Timing
const (
	IceSoundDuration           = 500 * time.Millisecond
	IceSoundAttack             = 5 * time.Millisecond
	IceSoundFundamentalRelease = 450 * time.Millisecond
	IceSoundOvertoneRelease    = 200 * time.Millisecond
)

// Combo Sound Timing
const (
	ComboSoundNote1Duration = 80 * time.Millisecond
	ComboSoundNote2Duration = 280 * time.Millisecond
	ComboSoundAttack        = 5 * time.Millisecond
	ComboSoundNote1Release  = 40 * time.Millisecond
	ComboSoundNote2Release  = 200 * time.Millisecond
)

// Miss Sound Timing
const (
	MissSoundDuration = 80 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 20 * time.Millisecond
)

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond
