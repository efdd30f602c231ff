package parameter

import "time"

// Play Area
const (
	// PlayWidth and PlayHeight define the virtual screen all gameplay runs in
	// The renderer scales this area onto the terminal grid
	PlayWidth  = 800.0
	PlayHeight = 600.0

	// SpawnMargin keeps launch positions away from the side edges
	SpawnMargin = 100.0

	// OffscreenMargin is how far below the bottom edge a falling object must
	// travel before it is evicted
	OffscreenMargin = 50.0
)

// Game Loop
const (
	// FrameUpdateInterval is the fixed tick of the round controller (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps the integration step after a stall
	MaxTickDelta = 100 * time.Millisecond
)

// Combo
const (
	// ComboWindow is the rolling window for grouping fruit hits into one combo
	ComboWindow = 500 * time.Millisecond

	// ComboTripleSize and ComboMegaSize classify combos for display
	ComboTripleSize = 3
	ComboMegaSize   = 4
)

// Combo medal thresholds, in combo size
const (
	MedalBronzeSize = 3
	MedalSilverSize = 5
	MedalGoldSize   = 10
)

// Lifecycle
const (
	// DecayDelay is how long sliced remnants stay simulated before removal
	DecayDelay = 1000 * time.Millisecond

	// MaxStrikes is the number of missed fruit that ends the round
	MaxStrikes = 3

	// FreezeMinDuration and FreezeMaxDuration bound the ice freeze effect
	FreezeMinDuration = 3000 * time.Millisecond
	FreezeMaxDuration = 5000 * time.Millisecond
)

// Spawn
const (
	// SpawnRatchetStep is subtracted from the spawn interval after every batch
	SpawnRatchetStep = time.Millisecond
)

// Scoreboard
const (
	// ScoreboardSize caps each difficulty table
	ScoreboardSize = 10
)
