package parameter

// Discrete key bindings
// Fruit keys rotate per spawned fruit; bomb and ice keys are fixed and
// never appear in FruitKeys
var FruitKeys = []rune{'a', 's', 'd', 'f', 'j', 'k', 'l'}

const (
	BombKey = 'b'
	IceKey  = 'i'
)

// Control keys, never bound to objects
const (
	QuitKey    = 'q'
	PauseKey   = 'p'
	RestartKey = 'r'
	MuteKey    = 'm'
)

// TrailLength is the number of recent pointer points kept for display
const TrailLength = 8

// TrailDecayMs is how long a trail point stays visible
const TrailDecayMs = 250
