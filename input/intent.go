package input

import "github.com/lixenwraith/vi-slicer/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentPause      // p
	IntentRestart    // r
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Slicing
	IntentPoint // Mouse moved with button 1 held, Point set
	IntentPenUp // Button 1 released after a drag
	IntentKey   // Printable key, Key set
)

// Intent is one parsed input action
type Intent struct {
	Type  IntentType
	Point vmath.Vec2 // Play space, IntentPoint only
	Key   rune       // IntentKey only
}
