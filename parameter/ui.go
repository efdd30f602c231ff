package parameter

import "time"

// HUD Layout
const (
	// HUDRow is the terminal row the status line is drawn on, over the play area
	HUDRow = 0

	// HUDGap is the spacing between HUD fields
	HUDGap = 2

	// MinCols and MinRows below which only a resize hint is drawn
	MinCols = 40
	MinRows = 12
)

// Game Over Overlay
const (
	// OverlayWidthPercent is the share of screen width the result box covers
	OverlayWidthPercent = 0.6

	// OverlayPaddingY is the blank rows above the result text inside the box
	OverlayPaddingY = 1

	// OverlayMaxEntries caps the score rows listed in the result box
	OverlayMaxEntries = 10
)

// Effects
const (
	// FreezeBlinkInterval toggles the frozen indicator near the end of a freeze
	FreezeBlinkInterval = 250 * time.Millisecond

	// FreezeBlinkThreshold is the remaining freeze time from which the indicator blinks
	FreezeBlinkThreshold = time.Second

	// TrailMinFade hides trail samples fainter than this
	TrailMinFade = 0.05
)
