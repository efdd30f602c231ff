package visual

// Hex palette definitions, parsed by the renderer with go-colorful
const (
	HexBackground = "#1a1b26" // Tokyo Night background
	HexText       = "#c0caf5"
	HexDim        = "#565f89"
	HexAccent     = "#ff9e64"
	HexDanger     = "#f7768e"
	HexGood       = "#9ece6a"

	// Fruit species, indexed by component.Variant
	HexApple      = "#e0403a"
	HexBanana     = "#f5d742"
	HexOrange     = "#ff9a1f"
	HexStrawberry = "#ff3f6c"
	HexWatermelon = "#3fae49"
	HexPineapple  = "#d8b23a"

	// Flesh color shown on cut halves and juice
	HexAppleFlesh      = "#fff2c7"
	HexBananaFlesh     = "#fff6d0"
	HexOrangeFlesh     = "#ffc069"
	HexStrawberryFlesh = "#ff9aa8"
	HexWatermelonFlesh = "#ff4d5e"
	HexPineappleFlesh  = "#ffe680"

	HexBomb     = "#3b3f4a"
	HexBombFuse = "#ff5500"
	HexIce      = "#9ee7ff"
	HexIceShard = "#e4f8ff"

	// Trail head color, faded into the background with age
	HexTrail = "#ffffff"

	// Medals
	HexBronze = "#cd7f32"
	HexSilver = "#c0c0c0"
	HexGold   = "#ffd700"
)

// FruitHex is the skin color of each species in component.Variant order
var FruitHex = []string{
	HexApple, HexBanana, HexOrange, HexStrawberry, HexWatermelon, HexPineapple,
}

// FleshHex is the flesh color of each species in component.Variant order
var FleshHex = []string{
	HexAppleFlesh, HexBananaFlesh, HexOrangeFlesh,
	HexStrawberryFlesh, HexWatermelonFlesh, HexPineappleFlesh,
}
