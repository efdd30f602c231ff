package visual

// Object body fill
const (
	CharFruit = '█'
	CharBomb  = '●'
	CharIce   = '▒'
	CharFuse  = '*'
)

// HalfChars are the glyphs of cut halves, in component.PartSide order
var HalfChars = [4]rune{
	'▌', // left
	'▐', // right
	'▀', // top shard
	'▄', // bottom shard
}

// Particle and trail glyphs
const (
	CharJuice      = '•'
	CharTrail      = '·'
	CharTrailHead  = '◆'
	CharStrike     = 'X'
	CharStrikeLeft = '○'
)
