package audio

import "github.com/pkg/errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundSlice SoundType = iota // Fruit cut
	SoundBomb                   // Bomb cut, round over
	SoundIce                    // Ice cut, freeze
	SoundCombo                  // Triple or better combo
	SoundMiss                   // Fruit fell unsliced
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSlice:
		return "slice"
	case SoundBomb:
		return "bomb"
	case SoundIce:
		return "ice"
	case SoundCombo:
		return "combo"
	case SoundMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// ErrAudioDisabled is returned by Initialize when audio is turned off
var ErrAudioDisabled = errors.New("audio disabled")
