package audio

import (
	"github.com/lixenwraith/vi-slicer/config"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	// EffectVolumes scales each sound before the master volume
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio on at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundSlice: 0.6,
			SoundBomb:  1.0,
			SoundIce:   0.7,
			SoundCombo: 0.6,
			SoundMiss:  0.5,
		},
	}
}

// FromSettings converts the [audio] config table, volume 0-100 to 0.0-1.0
func FromSettings(s config.AudioSettings) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = s.Enabled
	cfg.MasterVolume = min(max(float64(s.MasterVolume)/100.0, 0), 1)
	if s.SampleRate > 0 {
		cfg.SampleRate = s.SampleRate
	}
	return cfg
}
