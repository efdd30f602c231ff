package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-slicer/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	sweep := 0.0
	if duration > 0 {
		sweep = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so 0 is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateSliceSound generates a descending noise swish for a fruit cut
func CreateSliceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.SliceSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.SliceSoundDuration, parameter.SliceSoundAttack, parameter.SliceSoundRelease, rate)

	swish := NewSweep(1400, 500, parameter.SliceSoundDuration, WaveSine, rate)
	swishShaped := NewEnvelope(swish, parameter.SliceSoundDuration, parameter.SliceSoundAttack, parameter.SliceSoundRelease, rate)

	mixed := beep.Mix(newVolume(noiseShaped, 0.5), newVolume(swishShaped, 0.5))
	return newVolume(mixed, effectVolume(cfg, SoundSlice))
}

// CreateBombSound generates a long low rumble
func CreateBombSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.BombSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.BombSoundDuration, parameter.BombSoundAttack, parameter.BombSoundRelease, rate)

	thump := NewSweep(120, 40, parameter.BombSoundDuration, WaveSaw, rate)
	thumpShaped := NewEnvelope(thump, parameter.BombSoundDuration, parameter.BombSoundAttack, parameter.BombSoundRelease, rate)

	mixed := beep.Mix(newVolume(noiseShaped, 0.6), newVolume(thumpShaped, 0.4))
	return newVolume(mixed, effectVolume(cfg, SoundBomb))
}

// CreateIceSound generates a glassy chime
// Falls back to the oscillator if the generator rejects the rate
func CreateIceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var fund beep.Streamer
	if tone, err := generators.SineTone(rate, 1567.98); err == nil {
		fund = beep.Take(rate.N(parameter.IceSoundDuration), tone)
	} else {
		fund = NewOscillator(1567.98, parameter.IceSoundDuration, WaveSine, rate)
	}
	fundShaped := NewEnvelope(fund, parameter.IceSoundDuration, parameter.IceSoundAttack, parameter.IceSoundFundamentalRelease, rate)

	over := NewOscillator(3135.96, parameter.IceSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.IceSoundDuration, parameter.IceSoundAttack, parameter.IceSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
	return newVolume(mixed, effectVolume(cfg, SoundIce))
}

// CreateComboSound generates a rising two-note chime
func CreateComboSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := NewOscillator(987.77, parameter.ComboSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ComboSoundNote1Duration, parameter.ComboSoundAttack, parameter.ComboSoundNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, parameter.ComboSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.ComboSoundNote2Duration, parameter.ComboSoundAttack, parameter.ComboSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundCombo))
}

// CreateMissSound generates a short low buzz
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, parameter.MissSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.MissSoundDuration, parameter.MissSoundAttack, parameter.MissSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundMiss))
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSlice:
		return CreateSliceSound(cfg)
	case SoundBomb:
		return CreateBombSound(cfg)
	case SoundIce:
		return CreateIceSound(cfg)
	case SoundCombo:
		return CreateComboSound(cfg)
	case SoundMiss:
		return CreateMissSound(cfg)
	default:
		return nil
	}
}
