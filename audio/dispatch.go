package audio

import (
	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/event"
	"github.com/lixenwraith/vi-slicer/parameter"
)

// Player is anything that can play a sound cue
type Player interface {
	Play(SoundType)
}

// SoundFor maps a round event to its cue
// Bomb cuts sound through EventBombSliced, not the generic slice event
func SoundFor(e event.Event) (SoundType, bool) {
	switch e.Type {
	case event.EventObjectSliced:
		p, ok := e.Payload.(*event.SlicedPayload)
		if !ok {
			return 0, false
		}
		switch p.Kind {
		case component.KindFruit:
			return SoundSlice, true
		case component.KindIce:
			return SoundIce, true
		}
	case event.EventBombSliced:
		return SoundBomb, true
	case event.EventComboAwarded:
		if p, ok := e.Payload.(*event.ComboPayload); ok && p.Size >= parameter.ComboTripleSize && p.Points > 0 {
			return SoundCombo, true
		}
	case event.EventFruitMissed:
		return SoundMiss, true
	}
	return 0, false
}

// PlayEvents plays the cue of every event, at most once per sound type
func PlayEvents(p Player, events []event.Event) {
	var seen [soundTypeCount]bool
	for _, e := range events {
		st, ok := SoundFor(e)
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		p.Play(st)
	}
}
