package engine

import (
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/event"
	"github.com/lixenwraith/vi-slicer/system"
)

// Snapshot is a read-only copy of round state for rendering and audio
type Snapshot struct {
	RoundID    string
	Difficulty string
	Time       time.Time

	// Objects are deep copies of the live set
	Objects []component.Object

	Score      int
	HighScore  int
	Strikes    int
	MaxStrikes int

	ComboSize  int
	ComboLabel string
	ComboMedal system.Medal
	BestCombo  int
	BestMedal  system.Medal

	Frozen          bool
	FreezeRemaining time.Duration

	SpawnInterval time.Duration

	Paused   bool
	Terminal bool
	// Result is set once the round ends
	Result *event.RoundEndedPayload
}

// Snapshot copies the state as of the last tick
func (r *Round) Snapshot() Snapshot {
	now := r.lastTick

	objects := make([]component.Object, len(r.objects))
	for i, o := range r.objects {
		objects[i] = *o
		objects[i].Parts = append([]component.Part(nil), o.Parts...)
		objects[i].Particles = append([]component.Particle(nil), o.Particles...)
	}

	return Snapshot{
		RoundID:         r.id,
		Difficulty:      r.cfg.Difficulty.Name,
		Time:            now,
		Objects:         objects,
		Score:           r.score,
		HighScore:       max(r.highScore, r.score),
		Strikes:         r.life.Strikes(),
		MaxStrikes:      r.life.MaxStrikes(),
		ComboSize:       r.combo.Size(),
		ComboLabel:      r.combo.Label(),
		ComboMedal:      system.MedalForSize(r.combo.Size()),
		BestCombo:       r.combo.Best(),
		BestMedal:       r.bestMedal,
		Frozen:          r.life.Frozen(now),
		FreezeRemaining: r.life.FreezeRemaining(now),
		SpawnInterval:   r.spawn.Interval(),
		Terminal:        r.life.Terminal(),
		Result:          r.result,
	}
}

// Count returns how many snapshot objects are of kind k in state s
func (s *Snapshot) Count(k component.Kind, st component.State) int {
	n := 0
	for i := range s.Objects {
		if s.Objects[i].Kind() == k && s.Objects[i].State == st {
			n++
		}
	}
	return n
}
