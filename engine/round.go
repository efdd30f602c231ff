package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/config"
	"github.com/lixenwraith/vi-slicer/event"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/scoreboard"
	"github.com/lixenwraith/vi-slicer/system"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// RoundConfig fixes the rules of one round
type RoundConfig struct {
	Difficulty   config.Difficulty
	Player       string
	InputMode    config.InputMode
	ComboScoring system.ScoringMode
	// MaxStrikes defaults to parameter.MaxStrikes when 0
	MaxStrikes int
	// HighScore seeds the round's high score, normally the session best
	HighScore int
}

// Input is the player activity sampled since the previous tick
type Input struct {
	// Points are pointer samples in play space, oldest first
	Points []vmath.Vec2
	// PenUp ends the stroke after Points; the next points start a new one
	PenUp bool
	// Keys are printable keys pressed, in order
	Keys []rune
}

// Frame is the result of one tick
type Frame struct {
	Snapshot Snapshot
	Events   []event.Event
}

// Round owns the live object set and every per-round subsystem
// It is driven from a single goroutine; nothing is shared across rounds
type Round struct {
	id    string
	cfg   RoundConfig
	clock Clock
	board Scoreboard

	spawn     *system.SpawnPolicy
	motion    *system.Trajectory
	detector  *system.SliceDetector
	lifecycle *system.Lifecycle
	combo     *system.ComboAggregator
	life      *system.LifePolicy
	queue     *event.Queue

	objects []*component.Object

	score     int
	highScore int
	bestMedal system.Medal

	lastTick  time.Time
	lastPoint vmath.Vec2
	stroking  bool
	wasFrozen bool

	result *event.RoundEndedPayload
}

// NewRound validates cfg and starts a round at clock.Now
// board may be nil to skip persistence
func NewRound(cfg RoundConfig, clock Clock, rng Random, board Scoreboard) (*Round, error) {
	if err := cfg.Difficulty.Validate(); err != nil {
		return nil, errors.Wrap(err, "round config")
	}
	if clock == nil || rng == nil {
		return nil, errors.New("round needs a clock and a random source")
	}

	now := clock.Now()
	return &Round{
		id:        uuid.NewString(),
		cfg:       cfg,
		clock:     clock,
		board:     board,
		spawn:     system.NewSpawnPolicy(cfg.Difficulty, rng, now),
		motion:    system.NewTrajectory(),
		detector:  system.NewSliceDetector(),
		lifecycle: system.NewLifecycle(rng),
		combo:     system.NewComboAggregator(parameter.ComboWindow, cfg.ComboScoring),
		life:      system.NewLifePolicy(cfg.MaxStrikes, rng),
		queue:     event.NewQueue(),
		objects:   make([]*component.Object, 0, 32),
		highScore: cfg.HighScore,
		lastTick:  now,
	}, nil
}

// ID returns the round identifier
func (r *Round) ID() string {
	return r.id
}

// Score returns the current score
func (r *Round) Score() int {
	return r.score
}

// HighScore returns the best of the seeded high score and this round's score
func (r *Round) HighScore() int {
	return r.highScore
}

// Terminal reports whether the round has ended
func (r *Round) Terminal() bool {
	return r.life.Terminal()
}

// Result returns the final result, nil until the round ends
func (r *Round) Result() *event.RoundEndedPayload {
	return r.result
}

// Tick runs one fixed step: spawn and advance unless frozen, slice against
// the advanced positions, score, apply kind effects, sweep, then finish the
// round if it reached a terminal state
// A terminal round only returns its snapshot
func (r *Round) Tick(in Input) Frame {
	now := r.clock.Now()
	if r.result != nil {
		return Frame{Snapshot: r.Snapshot()}
	}

	dt := now.Sub(r.lastTick)
	dt = min(max(dt, 0), parameter.MaxTickDelta)
	r.lastTick = now

	frozen := r.life.Frozen(now)
	if r.wasFrozen && !frozen {
		r.emit(event.EventFreezeEnded, now, nil)
	}
	if !frozen {
		r.objects = append(r.objects, r.spawn.Update(now)...)
		r.motion.AdvanceAll(r.objects, dt.Seconds(), now)
	}

	sliced := r.slice(in, now)
	r.award(sliced, now)
	r.applyEffects(sliced, now)

	var missed []*component.Object
	r.objects, missed = r.lifecycle.Sweep(r.objects, now)
	for _, o := range missed {
		if r.life.Terminal() {
			break
		}
		r.life.RecordMiss()
		r.emit(event.EventFruitMissed, now, &event.MissPayload{
			ID:         o.ID,
			Strikes:    r.life.Strikes(),
			MaxStrikes: r.life.MaxStrikes(),
		})
	}

	r.combo.Expire(now)
	r.wasFrozen = r.life.Frozen(now)

	if r.life.Terminal() {
		r.finish(now)
	}

	return Frame{Snapshot: r.Snapshot(), Events: r.queue.Consume()}
}

// EndStroke lifts the pointer so the next points start a new stroke
func (r *Round) EndStroke() {
	r.stroking = false
}

// Quit ends a live round on player request and returns the end events
func (r *Round) Quit() []event.Event {
	if r.result != nil {
		return nil
	}
	r.life.Quit()
	r.finish(r.clock.Now())
	return r.queue.Consume()
}

func (r *Round) slice(in Input, now time.Time) []*component.Object {
	var sliced []*component.Object

	if r.cfg.InputMode.PathEnabled() && len(in.Points) > 0 {
		points := in.Points
		if r.stroking {
			points = append([]vmath.Vec2{r.lastPoint}, in.Points...)
		}
		sliced = r.detector.SlicePath(r.objects, points, now, r.lifecycle)
		r.lastPoint = in.Points[len(in.Points)-1]
		r.stroking = true
	}
	if in.PenUp {
		r.stroking = false
	}

	if r.cfg.InputMode.KeysEnabled() && len(in.Keys) > 0 {
		sliced = append(sliced, r.detector.SliceKeys(r.objects, in.Keys, now, r.lifecycle)...)
	}

	for _, o := range sliced {
		p := &event.SlicedPayload{ID: o.ID, Kind: o.Kind()}
		if f, ok := o.Payload.(component.Fruit); ok {
			p.Variant = f.Variant
		}
		r.emit(event.EventObjectSliced, now, p)
	}
	return sliced
}

// award feeds fruit hits to the combo aggregator
func (r *Round) award(sliced []*component.Object, now time.Time) {
	fruit := false
	for _, o := range sliced {
		if o.Kind() == component.KindFruit {
			fruit = true
			break
		}
	}

	points, size := r.combo.RegisterHits(sliced, now)
	if !fruit {
		return
	}

	r.score += points
	medal := system.MedalForSize(size)
	r.bestMedal = max(r.bestMedal, medal)
	r.emit(event.EventComboAwarded, now, &event.ComboPayload{
		Points: points,
		Size:   size,
		Label:  system.LabelForSize(size),
		Medal:  medal.String(),
	})
}

func (r *Round) applyEffects(sliced []*component.Object, now time.Time) {
	for _, o := range sliced {
		switch o.Payload.(type) {
		case component.Ice:
			until := r.life.IceSliced(now)
			r.emit(event.EventFreezeStarted, now, &event.FreezePayload{Until: until})
		case component.Bomb:
			r.life.BombSliced()
			r.emit(event.EventBombSliced, now, &event.SlicedPayload{ID: o.ID, Kind: component.KindBomb})
		case component.Fruit:
			// Scored by the combo aggregator
		}
	}
}

// finish records the result once and hands the entry to the scoreboard
func (r *Round) finish(now time.Time) {
	if r.result != nil {
		return
	}

	res := &event.RoundEndedPayload{
		Reason:    r.life.Reason(),
		Score:     r.score,
		HighScore: r.highScore,
		Entry: scoreboard.Entry{
			Name:      r.cfg.Player,
			Score:     r.score,
			Timestamp: now,
		},
	}
	if r.score > r.highScore {
		r.highScore = r.score
		res.HighScore = r.score
		res.NewHighScore = true
	}

	if r.board != nil {
		entry, err := r.board.AddScore(r.cfg.Difficulty.Name, r.cfg.Player, r.score)
		if err != nil {
			res.Err = err
		} else {
			res.Entry = entry
			if top, err := r.board.TopScores(r.cfg.Difficulty.Name); err != nil {
				res.Err = err
			} else {
				res.Rank = scoreboard.RankOf(top, entry.ID)
			}
		}
	}

	r.result = res
	r.emit(event.EventRoundEnded, now, res)
}

func (r *Round) emit(t event.EventType, now time.Time, payload any) {
	r.queue.Push(event.Event{Type: t, Time: now, Payload: payload})
}
