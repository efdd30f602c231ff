package engine

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/config"
	"github.com/lixenwraith/vi-slicer/engine/mocks"
	"github.com/lixenwraith/vi-slicer/event"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/scoreboard"
	"github.com/lixenwraith/vi-slicer/system"
	"github.com/lixenwraith/vi-slicer/vmath"
)

var roundEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// quietDifficulty never spawns during a test so placed objects are the only ones
func quietDifficulty(t *testing.T) config.Difficulty {
	t.Helper()
	d, err := config.NewDifficulty("test", time.Hour, time.Hour, 1, config.Weights{Fruit: 1})
	if err != nil {
		t.Fatalf("Unexpected difficulty error: %v", err)
	}
	return d
}

func newTestRound(t *testing.T, mode config.InputMode, board Scoreboard) (*Round, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(roundEpoch)
	r, err := NewRound(RoundConfig{
		Difficulty: quietDifficulty(t),
		Player:     "ann",
		InputMode:  mode,
	}, clock, NewRandom(1), board)
	if err != nil {
		t.Fatalf("Unexpected round error: %v", err)
	}
	return r, clock
}

var placedID component.ID = 1000

// place puts a motionless object into the live set
func place(r *Round, p component.Payload, x, y float64, key rune) *component.Object {
	placedID++
	o := component.NewObject(placedID, p, component.Kinetic{Pos: vmath.Vec2{X: x, Y: y}}, key)
	r.objects = append(r.objects, o)
	return o
}

func apple() component.Payload { return component.Fruit{Variant: component.VariantApple} }

func pts(coords ...float64) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, vmath.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func eventsOf(events []event.Event, typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestNewRoundRejectsInvalidProfile(t *testing.T) {
	clock := NewMockTimeProvider(roundEpoch)
	_, err := NewRound(RoundConfig{Difficulty: config.Difficulty{Name: "broken"}}, clock, NewRandom(1), nil)
	if err == nil {
		t.Fatal("Expected invalid profile to be rejected")
	}
	if !errors.Is(err, config.ErrNegativeDuration) {
		t.Errorf("Expected duration error, got %v", err)
	}

	if _, err := NewRound(RoundConfig{Difficulty: quietDifficulty(t)}, nil, NewRandom(1), nil); err == nil {
		t.Error("Expected missing clock to be rejected")
	}
}

func TestRoundSliceTripleCombo(t *testing.T) {
	r, clock := newTestRound(t, config.InputBoth, nil)
	place(r, apple(), 200, 300, 'a')
	place(r, apple(), 300, 300, 's')
	place(r, apple(), 400, 300, 'd')

	clock.Step(1)
	f := r.Tick(Input{Points: pts(150, 300, 450, 300)})

	if got := len(eventsOf(f.Events, event.EventObjectSliced)); got != 3 {
		t.Fatalf("Expected 3 sliced events, got %d", got)
	}
	combos := eventsOf(f.Events, event.EventComboAwarded)
	if len(combos) != 1 {
		t.Fatalf("Expected 1 combo event, got %d", len(combos))
	}
	cp := combos[0].Payload.(*event.ComboPayload)
	if cp.Points != 2 || cp.Size != 3 || cp.Label != system.LabelTriple || cp.Medal != "bronze" {
		t.Errorf("Unexpected combo payload %+v", cp)
	}
	if f.Snapshot.Score != 2 {
		t.Errorf("Expected score 2, got %d", f.Snapshot.Score)
	}
	if f.Snapshot.BestMedal != system.MedalBronze {
		t.Errorf("Expected bronze best medal, got %s", f.Snapshot.BestMedal)
	}
	if n := f.Snapshot.Count(component.KindFruit, component.StateSliced); n != 3 {
		t.Errorf("Expected 3 sliced fruit in snapshot, got %d", n)
	}
}

func TestRoundComboWindowAcrossTicks(t *testing.T) {
	r, clock := newTestRound(t, config.InputBoth, nil)
	place(r, apple(), 200, 300, 0)
	place(r, apple(), 600, 300, 0)

	clock.Advance(100 * time.Millisecond)
	r.Tick(Input{Points: pts(150, 300, 250, 300), PenUp: true})
	clock.Advance(100 * time.Millisecond)
	f := r.Tick(Input{Points: pts(550, 300, 650, 300), PenUp: true})

	if f.Snapshot.Score != 1 {
		t.Errorf("Expected two hits 100ms apart to total 1, got %d", f.Snapshot.Score)
	}
	if f.Snapshot.ComboSize != 2 {
		t.Errorf("Expected open combo of 2, got %d", f.Snapshot.ComboSize)
	}

	place(r, apple(), 400, 100, 0)
	clock.Advance(600 * time.Millisecond)
	f = r.Tick(Input{Points: pts(350, 100, 450, 100), PenUp: true})
	if f.Snapshot.Score != 2 {
		t.Errorf("Expected a fresh combo worth 1 after the window, got score %d", f.Snapshot.Score)
	}
	if f.Snapshot.ComboSize != 1 {
		t.Errorf("Expected new combo of 1, got %d", f.Snapshot.ComboSize)
	}
}

func TestRoundCompoundScoring(t *testing.T) {
	clock := NewMockTimeProvider(roundEpoch)
	r, err := NewRound(RoundConfig{
		Difficulty:   quietDifficulty(t),
		ComboScoring: system.ScoreCompound,
	}, clock, NewRandom(1), nil)
	if err != nil {
		t.Fatalf("Unexpected round error: %v", err)
	}
	place(r, apple(), 200, 300, 0)
	place(r, apple(), 600, 300, 0)

	clock.Advance(100 * time.Millisecond)
	r.Tick(Input{Points: pts(150, 300, 250, 300), PenUp: true})
	clock.Advance(100 * time.Millisecond)
	f := r.Tick(Input{Points: pts(550, 300, 650, 300), PenUp: true})

	if f.Snapshot.Score != 2 {
		t.Errorf("Expected compounding 1+1, got %d", f.Snapshot.Score)
	}
}

func TestRoundStrokeContinuity(t *testing.T) {
	r, clock := newTestRound(t, config.InputPath, nil)
	o := place(r, apple(), 200, 300, 0)

	clock.Step(1)
	r.Tick(Input{Points: pts(100, 300)})
	clock.Step(1)
	f := r.Tick(Input{Points: pts(300, 300)})

	if o.State != component.StateSliced {
		t.Fatalf("Expected segment across ticks to cut, got %s", o.State)
	}
	if f.Snapshot.Score != 1 {
		t.Errorf("Expected score 1, got %d", f.Snapshot.Score)
	}
}

func TestRoundPenUpBreaksStroke(t *testing.T) {
	r, clock := newTestRound(t, config.InputPath, nil)
	o := place(r, apple(), 200, 300, 0)

	clock.Step(1)
	r.Tick(Input{Points: pts(100, 300), PenUp: true})
	clock.Step(1)
	r.Tick(Input{Points: pts(300, 300)})

	if o.State != component.StateFalling {
		t.Errorf("Expected no cut across a lifted pointer, got %s", o.State)
	}
}

func TestRoundKeysMode(t *testing.T) {
	r, clock := newTestRound(t, config.InputKeys, nil)
	a1 := place(r, apple(), 200, 300, 'a')
	a2 := place(r, apple(), 600, 100, 'a')
	s := place(r, apple(), 400, 300, 's')

	clock.Step(1)
	f := r.Tick(Input{Points: pts(150, 300, 650, 300), Keys: []rune{'a'}})

	if a1.State != component.StateSliced || a2.State != component.StateSliced {
		t.Error("Expected both fruit bound to the key cut")
	}
	if s.State != component.StateFalling {
		t.Error("Pointer path must be ignored in keys mode")
	}
	if f.Snapshot.Score != 1 {
		t.Errorf("Expected size-2 combo worth 1, got %d", f.Snapshot.Score)
	}
}

func TestRoundBombEndsRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mocks.NewMockScoreboard(ctrl)

	entry := scoreboard.Entry{ID: "e1", Name: "ann", Score: 0}
	gomock.InOrder(
		board.EXPECT().AddScore("test", "ann", 0).Return(entry, nil),
		board.EXPECT().TopScores("test").Return([]scoreboard.Entry{{ID: "e0", Score: 5}, entry}, nil),
	)

	r, clock := newTestRound(t, config.InputBoth, board)
	place(r, component.Bomb{}, 400, 300, parameter.BombKey)

	clock.Step(1)
	f := r.Tick(Input{Points: pts(300, 300, 500, 300)})

	if len(eventsOf(f.Events, event.EventBombSliced)) != 1 {
		t.Fatal("Expected bomb sliced event")
	}
	if len(eventsOf(f.Events, event.EventComboAwarded)) != 0 {
		t.Error("Bomb must not score")
	}
	ended := eventsOf(f.Events, event.EventRoundEnded)
	if len(ended) != 1 {
		t.Fatalf("Expected round ended event, got %d", len(ended))
	}
	res := ended[0].Payload.(*event.RoundEndedPayload)
	if res.Reason != event.EndBomb {
		t.Errorf("Expected bomb reason, got %s", res.Reason)
	}
	if res.Rank != 2 || res.Entry.ID != "e1" || res.Err != nil {
		t.Errorf("Unexpected result %+v", res)
	}
	if !f.Snapshot.Terminal || f.Snapshot.Strikes != 0 {
		t.Errorf("Expected terminal at 0 strikes, got terminal=%v strikes=%d", f.Snapshot.Terminal, f.Snapshot.Strikes)
	}

	// Terminal rounds stay silent
	clock.Step(1)
	if f := r.Tick(Input{}); len(f.Events) != 0 {
		t.Errorf("Expected no events after the end, got %d", len(f.Events))
	}
	if r.Quit() != nil {
		t.Error("Expected quit on an ended round to do nothing")
	}
}

func TestRoundMissesEndRound(t *testing.T) {
	r, clock := newTestRound(t, config.InputBoth, nil)
	below := parameter.PlayHeight + parameter.OffscreenMargin + 1

	place(r, apple(), 200, below, 0)
	place(r, component.Bomb{}, 300, below, 0)
	place(r, apple(), 400, below, 0)
	place(r, component.Ice{}, 500, below, 0)

	clock.Step(1)
	f := r.Tick(Input{})
	if got := len(eventsOf(f.Events, event.EventFruitMissed)); got != 2 {
		t.Fatalf("Expected 2 missed fruit, got %d", got)
	}
	if f.Snapshot.Strikes != 2 || f.Snapshot.Terminal {
		t.Fatalf("Expected live round at 2 strikes, got strikes=%d terminal=%v", f.Snapshot.Strikes, f.Snapshot.Terminal)
	}
	if len(f.Snapshot.Objects) != 0 {
		t.Errorf("Expected off-screen objects evicted, got %d", len(f.Snapshot.Objects))
	}

	place(r, apple(), 200, below, 0)
	clock.Step(1)
	f = r.Tick(Input{})
	ended := eventsOf(f.Events, event.EventRoundEnded)
	if len(ended) != 1 {
		t.Fatalf("Expected round to end on third strike, got %d end events", len(ended))
	}
	if reason := ended[0].Payload.(*event.RoundEndedPayload).Reason; reason != event.EndStrikes {
		t.Errorf("Expected strikes reason, got %s", reason)
	}
	if f.Snapshot.Result == nil || f.Snapshot.Result.Entry.Name != "ann" {
		t.Error("Expected result with a candidate entry")
	}
}

func TestRoundIceFreeze(t *testing.T) {
	r, clock := newTestRound(t, config.InputBoth, nil)
	place(r, component.Ice{}, 400, 300, parameter.IceKey)
	mover := place(r, apple(), 100, 100, 0)
	mover.Vel = vmath.Vec2{X: 100}

	clock.Step(1)
	f := r.Tick(Input{Keys: []rune{parameter.IceKey}})

	started := eventsOf(f.Events, event.EventFreezeStarted)
	if len(started) != 1 {
		t.Fatalf("Expected freeze started, got %d", len(started))
	}
	until := started[0].Payload.(*event.FreezePayload).Until
	now := clock.Now()
	if !until.After(now) {
		t.Fatal("Expected freeze to end after now")
	}
	if d := until.Sub(now); d < parameter.FreezeMinDuration || d > parameter.FreezeMaxDuration {
		t.Errorf("Freeze %v outside range", d)
	}
	if !f.Snapshot.Frozen || f.Snapshot.Terminal {
		t.Errorf("Expected frozen live round, got frozen=%v terminal=%v", f.Snapshot.Frozen, f.Snapshot.Terminal)
	}
	if f.Snapshot.Score != 0 {
		t.Errorf("Ice must not score, got %d", f.Snapshot.Score)
	}

	x := mover.Pos.X
	for i := 0; i < 60; i++ {
		clock.Step(1)
		r.Tick(Input{})
	}
	if mover.Pos.X != x {
		t.Errorf("Expected objects frozen in place, moved from %f to %f", x, mover.Pos.X)
	}

	clock.SetTime(until)
	f = r.Tick(Input{})
	if len(eventsOf(f.Events, event.EventFreezeEnded)) != 1 {
		t.Error("Expected freeze ended event")
	}
	if mover.Pos.X <= x {
		t.Error("Expected motion to resume after the freeze")
	}
}

func TestRoundDecayRemovesSliced(t *testing.T) {
	r, clock := newTestRound(t, config.InputBoth, nil)
	place(r, apple(), 400, 300, 'a')

	clock.Step(1)
	r.Tick(Input{Keys: []rune{'a'}})

	clock.Step(1)
	f := r.Tick(Input{})
	if n := f.Snapshot.Count(component.KindFruit, component.StateDecaying); n != 1 {
		t.Fatalf("Expected decaying fruit, got %d", n)
	}

	clock.Advance(parameter.DecayDelay)
	f = r.Tick(Input{})
	if len(f.Snapshot.Objects) != 0 {
		t.Errorf("Expected removal after decay delay, got %d objects", len(f.Snapshot.Objects))
	}
	if f.Snapshot.Strikes != 0 {
		t.Error("Sliced fruit must not count as missed")
	}
}

func TestRoundSpawnsAndRatchets(t *testing.T) {
	clock := NewMockTimeProvider(roundEpoch)
	d, err := config.NewDifficulty("fast", 100*time.Millisecond, 90*time.Millisecond, 2, config.Weights{Fruit: 1})
	if err != nil {
		t.Fatalf("Unexpected difficulty error: %v", err)
	}
	r, err := NewRound(RoundConfig{Difficulty: d}, clock, NewRandom(3), nil)
	if err != nil {
		t.Fatalf("Unexpected round error: %v", err)
	}

	clock.Advance(50 * time.Millisecond)
	if f := r.Tick(Input{}); len(f.Snapshot.Objects) != 0 {
		t.Fatal("Expected no spawn before the interval")
	}

	clock.Advance(60 * time.Millisecond)
	f := r.Tick(Input{})
	if len(f.Snapshot.Objects) == 0 {
		t.Fatal("Expected a batch after the interval")
	}
	if f.Snapshot.SpawnInterval != 99*time.Millisecond {
		t.Errorf("Expected interval 99ms, got %v", f.Snapshot.SpawnInterval)
	}
	for _, o := range f.Snapshot.Objects {
		if o.Kind() != component.KindFruit {
			t.Errorf("Fruit-only profile spawned %s", o.Kind())
		}
	}
}

func TestRoundClampsLargeDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	gomock.InOrder(
		clock.EXPECT().Now().Return(roundEpoch),
		clock.EXPECT().Now().Return(roundEpoch.Add(10*time.Second)),
	)

	r, err := NewRound(RoundConfig{Difficulty: quietDifficulty(t)}, clock, NewRandom(1), nil)
	if err != nil {
		t.Fatalf("Unexpected round error: %v", err)
	}
	o := place(r, apple(), 100, 100, 0)
	o.Vel = vmath.Vec2{X: 100}

	r.Tick(Input{})
	want := 100 + 100*parameter.MaxTickDelta.Seconds()
	if o.Pos.X != want {
		t.Errorf("Expected stalled tick clamped to x=%f, got %f", want, o.Pos.X)
	}
}

func TestRoundScoreboardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mocks.NewMockScoreboard(ctrl)
	board.EXPECT().AddScore("test", "ann", 0).Return(scoreboard.Entry{}, errors.New("disk full"))

	r, _ := newTestRound(t, config.InputBoth, board)
	events := r.Quit()

	ended := eventsOf(events, event.EventRoundEnded)
	if len(ended) != 1 {
		t.Fatalf("Expected round ended despite scoreboard failure, got %d", len(ended))
	}
	res := ended[0].Payload.(*event.RoundEndedPayload)
	if res.Err == nil || res.Reason != event.EndQuit {
		t.Errorf("Expected quit result carrying the error, got %+v", res)
	}
	if !r.Terminal() {
		t.Error("Expected terminal round")
	}
}

func TestRoundNewHighScore(t *testing.T) {
	clock := NewMockTimeProvider(roundEpoch)
	r, err := NewRound(RoundConfig{Difficulty: quietDifficulty(t), HighScore: 1}, clock, NewRandom(1), scoreboard.NewStore(""))
	if err != nil {
		t.Fatalf("Unexpected round error: %v", err)
	}
	place(r, apple(), 200, 300, 0)
	place(r, apple(), 300, 300, 0)
	place(r, apple(), 400, 300, 0)

	clock.Step(1)
	r.Tick(Input{Points: pts(150, 300, 450, 300)})
	r.Quit()

	res := r.Result()
	if res == nil || !res.NewHighScore || res.HighScore != 2 {
		t.Fatalf("Expected new high score 2, got %+v", res)
	}
	if res.Rank != 1 || res.Entry.ID == "" {
		t.Errorf("Expected first place with an id, got rank=%d id=%q", res.Rank, res.Entry.ID)
	}
}
