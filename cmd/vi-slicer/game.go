package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-slicer/audio"
	"github.com/lixenwraith/vi-slicer/config"
	"github.com/lixenwraith/vi-slicer/engine"
	"github.com/lixenwraith/vi-slicer/event"
	"github.com/lixenwraith/vi-slicer/input"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/render"
	"github.com/lixenwraith/vi-slicer/scoreboard"
	"github.com/lixenwraith/vi-slicer/system"
)

// game wires the session to the terminal, audio and scoreboard
type game struct {
	cfg     *config.Config
	screen  tcell.Screen
	session *engine.Session
	board   *scoreboard.Store

	machine   *input.Machine
	collector *input.Collector
	trail     *input.Trail
	renderer  *render.TerminalRenderer
	sounds    *audio.SoundManager

	// scores is the difficulty table shown after the round ends
	scores []scoreboard.Entry
}

func newGame(cfg *config.Config, screen tcell.Screen, sounds *audio.SoundManager) (*game, error) {
	board := scoreboard.NewStore(cfg.ScoresFile)
	clock := engine.NewPausableClock(engine.NewTimeProvider())
	roundCfg := engine.RoundConfig{
		Difficulty:   cfg.Difficulty,
		Player:       cfg.Player,
		InputMode:    cfg.InputMode,
		ComboScoring: system.ScoreWindowTier,
	}

	session, err := engine.NewSession(roundCfg, clock, engine.NewRandom(cfg.Seed), board)
	if session == nil {
		return nil, err
	}
	if err != nil {
		slog.Warn("scoreboard unreadable, high score starts at 0", "path", cfg.ScoresFile, "err", err)
	}

	cols, rows := screen.Size()
	return &game{
		cfg:       cfg,
		screen:    screen,
		session:   session,
		board:     board,
		machine:   input.NewMachine(cols, rows),
		collector: input.NewCollector(),
		trail:     input.NewTrail(),
		renderer:  render.NewTerminalRenderer(screen, render.NewText(cfg.Language)),
		sounds:    sounds,
	}, nil
}

// run polls terminal events and ticks the session until quit
func (g *game) run() {
	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := g.screen.PollEvent()
			// Finalized screen
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !g.handle(ev) {
				return
			}
		case <-frameTicker.C:
			g.tick()
		}
	}
}

// handle applies one terminal event, returns false to exit
func (g *game) handle(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		g.publish(g.session.Quit())
		return false

	case input.IntentPause:
		paused := g.session.TogglePause()
		g.collector.Reset()
		g.trail.Clear()
		slog.Debug("pause toggled", "paused", paused)

	case input.IntentRestart:
		if !g.session.Round().Terminal() {
			return true
		}
		if err := g.session.Restart(); err != nil {
			slog.Error("restart failed", "err", err)
			return true
		}
		g.collector.Reset()
		g.trail.Clear()
		g.scores = nil
		slog.Info("round started", "round", g.session.Round().ID(), "high_score", g.session.HighScore())

	case input.IntentToggleMute:
		muted := g.sounds.ToggleMute()
		slog.Debug("mute toggled", "muted", muted)

	case input.IntentResize:
		vp := g.machine.Viewport()
		g.renderer.Resize(vp.Cols, vp.Rows)
		g.screen.Sync()

	case input.IntentPenUp:
		g.collector.Add(intent)

	case input.IntentPoint:
		if g.session.Paused() {
			return true
		}
		g.trail.Add(intent.Point, g.session.Clock().Now())
		g.collector.Add(intent)

	default:
		if !g.session.Paused() {
			g.collector.Add(intent)
		}
	}
	return true
}

// tick advances one frame and draws it
func (g *game) tick() {
	frame := g.session.Tick(g.collector.Drain())
	g.publish(frame.Events)

	now := g.session.Clock().Now()
	g.trail.Prune(now)

	g.renderer.RenderFrame(render.View{
		Snapshot: &frame.Snapshot,
		Trail:    g.trail,
		Now:      now,
		Scores:   g.scores,
		ShowKeys: g.cfg.InputMode.KeysEnabled(),
		Muted:    g.sounds.Muted(),
	})
}

// publish plays and logs round events
func (g *game) publish(events []event.Event) {
	audio.PlayEvents(g.sounds, events)

	for _, e := range events {
		slog.Debug("round event", "type", e.Type, "time", e.Time)
		if e.Type != event.EventRoundEnded {
			continue
		}

		res, ok := e.Payload.(*event.RoundEndedPayload)
		if !ok {
			continue
		}
		slog.Info("round ended",
			"reason", res.Reason,
			"score", res.Score,
			"high_score", res.HighScore,
			"rank", res.Rank,
		)
		if res.Err != nil {
			slog.Error("score not saved", "path", g.board.Path(), "err", res.Err)
		}

		scores, err := g.board.TopScores(g.cfg.Difficulty.Name)
		if err != nil {
			slog.Error("scoreboard read failed", "err", err)
		}
		g.scores = scores
	}
}
