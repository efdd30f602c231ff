package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-slicer/audio"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-slicer: %v\n", err)
		os.Exit(1)
	}
	slog.Info("config resolved",
		"difficulty", cfg.Difficulty.Name,
		"player", cfg.Player,
		"mode", cfg.InputMode,
		"lang", cfg.Language,
		"scores", cfg.ScoresFile,
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			slog.Error("crashed", "panic", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SLICER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	sounds := audio.NewSoundManager(audio.FromSettings(cfg.Audio))
	if err := sounds.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "err", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(opts.mute)

	g, err := newGame(cfg, screen, sounds)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vi-slicer: %v\n", err)
		os.Exit(1)
	}
	g.run()
}
