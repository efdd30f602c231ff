package main

import (
	"flag"
	"io"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-slicer/config"
)

// options holds the command-line overrides
type options struct {
	configPath string
	difficulty string
	name       string
	lang       string
	mode       string
	scores     string
	seed       int64
	seedSet    bool
	debug      bool
	mute       bool
}

// parseFlags parses args without the program name
func parseFlags(args []string, output io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("vi-slicer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&o.difficulty, "difficulty", "", "Difficulty: easy, medium, hard or a config profile")
	fs.StringVar(&o.name, "name", "", "Player name recorded on the scoreboard")
	fs.StringVar(&o.lang, "lang", "", "Display language: en, fr")
	fs.StringVar(&o.mode, "mode", "", "Input mode: path, keys, both")
	fs.StringVar(&o.scores, "scores", "", "Scoreboard file")
	fs.Int64Var(&o.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	fs.BoolVar(&o.debug, "debug", false, "Write a debug log under logs/")
	fs.BoolVar(&o.mute, "mute", false, "Start with sound muted")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	return o, nil
}

// resolveConfig layers defaults, config file, environment and flags
func resolveConfig(o *options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if o.difficulty != "" {
		if err := cfg.SelectDifficulty(o.difficulty); err != nil {
			return nil, errors.Wrap(err, "-difficulty")
		}
	}
	if o.name != "" {
		cfg.Player = o.name
	}
	if o.lang != "" {
		cfg.Language = o.lang
	}
	if o.mode != "" {
		mode, err := config.ParseInputMode(o.mode)
		if err != nil {
			return nil, errors.Wrap(err, "-mode")
		}
		cfg.InputMode = mode
	}
	if o.scores != "" {
		cfg.ScoresFile = o.scores
	}
	if o.seedSet {
		cfg.Seed = o.seed
	}
	return cfg, nil
}
