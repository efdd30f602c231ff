package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// InputMode selects which slice detector modes are active
type InputMode uint8

const (
	InputBoth InputMode = iota // Mouse trail and keys
	InputPath                  // Mouse trail only
	InputKeys                  // Keys only
)

func (m InputMode) String() string {
	switch m {
	case InputPath:
		return "path"
	case InputKeys:
		return "keys"
	default:
		return "both"
	}
}

// PathEnabled reports whether pointer trail slicing is active
func (m InputMode) PathEnabled() bool { return m != InputKeys }

// KeysEnabled reports whether discrete key slicing is active
func (m InputMode) KeysEnabled() bool { return m != InputPath }

// ParseInputMode parses "path", "keys" or "both"
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return InputBoth, nil
	case "path", "mouse":
		return InputPath, nil
	case "keys", "keyboard":
		return InputKeys, nil
	default:
		return InputBoth, errors.Errorf("unknown input mode %q", s)
	}
}

// AudioSettings mirrors the [audio] table
type AudioSettings struct {
	Enabled      bool `toml:"enabled"`
	MasterVolume int  `toml:"master_volume"` // 0-100
	SampleRate   int  `toml:"sample_rate"`
}

// difficultyFile is one [difficulties.<name>] table, durations in ms
type difficultyFile struct {
	SpawnIntervalMs int64   `toml:"spawn_interval_ms"`
	MinIntervalMs   int64   `toml:"min_interval_ms"`
	BatchSize       int     `toml:"batch_size"`
	Weights         Weights `toml:"weights"`
}

type file struct {
	Difficulty   string                    `toml:"difficulty"`
	Player       string                    `toml:"player"`
	Language     string                    `toml:"language"`
	InputMode    string                    `toml:"input_mode"`
	ScoresFile   string                    `toml:"scores_file"`
	Seed         int64                     `toml:"seed"`
	Audio        *AudioSettings            `toml:"audio"`
	Difficulties map[string]difficultyFile `toml:"difficulties"`
}

// Config is the resolved game configuration
type Config struct {
	Difficulty Difficulty
	Player     string
	Language   string
	InputMode  InputMode
	ScoresFile string
	// Seed drives the random source, 0 seeds from the clock
	Seed  int64
	Audio AudioSettings

	// custom holds profiles from the config file, by lowercase name
	custom map[string]Difficulty
}

// Defaults
const (
	DefaultPlayer     = "player"
	DefaultLanguage   = "en"
	DefaultScoresFile = "scores.toml"
)

// Default returns the built-in configuration
func Default() *Config {
	d, _ := Preset(DifficultyEasy)
	return &Config{
		Difficulty: d,
		Player:     DefaultPlayer,
		Language:   DefaultLanguage,
		InputMode:  InputBoth,
		ScoresFile: DefaultScoresFile,
		Audio: AudioSettings{
			Enabled:      true,
			MasterVolume: 50,
			SampleRate:   44100,
		},
		custom: make(map[string]Difficulty),
	}
}

// Load reads a TOML config file on top of the defaults
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML config data on top of the defaults
func Parse(data []byte) (*Config, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	cfg := Default()

	for name, df := range f.Difficulties {
		key := strings.ToLower(name)
		base, err := Preset(key)
		if err != nil {
			// New profile, every field must be given
			base = Difficulty{Name: key}
		}
		if df.SpawnIntervalMs != 0 {
			base.SpawnInterval = time.Duration(df.SpawnIntervalMs) * time.Millisecond
		}
		if df.MinIntervalMs != 0 {
			base.MinInterval = time.Duration(df.MinIntervalMs) * time.Millisecond
		}
		if df.BatchSize != 0 {
			base.BatchSize = df.BatchSize
		}
		if df.Weights != (Weights{}) {
			base.Weights = df.Weights
		}
		d, err := NewDifficulty(key, base.SpawnInterval, base.MinInterval, base.BatchSize, base.Weights)
		if err != nil {
			return nil, errors.Wrapf(err, "difficulties.%s", name)
		}
		cfg.custom[key] = d
	}

	if f.Difficulty != "" {
		if err := cfg.SelectDifficulty(f.Difficulty); err != nil {
			return nil, err
		}
	}
	if f.Player != "" {
		cfg.Player = f.Player
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.InputMode != "" {
		mode, err := ParseInputMode(f.InputMode)
		if err != nil {
			return nil, err
		}
		cfg.InputMode = mode
	}
	if f.ScoresFile != "" {
		cfg.ScoresFile = f.ScoresFile
	}
	cfg.Seed = f.Seed
	if f.Audio != nil {
		cfg.Audio = *f.Audio
		if cfg.Audio.SampleRate <= 0 {
			cfg.Audio.SampleRate = Default().Audio.SampleRate
		}
	}

	return cfg, nil
}

// SelectDifficulty switches to a named profile, config file profiles
// shadow presets of the same name
func (c *Config) SelectDifficulty(name string) error {
	key := strings.ToLower(name)
	if d, ok := c.custom[key]; ok {
		c.Difficulty = d
		return nil
	}
	d, err := Preset(key)
	if err != nil {
		return err
	}
	c.Difficulty = d
	return nil
}

// ApplyEnv applies VI_SLICER_* environment overrides
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if name := os.Getenv("VI_SLICER_DIFFICULTY"); name != "" {
		_ = c.SelectDifficulty(name)
	}
	if player := os.Getenv("VI_SLICER_PLAYER"); player != "" {
		c.Player = player
	}
	if enabled := os.Getenv("VI_SLICER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}
	if volume := os.Getenv("VI_SLICER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(val, 0), 100)
		}
	}
}
