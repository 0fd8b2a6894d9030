// Package config resolves command-line flags and SNOWGLOBE_* environment variables into a run
// configuration. Flags win over the environment, which wins over built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snowglobe/snow"
)

// Environment variable names
const (
	EnvPreset  = "SNOWGLOBE_PRESET"
	EnvOptions = "SNOWGLOBE_OPTIONS"
	EnvFPS     = "SNOWGLOBE_FPS"
	EnvSound   = "SNOWGLOBE_SOUND"
	EnvDebug   = "SNOWGLOBE_DEBUG"
)

// Defaults
const (
	DefaultFPS        = 60
	DefaultBackground = "#0b1026"
	DefaultWidth      = 960
	DefaultHeight     = 600

	maxFPS = 240
)

// Color modes for the terminal driver
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidFPS    = errors.New("fps out of range")
	ErrColorMode     = errors.New("invalid color mode")
	ErrBackground    = errors.New("invalid background color")
	ErrWindowSize    = errors.New("invalid window size")
)

// Target selects the flag set registered for a driver
type Target int

const (
	Terminal Target = iota
	Window
)

// Source carries process inputs so Load can be driven from tests
type Source struct {
	Args   []string
	Getenv func(string) string
	Output io.Writer // Usage and flag errors, defaults to stderr
}

// Config is the resolved run configuration
type Config struct {
	Preset     string
	Options    snow.Options
	FPS        int
	ColorMode  string
	Background string
	Sound      bool
	Debug      bool
	List       bool

	// Window driver only
	Width, Height int
}

// Input returns what the effect should be created with: the preset with Options layered on top
func (c *Config) Input() snow.Input {
	if c.Preset == "" {
		return c.Options
	}
	base, _ := snow.LookupPreset(c.Preset)
	return base.Options().Merge(c.Options)
}

// Load parses src for the given target
func Load(name string, target Target, src Source) (*Config, error) {
	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	output := src.Output
	if output == nil {
		output = os.Stderr
	}

	cfg := &Config{
		FPS:        DefaultFPS,
		ColorMode:  ColorAuto,
		Background: DefaultBackground,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}

	envOptions, err := loadEnv(cfg, getenv)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "Preset name: "+strings.Join(snow.PresetNames(), ", "))
	optionsJSON := fs.String("options", "", `JSON option overrides, e.g. '{"count":120,"wind":true}'`)
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	fs.StringVar(&cfg.Background, "bg", cfg.Background, "Background color (hex)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play wind ambience")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to logs/")
	fs.BoolVar(&cfg.List, "list", false, "List presets and exit")
	if target == Terminal {
		fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "Color mode: auto, truecolor, 256")
	} else {
		fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
		fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	}

	if err := fs.Parse(src.Args); err != nil {
		return nil, err
	}

	cfg.Options = envOptions
	if *optionsJSON != "" {
		flagOptions, err := decodeOptions(*optionsJSON)
		if err != nil {
			return nil, fmt.Errorf("-options: %w", err)
		}
		cfg.Options = cfg.Options.Merge(flagOptions)
	}

	if err := cfg.validate(target); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnv applies environment values to cfg and returns the decoded option overrides
// Unparseable scalars are ignored; malformed JSON is an error
func loadEnv(cfg *Config, getenv func(string) string) (snow.Options, error) {
	if preset := getenv(EnvPreset); preset != "" {
		cfg.Preset = preset
	}
	if fps := getenv(EnvFPS); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil {
			cfg.FPS = val
		}
	}
	if sound := getenv(EnvSound); sound != "" {
		if val, err := strconv.ParseBool(sound); err == nil {
			cfg.Sound = val
		}
	}
	if debug := getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	raw := getenv(EnvOptions)
	if raw == "" {
		return snow.Options{}, nil
	}
	opts, err := decodeOptions(raw)
	if err != nil {
		return snow.Options{}, fmt.Errorf("%s: %w", EnvOptions, err)
	}
	return opts, nil
}

func decodeOptions(raw string) (snow.Options, error) {
	var opts snow.Options
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return snow.Options{}, err
	}
	return opts, nil
}

func (c *Config) validate(target Target) error {
	if c.Preset != "" {
		if _, ok := snow.LookupPreset(c.Preset); !ok {
			return fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, c.Preset, strings.Join(snow.PresetNames(), ", "))
		}
	}
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("%w: %d (1-%d)", ErrInvalidFPS, c.FPS, maxFPS)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w %q: %v", ErrBackground, c.Background, err)
	}
	switch target {
	case Terminal:
		switch c.ColorMode {
		case ColorAuto, ColorTrueColor, Color256:
		default:
			return fmt.Errorf("%w %q", ErrColorMode, c.ColorMode)
		}
	case Window:
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("%w: %dx%d", ErrWindowSize, c.Width, c.Height)
		}
	}
	return nil
}
