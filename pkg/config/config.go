// Package config loads and validates kruskalviz settings.
//
// Settings come from three layers, later layers winning:
//
//  1. [Default]
//  2. a TOML (.toml) or YAML (.yaml, .yml) file, see [Load]
//  3. command-line flags, applied by the CLI
//
// Example config.toml:
//
//	frames_per_edge = 30
//	vertices = 40
//	width = 1600
//	height = 900
//	tick_rate = 60
//	seed = 42
//
//	[keys]
//	jump-to-end = "x"
//	toggle-pause = "p"
//
// The default file lives at $XDG_CONFIG_HOME/kruskalviz/config.toml (falling
// back to ~/.config). A missing default file is not an error.
package config

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
	"github.com/derian-c/MATH478-FinalProject/pkg/geom"
	"github.com/derian-c/MATH478-FinalProject/pkg/pointfile"
)

const (
	// AppName names the config and cache directories.
	AppName = "kruskalviz"

	// DefaultFramesPerEdge is the number of ticks spent drawing one edge.
	DefaultFramesPerEdge = 30

	// DefaultVertices is the size of a randomly generated vertex set.
	DefaultVertices = 25

	// DefaultWidth and DefaultHeight size the virtual drawing pane.
	DefaultWidth  = 1600.0
	DefaultHeight = 900.0

	// DefaultTickRate is the animation clock in ticks per second.
	DefaultTickRate = 60

	// MaxVertices caps random vertex sets at the same size point files are
	// held to.
	MaxVertices = pointfile.MaxPoints
)

// Config holds every setting of a run.
type Config struct {
	// FramesPerEdge is the number of clock ticks used to draw one edge.
	FramesPerEdge int `toml:"frames_per_edge" yaml:"frames_per_edge" validate:"min=1,max=3600"`

	// Vertices is the number of random vertices. Ignored when Input is set.
	Vertices int `toml:"vertices" yaml:"vertices" validate:"min=1,max=2000"`

	// Width and Height size the pane vertices are placed in.
	Width  float64 `toml:"width" yaml:"width" validate:"gt=0"`
	Height float64 `toml:"height" yaml:"height" validate:"gt=0"`

	// TickRate is the animation clock frequency in Hz.
	TickRate int `toml:"tick_rate" yaml:"tick_rate" validate:"min=1,max=240"`

	// Seed makes random vertex sets reproducible. Zero picks a fresh seed.
	Seed uint64 `toml:"seed" yaml:"seed"`

	// Input is an optional point file. When set, vertices are loaded from
	// it instead of generated.
	Input string `toml:"input" yaml:"input"`

	// Keys rebinds playback commands in the player. Keys are command names
	// ("toggle-pause", "restart", "jump-to-start", "jump-to-end"), values
	// are key names such as "x" or "space".
	Keys map[string]string `toml:"keys" yaml:"keys" validate:"dive,required"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FramesPerEdge: DefaultFramesPerEdge,
		Vertices:      DefaultVertices,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		TickRate:      DefaultTickRate,
	}
}

// Pane returns the drawing pane size.
func (c Config) Pane() geom.Size {
	return geom.Size{W: c.Width, H: c.Height}
}

// Random reports whether vertices are generated rather than loaded.
func (c Config) Random() bool {
	return c.Input == ""
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", describe(err))
	}
	for _, name := range slices.Sorted(maps.Keys(c.Keys)) {
		if _, err := animator.ParseCommand(name); err != nil {
			return errors.New(errors.ErrCodeInvalidConfig, "Keys: %v", err)
		}
	}
	return nil
}

// describe turns validator output into "field: constraint" phrases.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		switch fe.Tag() {
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s, got %v", name, fe.Param(), fe.Value()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s, got %v", name, fe.Param(), fe.Value()))
		case "required":
			parts = append(parts, fmt.Sprintf("%s must not be empty", name))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s, got %v", name, fe.Param(), fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %q", name, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// Load reads a config file on top of [Default] and validates the result.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(filepath.Dir(path), cfg.Input)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like [Load] but returns [Default] when path does not
// exist. It is meant for the implicit default location.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the implicit config file location using the XDG
// standard (~/.config/kruskalviz/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}
