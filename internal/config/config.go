// Package config loads GeoBoard settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"GeoBoard/internal/state"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the app looks for a config file when none is given.
const DefaultPath = "geoboard.toml"

// Colors are hex strings such as "#85144b".
type Colors struct {
	Point  string `toml:"point"`
	Line   string `toml:"line"`
	Circle string `toml:"circle"`
	Grid   string `toml:"grid"`
	Label  string `toml:"label"`
}

// Config holds all tunables.
type Config struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	GridSpacing float64 `toml:"grid_spacing"`
	// HitRadius sizes both the point markers and their hit region.
	HitRadius   float64 `toml:"hit_radius"`
	HitTest     string  `toml:"hit_test"`
	LabelSize   float64 `toml:"label_size"`
	LabelOffset float64 `toml:"label_offset"`
	Port        int     `toml:"port"`
	Colors      Colors  `toml:"colors"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:       1024,
		Height:      768,
		GridSpacing: 25,
		HitRadius:   state.CircleRadius,
		HitTest:     state.HitTestSum.String(),
		LabelSize:   12,
		LabelOffset: state.DefaultLabelOffset,
		Port:        8888,
		Colors: Colors{
			Point:  "#85144b",
			Line:   "#0074D9",
			Circle: "#FFDC00",
			Grid:   "#c3c3c3",
			Label:  "#111111",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	case c.GridSpacing <= 0:
		return fmt.Errorf("invalid grid spacing %v", c.GridSpacing)
	case c.HitRadius <= 0:
		return fmt.Errorf("invalid hit radius %v", c.HitRadius)
	case c.LabelSize <= 0:
		return fmt.Errorf("invalid label size %v", c.LabelSize)
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, err := state.ParseHitTest(c.HitTest); err != nil {
		return err
	}
	return nil
}

// ControllerOptions converts the settings into controller options.
// Validate must have passed.
func (c Config) ControllerOptions() []state.Option {
	mode, _ := state.ParseHitTest(c.HitTest)
	return []state.Option{
		state.WithHitRadius(c.HitRadius),
		state.WithHitTest(mode),
		state.WithLabelOffset(c.LabelOffset),
	}
}
