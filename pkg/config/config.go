// Package config loads the surface size and drawing style from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MaxSurfaceSize bounds the surface width and height in pixels
	MaxSurfaceSize = 4096
	// MaxStrokeSize bounds point radius and stroke widths in pixels
	MaxStrokeSize = 64
)

var ErrInvalidColor = errors.New("invalid color")

// Config is the on-disk configuration
type Config struct {
	Surface SurfaceConfig `toml:"surface"`
	Style   StyleConfig   `toml:"style"`
}

// SurfaceConfig describes the drawing surface
type SurfaceConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// StyleConfig describes how points, the boundary and the highlight are drawn
type StyleConfig struct {
	PointRadius    float64 `toml:"point_radius"`
	PointColor     string  `toml:"point_color"`
	LabelColor     string  `toml:"label_color"`
	BoundaryColor  string  `toml:"boundary_color"`
	BoundaryWidth  float64 `toml:"boundary_width"`
	HighlightColor string  `toml:"highlight_color"`
	HighlightWidth float64 `toml:"highlight_width"`
}

// Default returns the built in configuration
func Default() Config {
	return Config{
		Surface: SurfaceConfig{
			Width:      500,
			Height:     500,
			Background: "#999999",
		},
		Style: StyleConfig{
			PointRadius:    5,
			PointColor:     "#ffff00",
			LabelColor:     "#000000",
			BoundaryColor:  "#000000",
			BoundaryWidth:  1,
			HighlightColor: "#0000ff",
			HighlightWidth: 2,
		},
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks sizes and colors
func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 ||
		c.Surface.Width > MaxSurfaceSize || c.Surface.Height > MaxSurfaceSize {
		return fmt.Errorf("surface size must be within 1..%d, got %dx%d", MaxSurfaceSize, c.Surface.Width, c.Surface.Height)
	}

	lengths := []struct {
		key   string
		value float64
		min   float64
	}{
		{"point_radius", c.Style.PointRadius, math.SmallestNonzeroFloat64},
		{"boundary_width", c.Style.BoundaryWidth, 0},
		{"highlight_width", c.Style.HighlightWidth, 0},
	}
	for _, l := range lengths {
		if math.IsNaN(l.value) || l.value < l.min || l.value > MaxStrokeSize {
			return fmt.Errorf("%s must be within %v..%v, got %v", l.key, l.min, MaxStrokeSize, l.value)
		}
	}

	colors := map[string]string{
		"background":      c.Surface.Background,
		"point_color":     c.Style.PointColor,
		"label_color":     c.Style.LabelColor,
		"boundary_color":  c.Style.BoundaryColor,
		"highlight_color": c.Style.HighlightColor,
	}
	for key, value := range colors {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// ParseColor parses #rgb and #rrggbb notation
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustColor parses a color that has already been validated
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
