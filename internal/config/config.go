// Package config loads VectorBoard settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"VectorBoard/internal/export"
	"VectorBoard/internal/state"
)

var ErrInvalidColor = errors.New("invalid colour")

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Export struct {
	Dir    string `toml:"dir"`
	Name   string `toml:"name"`   // file name without extension
	Format string `toml:"format"` // svg, png or pdf
}

type Style struct {
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float32 `toml:"stroke_width"`
	BrushWidth  float32 `toml:"brush_width"`
}

type Share struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

// Config holds the application configuration.
type Config struct {
	Tool     string `toml:"tool"`
	LogLevel string `toml:"log_level"`
	Window   Window `toml:"window"`
	Export   Export `toml:"export"`
	Style    Style  `toml:"style"`
	Share    Share  `toml:"share"`
}

// New returns the defaults every loaded file is decoded over.
func New() *Config {
	return &Config{
		Tool:     "select",
		LogLevel: "info",
		Window:   Window{Width: 1024, Height: 768},
		Export:   Export{Dir: ".", Name: "drawing", Format: "svg"},
		Style: Style{
			Fill:       "#000000",
			Stroke:     "#000000",
			BrushWidth: 5,
		},
		Share: Share{Port: 8888, Advertise: true},
	}
}

func (c *Config) InitialTool() (state.Tool, error) {
	return state.ParseTool(c.Tool)
}

func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Export.Format)
}

// ShapeStyle converts the [style] section for the editor.
func (c *Config) ShapeStyle() (state.Style, error) {
	fill, err := ParseColor(c.Style.Fill)
	if err != nil {
		return state.Style{}, fmt.Errorf("style.fill: %w", err)
	}
	stroke, err := ParseColor(c.Style.Stroke)
	if err != nil {
		return state.Style{}, fmt.Errorf("style.stroke: %w", err)
	}
	return state.Style{
		Fill:        fill,
		Stroke:      stroke,
		StrokeWidth: c.Style.StrokeWidth,
		BrushWidth:  c.Style.BrushWidth,
	}, nil
}

func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA and "none".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "none" || s == "transparent" {
		return color.NRGBA{}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
