package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/export"
	"VectorBoard/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tool = "freehand"
log_level = "debug"

[export]
dir = "/tmp/out"
format = "png"

[style]
fill = "#f00"
brush_width = 8

[share]
enabled = true
port = 9000
`)
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	tool, err := cfg.InitialTool()
	require.NoError(t, err)
	assert.Equal(t, state.ToolFreeHand, tool)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "/tmp/out", cfg.Export.Dir)
	assert.Equal(t, "drawing", cfg.Export.Name, "default kept")
	format, err := cfg.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, export.FormatPNG, format)
	assert.True(t, cfg.Share.Enabled)
	assert.Equal(t, 9000, cfg.Share.Port)
	assert.True(t, cfg.Share.Advertise, "default kept")
	assert.Equal(t, float32(1024), cfg.Window.Width)

	style, err := cfg.ShapeStyle()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, style.Fill)
	assert.Equal(t, color.NRGBA{A: 255}, style.Stroke)
	assert.Equal(t, float32(8), style.BrushWidth)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, `tool = "lasso"`))
	assert.ErrorIs(t, err, state.ErrUnknownTool)

	_, err = Load(writeConfig(t, "[style]\nfill = \"red\"\n"))
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = Load(writeConfig(t, "[export]\nformat = \"gif\"\n"))
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = Load(writeConfig(t, `tool = `))
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.toml")).Load()
	assert.Error(t, err)
}

func TestDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#000":      {A: 255},
		"#336699":   {R: 0x33, G: 0x66, B: 0x99, A: 255},
		"#33669980": {R: 0x33, G: 0x66, B: 0x99, A: 0x80},
		"none":      {},
		" #FFF ":    {R: 255, G: 255, B: 255, A: 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "#12", "blue", "#zzzzzz"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}
