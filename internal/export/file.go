package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"VectorBoard/internal/state"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FileName is the fixed download name for a format.
func FileName(base string, f Format) string {
	return base + "." + string(f)
}

// Target is where and at what size a scene is exported.
type Target struct {
	Dir    string
	Name   string
	Width  int
	Height int
}

// ToFile writes shapes to Dir/Name.<format>, replacing any earlier export,
// and returns the path written.
func ToFile(t Target, f Format, shapes []state.Shape) (string, error) {
	if t.Width <= 0 || t.Height <= 0 {
		r := state.Bounds(shapes, 10)
		t.Width, t.Height = int(r.X+r.Width), int(r.Y+r.Height)
	}
	if err := os.MkdirAll(t.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(t.Dir, FileName(t.Name, f))
	tmp, err := os.CreateTemp(t.Dir, "."+t.Name+"-*")
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	defer os.Remove(tmp.Name())

	switch f {
	case FormatSVG:
		err = WriteSVG(tmp, t.Width, t.Height, shapes)
	case FormatPNG:
		err = WritePNG(tmp, t.Width, t.Height, shapes)
	case FormatPDF:
		err = WritePDF(tmp, float64(t.Width), float64(t.Height), shapes)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("export %s: %w", f, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	slog.Info("exported", "path", path, "shapes", len(shapes), "width", t.Width, "height", t.Height)
	return path, nil
}
