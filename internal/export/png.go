package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"VectorBoard/internal/state"
)

// WritePNG rasterises the SVG rendering of shapes.
func WritePNG(w io.Writer, width, height int, shapes []state.Shape) error {
	img, err := Rasterize(width, height, width, height, shapes)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Rasterize draws shapes laid out on a width x height canvas onto a
// transparent image of pw x ph pixels.
func Rasterize(width, height, pw, ph int, shapes []state.Shape) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("rasterize: empty canvas %dx%d", width, height)
	}
	var doc bytes.Buffer
	if err := WriteSVG(&doc, width, height, shapes); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(&doc, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("rasterize: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(pw), float64(ph))

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(pw, ph, scanner), 1)
	return img, nil
}
