// Package export writes a scene to SVG, PNG or PDF.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"VectorBoard/internal/state"
)

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG serialises shapes, in order, into an SVG document of the given
// size.
func WriteSVG(w io.Writer, width, height int, shapes []state.Shape) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	vw, vh := float64(width), float64(height)
	canvas.Decimals = 0
	canvas.Startview(vw, vh, 0, 0, vw, vh)
	for i := range shapes {
		writeShape(canvas, &shapes[i])
	}
	canvas.End()
	return ew.err
}

func writeShape(canvas *svg.SVG, s *state.Shape) {
	id := fmt.Sprintf(`id="%s"`, s.ID)
	switch s.Kind {
	case state.KindEllipse:
		rx, ry := s.Radii()
		cx, cy := float64(s.X)+float64(rx), float64(s.Y)+float64(ry)
		canvas.Decimals = places(cx, cy, float64(rx), float64(ry))
		canvas.Ellipse(cx, cy, float64(rx), float64(ry), paint(s), id)
	case state.KindRect:
		x, y, w, h := float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height)
		canvas.Decimals = places(x, y, w, h)
		canvas.Rect(x, y, w, h, paint(s), id)
	case state.KindLine:
		x1, y1, x2, y2 := float64(s.X1), float64(s.Y1), float64(s.X2), float64(s.Y2)
		canvas.Decimals = places(x1, y1, x2, y2)
		canvas.Line(x1, y1, x2, y2, paint(s), id)
	case state.KindPath:
		canvas.Path(s.Outline, paint(s), id)
	}
}

// paint is the inline style for a shape's fill and outline.
func paint(s *state.Shape) string {
	var sb strings.Builder
	writeColor(&sb, "fill", s.Fill)
	sb.WriteByte(';')
	if s.StrokeWidth > 0 {
		writeColor(&sb, "stroke", s.Stroke)
		fmt.Fprintf(&sb, ";stroke-width:%g", s.StrokeWidth)
	} else {
		sb.WriteString("stroke:none")
	}
	return sb.String()
}

func writeColor(sb *strings.Builder, prop string, c color.NRGBA) {
	if c.A == 0 {
		fmt.Fprintf(sb, "%s:none", prop)
		return
	}
	fmt.Fprintf(sb, "%s:%s", prop, toHex(c))
	if c.A < 255 {
		fmt.Fprintf(sb, ";%s-opacity:%.3g", prop, float64(c.A)/255)
	}
}

func toHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// maxPlaces bounds the fractional digits written for a coordinate.
const maxPlaces = 3

// places is the fewest fractional digits that write every value exactly,
// up to maxPlaces. float32 noise below that precision is dropped.
func places(vs ...float64) int {
	d := 0
	for _, v := range vs {
		for d < maxPlaces {
			scale := math.Pow10(d)
			if math.Abs(math.Round(v*scale)-v*scale) < 1e-3 {
				break
			}
			d++
		}
	}
	return d
}
