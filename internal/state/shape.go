package state

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Style is the paint applied to a shape when it is created.
type Style struct {
	Fill        color.NRGBA `json:"fill"`
	Stroke      color.NRGBA `json:"stroke"`
	StrokeWidth float32     `json:"stroke_width"`
	BrushWidth  float32     `json:"brush_width"`
}

// DefaultStyle matches what a bare SVG element gets: black fill, no outline,
// and a 5 unit black brush for free-hand paths.
func DefaultStyle() Style {
	return Style{
		Fill:        color.NRGBA{A: 255},
		Stroke:      color.NRGBA{A: 255},
		StrokeWidth: 0,
		BrushWidth:  5,
	}
}

var lineStroke = color.NRGBA{A: 255}

// Shape is a renderable vector shape. Ellipses and rectangles use the
// bounding box, lines the endpoints, and paths the outline and points.
type Shape struct {
	ID     string    `json:"id"`
	Kind   ShapeKind `json:"kind"`
	X      float32   `json:"x"`
	Y      float32   `json:"y"`
	Width  float32   `json:"width"`
	Height float32   `json:"height"`

	X1 float32 `json:"x1,omitempty"`
	Y1 float32 `json:"y1,omitempty"`
	X2 float32 `json:"x2,omitempty"`
	Y2 float32 `json:"y2,omitempty"`

	Outline string  `json:"d,omitempty"`
	Points  []Point `json:"points,omitempty"`

	Fill        color.NRGBA `json:"fill"`
	Stroke      color.NRGBA `json:"stroke"`
	StrokeWidth float32     `json:"stroke_width"`
}

// NewShape creates a zero-sized shape of the given kind at p.
func NewShape(kind ShapeKind, p Point, style Style) *Shape {
	s := &Shape{
		ID:          uuid.NewString(),
		Kind:        kind,
		Fill:        style.Fill,
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
	}
	switch kind {
	case KindEllipse, KindRect:
		s.Move(p.X, p.Y)
	case KindLine:
		s.PlotLine(p.X, p.Y, p.X, p.Y)
		s.Fill = color.NRGBA{}
		s.Stroke = lineStroke
		s.StrokeWidth = 1
	case KindPath:
		s.PlotPath([]Point{p})
		s.Fill = color.NRGBA{}
		s.StrokeWidth = style.BrushWidth
		if s.Stroke.A == 0 {
			// a brush always leaves a mark
			s.Stroke = lineStroke
		}
	}
	return s
}

// Move places the bounding box's top-left corner at (x, y).
func (s *Shape) Move(x, y float32) {
	s.X, s.Y = x, y
}

func (s *Shape) Resize(w, h float32) {
	s.Width, s.Height = w, h
}

// Radius sizes an ellipse by its radii, keeping the top-left corner.
func (s *Shape) Radius(rx, ry float32) {
	s.Resize(2*rx, 2*ry)
}

func (s *Shape) Radii() (rx, ry float32) {
	return s.Width / 2, s.Height / 2
}

func (s *Shape) PlotLine(x1, y1, x2, y2 float32) {
	s.X1, s.Y1, s.X2, s.Y2 = x1, y1, x2, y2
	r := boundsOfPoints([]Point{{x1, y1}, {x2, y2}})
	s.X, s.Y, s.Width, s.Height = r.X, r.Y, r.Width, r.Height
}

// PlotPath replaces the path with points. The first point is the path's
// start; each following sample becomes a line-to plus a move-to to the same
// point, and the outline is closed at the end.
func (s *Shape) PlotPath(points []Point) {
	s.Points = append(s.Points[:0], points...)
	s.Outline = freeHandOutline(points)
	r := boundsOfPoints(points)
	s.X, s.Y, s.Width, s.Height = r.X, r.Y, r.Width, r.Height
}

func (s *Shape) Bounds() Rect {
	r := Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	if s.StrokeWidth > 0 {
		r = r.Inset(-s.StrokeWidth / 2)
	}
	return r
}

// Clone returns a deep copy that is safe to hand to another goroutine.
func (s *Shape) Clone() Shape {
	c := *s
	if s.Points != nil {
		c.Points = append([]Point(nil), s.Points...)
	}
	return c
}

func freeHandOutline(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M")
	writePoint(&sb, points[0])
	for _, p := range points {
		sb.WriteString(" L")
		writePoint(&sb, p)
		sb.WriteString(" M")
		writePoint(&sb, p)
	}
	sb.WriteString(" Z")
	return sb.String()
}

func writePoint(sb *strings.Builder, p Point) {
	sb.WriteString(formatCoord(p.X))
	sb.WriteByte(' ')
	sb.WriteString(formatCoord(p.Y))
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
