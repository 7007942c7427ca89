package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"VectorBoard/internal/state"
)

// WritePDF draws shapes onto a single page the size of the canvas, one
// point per canvas unit.
func WritePDF(w io.Writer, width, height float64, shapes []state.Shape) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	for i := range shapes {
		drawShape(p, &shapes[i])
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawShape(p *gofpdf.Fpdf, s *state.Shape) {
	style := pdfStyle(p, s)
	if style == "" {
		return
	}
	switch s.Kind {
	case state.KindEllipse:
		rx, ry := s.Radii()
		p.Ellipse(float64(s.X+rx), float64(s.Y+ry), float64(rx), float64(ry), 0, style)
	case state.KindRect:
		p.Rect(float64(s.X), float64(s.Y), float64(s.Width), float64(s.Height), style)
	case state.KindLine:
		p.Line(float64(s.X1), float64(s.Y1), float64(s.X2), float64(s.Y2))
	case state.KindPath:
		if len(s.Points) < 2 {
			return
		}
		p.MoveTo(float64(s.Points[0].X), float64(s.Points[0].Y))
		for _, pt := range s.Points[1:] {
			p.LineTo(float64(pt.X), float64(pt.Y))
		}
		p.DrawPath("D")
	}
}

// pdfStyle sets the pen and brush for s and returns the gofpdf style string,
// or "" when nothing would be visible.
func pdfStyle(p *gofpdf.Fpdf, s *state.Shape) string {
	filled := s.Fill.A > 0 && s.Kind != state.KindLine && s.Kind != state.KindPath
	stroked := s.StrokeWidth > 0 && s.Stroke.A > 0
	if filled {
		setColor(p.SetFillColor, s.Fill)
	}
	if stroked {
		setColor(p.SetDrawColor, s.Stroke)
		p.SetLineWidth(float64(s.StrokeWidth))
	}
	switch {
	case filled && stroked:
		return "FD"
	case filled:
		return "F"
	case stroked:
		return "D"
	}
	return ""
}

func setColor(set func(r, g, b int), c color.NRGBA) {
	set(int(c.R), int(c.G), int(c.B))
}
