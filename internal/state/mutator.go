package state

// apply writes g into the shape being drawn. p is the raw pointer sample,
// which free-hand drawing appends to its point sequence.
func (s *Session) apply(g Geometry, p Point) {
	if s.current == nil {
		panic("state: shape mutation without an active drag")
	}
	shape := s.current
	switch s.tool {
	case ToolEllipse:
		shape.Move(g.X1, g.Y1)
		shape.Radius(g.Width/2, g.Height/2)
	case ToolRectangle:
		shape.Move(g.X1, g.Y1)
		shape.Resize(g.Width, g.Height)
	case ToolLine:
		shape.PlotLine(g.X1, g.Y1, g.X2, g.Y2)
		shape.Stroke = lineStroke
		shape.StrokeWidth = 1
	case ToolFreeHand:
		s.points = append(s.points, p)
		shape.PlotPath(s.points)
	default:
		panic("state: no shape variant for tool " + s.tool.String())
	}
}
