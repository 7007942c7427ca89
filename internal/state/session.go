package state

// Session is one pointer-down to pointer-up drag. The zero value is idle.
type Session struct {
	tool    Tool
	anchor  DragAnchor
	current *Shape
	points  []Point
}

func (s *Session) Active() bool { return s.current != nil }

func (s *Session) Anchor() DragAnchor { return s.anchor }

// Current is the shape being drawn, or nil when idle.
func (s *Session) Current() *Shape { return s.current }

func (s *Session) Tool() Tool { return s.tool }

// Points returns a copy of the free-hand samples collected so far.
func (s *Session) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s *Session) begin(tool Tool, p Point, shape *Shape) {
	s.tool = tool
	s.anchor = DragAnchor{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
	s.current = shape
	s.points = s.points[:0]
	if tool == ToolFreeHand {
		s.points = append(s.points, p)
	}
}

func (s *Session) move(p Point) {
	s.anchor.X2, s.anchor.Y2 = p.X, p.Y
	s.anchor.Width = abs32(p.X - s.anchor.X1)
	s.anchor.Height = abs32(p.Y - s.anchor.Y1)
	s.apply(Normalize(s.tool, s.anchor.Start(), p), p)
}

func (s *Session) end() *Shape {
	shape := s.current
	s.current = nil
	s.points = nil
	return shape
}
