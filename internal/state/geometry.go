package state

// Geometry is the drag geometry handed to the shape mutator. For box-like
// tools (X1, Y1) is the top-left corner and Width/Height are never negative.
type Geometry struct {
	X1, Y1        float32
	X2, Y2        float32
	Width, Height float32
}

// Normalize turns a drag from anchor to current into shape geometry. Lines
// and free-hand paths keep their direction, so their endpoints pass through
// unchanged.
func Normalize(tool Tool, anchor, current Point) Geometry {
	g := Geometry{
		X1:     anchor.X,
		Y1:     anchor.Y,
		X2:     current.X,
		Y2:     current.Y,
		Width:  current.X - anchor.X,
		Height: current.Y - anchor.Y,
	}
	if tool.keepsDirection() {
		return g
	}
	if g.Width < 0 {
		g.X1, g.X2 = current.X, anchor.X
		g.Width = -g.Width
	}
	if g.Height < 0 {
		g.Y1, g.Y2 = current.Y, anchor.Y
		g.Height = -g.Height
	}
	return g
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
