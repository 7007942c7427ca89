package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBoxTools(t *testing.T) {
	cases := []struct {
		name          string
		from, to      Point
		wantX, wantY  float32
		width, height float32
	}{
		{"down right", Point{10, 20}, Point{50, 50}, 10, 20, 40, 30},
		{"up left", Point{50, 50}, Point{10, 20}, 10, 20, 40, 30},
		{"up right", Point{10, 50}, Point{50, 20}, 10, 20, 40, 30},
		{"down left", Point{50, 20}, Point{10, 50}, 10, 20, 40, 30},
		{"no movement", Point{7, 7}, Point{7, 7}, 7, 7, 0, 0},
	}
	for _, tool := range []Tool{ToolRectangle, ToolEllipse} {
		for _, c := range cases {
			t.Run(tool.String()+"/"+c.name, func(t *testing.T) {
				g := Normalize(tool, c.from, c.to)
				assert.Equal(t, c.wantX, g.X1)
				assert.Equal(t, c.wantY, g.Y1)
				assert.Equal(t, c.width, g.Width)
				assert.Equal(t, c.height, g.Height)
				assert.Equal(t, min(c.from.X, c.to.X), g.X1)
				assert.Equal(t, min(c.from.Y, c.to.Y), g.Y1)
				assert.Equal(t, max(c.from.X, c.to.X), g.X2)
				assert.Equal(t, max(c.from.Y, c.to.Y), g.Y2)
			})
		}
	}
}

func TestNormalizeNeverNegative(t *testing.T) {
	for x := float32(-30); x <= 30; x += 15 {
		for y := float32(-30); y <= 30; y += 15 {
			g := Normalize(ToolRectangle, Point{0, 0}, Point{x, y})
			assert.GreaterOrEqual(t, g.Width, float32(0))
			assert.GreaterOrEqual(t, g.Height, float32(0))
		}
	}
}

func TestNormalizeKeepsDirectionForLinesAndPaths(t *testing.T) {
	from, to := Point{50, 50}, Point{10, 20}
	for _, tool := range []Tool{ToolLine, ToolFreeHand} {
		g := Normalize(tool, from, to)
		assert.Equal(t, Geometry{X1: 50, Y1: 50, X2: 10, Y2: 20, Width: -40, Height: -30}, g, tool.String())
	}
}
