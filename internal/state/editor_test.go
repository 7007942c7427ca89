package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drag(e *Editor, points ...Point) *Shape {
	e.PointerDown(points[0])
	shape := e.Session().Current()
	for _, p := range points[1:] {
		e.PointerMove(p)
	}
	e.PointerUp()
	return shape
}

func TestRectangleDragUpLeft(t *testing.T) {
	e := NewEditor(WithTool(ToolRectangle))
	require.True(t, e.PointerDown(Point{50, 50}))
	require.True(t, e.PointerMove(Point{10, 20}))

	shape := e.Session().Current()
	assert.Equal(t, KindRect, shape.Kind)
	assert.Equal(t, float32(10), shape.X)
	assert.Equal(t, float32(20), shape.Y)
	assert.Equal(t, float32(40), shape.Width)
	assert.Equal(t, float32(30), shape.Height)

	a := e.Session().Anchor()
	assert.Equal(t, DragAnchor{X1: 50, Y1: 50, X2: 10, Y2: 20, Width: 40, Height: 30}, a)

	require.True(t, e.PointerUp())
	assert.False(t, e.Dragging())
	assert.Nil(t, e.Session().Current())
}

func TestEllipseRadii(t *testing.T) {
	e := NewEditor(WithTool(ToolEllipse))
	shape := drag(e, Point{0, 0}, Point{100, 60})

	rx, ry := shape.Radii()
	assert.Equal(t, float32(50), rx)
	assert.Equal(t, float32(30), ry)
	assert.Equal(t, float32(0), shape.X)
	assert.Equal(t, float32(0), shape.Y)
}

func TestLineKeepsDirectionAndForcesStroke(t *testing.T) {
	style := DefaultStyle()
	style.StrokeWidth = 9
	e := NewEditor(WithTool(ToolLine), WithStyle(style))
	shape := drag(e, Point{40, 40}, Point{5, 10})

	assert.Equal(t, [4]float32{40, 40, 5, 10}, [4]float32{shape.X1, shape.Y1, shape.X2, shape.Y2})
	assert.Equal(t, float32(1), shape.StrokeWidth)
	assert.Equal(t, lineStroke, shape.Stroke)
}

func TestFreeHandCollectsSamplesInOrder(t *testing.T) {
	e := NewEditor(WithTool(ToolFreeHand))
	require.True(t, e.PointerDown(Point{0, 0}))
	e.PointerMove(Point{5, 5})
	e.PointerMove(Point{10, 0})

	want := []Point{{0, 0}, {5, 5}, {10, 0}}
	assert.Equal(t, want, e.Session().Points())

	shape := e.Session().Current()
	assert.Equal(t, "M0 0 L0 0 M0 0 L5 5 M5 5 L10 0 M10 0 Z", shape.Outline)

	e.PointerUp()
	assert.Empty(t, e.Session().Points())
	assert.Equal(t, want, shape.Points)
}

func TestFreeHandWithoutStrokeColourDrawsBlack(t *testing.T) {
	style := DefaultStyle()
	style.Stroke = color.NRGBA{}
	style.Fill = color.NRGBA{R: 255, A: 255}
	e := NewEditor(WithTool(ToolFreeHand), WithStyle(style))

	path := drag(e, Point{0, 0}, Point{4, 4})
	assert.Equal(t, color.NRGBA{A: 255}, path.Stroke)
	assert.Equal(t, style.BrushWidth, path.StrokeWidth)

	e.Tools().SetTool(ToolRectangle)
	rect := drag(e, Point{0, 0}, Point{4, 4})
	assert.Equal(t, color.NRGBA{}, rect.Stroke, "shapes keep a transparent outline")
}

func TestPointerDownWhileDraggingIsIgnored(t *testing.T) {
	e := NewEditor(WithTool(ToolRectangle))
	require.True(t, e.PointerDown(Point{1, 1}))
	first := e.Session().Current()

	assert.False(t, e.PointerDown(Point{9, 9}))
	assert.Same(t, first, e.Session().Current())
	assert.Equal(t, 1, e.Scene().Len())
}

func TestNonShapeToolsDrawNothing(t *testing.T) {
	for _, tool := range []Tool{ToolSelect, ToolFillConfig, ToolStrokeConfig} {
		e := NewEditor(WithTool(tool))
		assert.False(t, e.PointerDown(Point{1, 1}), tool.String())
		assert.False(t, e.PointerMove(Point{5, 5}), tool.String())
		assert.False(t, e.PointerUp(), tool.String())
		assert.Zero(t, e.Scene().Len())
	}
}

func TestToolChangeMidDragKeepsVariant(t *testing.T) {
	e := NewEditor(WithTool(ToolRectangle))
	e.PointerDown(Point{0, 0})
	e.Tools().SetTool(ToolEllipse)
	e.PointerMove(Point{20, 10})

	shape := e.Session().Current()
	assert.Equal(t, KindRect, shape.Kind)
	assert.Equal(t, float32(20), shape.Width)
}

func TestMutationWithoutDragPanics(t *testing.T) {
	var s Session
	assert.Panics(t, func() { s.apply(Geometry{}, Point{}) })
}

func TestDrawUndoRedoScenario(t *testing.T) {
	e := NewEditor(WithTool(ToolRectangle))
	rect := drag(e, Point{0, 0}, Point{10, 10})
	e.Tools().SetTool(ToolEllipse)
	ellipse := drag(e, Point{20, 20}, Point{40, 40})

	assert.True(t, e.Undo())
	assert.True(t, e.Undo())
	assert.True(t, e.Redo())

	assert.Equal(t, []*Shape{ellipse}, e.History().Undone())
	assert.Equal(t, []*Shape{rect}, e.History().Elements())
	require.Equal(t, 1, e.Scene().Len())
	assert.Equal(t, rect.ID, e.Scene().Shapes()[0].ID)
}

func TestUndoDuringDragFinishesIt(t *testing.T) {
	e := NewEditor(WithTool(ToolRectangle))
	e.PointerDown(Point{0, 0})
	e.PointerMove(Point{3, 3})

	assert.True(t, e.Undo())
	assert.False(t, e.Dragging())
	assert.Zero(t, e.Scene().Len())
	assert.False(t, e.PointerMove(Point{8, 8}))
}
