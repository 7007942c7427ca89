package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/state"
)

func TestToolbarHighlightsActiveTool(t *testing.T) {
	b := newTestBoard(t, state.ToolSelect)
	tb := NewToolbar(b)
	defer tb.Release()

	importance := func(tool state.Tool) widget.Importance {
		for _, btn := range tb.buttons {
			if btn.tool == tool {
				return btn.button.Importance
			}
		}
		t.Fatalf("no button for %s", tool)
		return 0
	}
	assert.Equal(t, widget.HighImportance, importance(state.ToolSelect))

	b.Editor().Tools().SetTool(state.ToolLine)
	assert.Equal(t, widget.HighImportance, importance(state.ToolLine))
	assert.Equal(t, widget.MediumImportance, importance(state.ToolSelect))

	for _, btn := range tb.buttons {
		if btn.tool == state.ToolFreeHand {
			btn.button.OnTapped()
		}
	}
	assert.Equal(t, state.ToolFreeHand, b.Editor().Tools().Tool())
}

func TestStylePanel(t *testing.T) {
	b := newTestBoard(t, state.ToolRectangle)
	p := NewStylePanel(b)
	defer p.Release()

	assert.True(t, p.fill.Visible())
	assert.False(t, p.stroke.Visible())
	b.Editor().Tools().SetTool(state.ToolStrokeConfig)
	assert.True(t, p.stroke.Visible())
	assert.False(t, p.fill.Visible())

	red := color.NRGBA{R: 255, A: 255}
	newColorSwatch(red, p.setFill).Tapped(nil)
	newColorSwatch(color.NRGBA{}, p.setStroke).Tapped(nil)
	p.strokeWidth.OnChanged(3)
	p.brushWidth.OnChanged(12)

	style := b.Editor().Style()
	assert.Equal(t, red, style.Fill)
	assert.Equal(t, color.NRGBA{}, style.Stroke)
	assert.Equal(t, float32(3), style.StrokeWidth)
	assert.Equal(t, float32(12), style.BrushWidth)

	b.Editor().Tools().SetTool(state.ToolRectangle)
	b.MouseDown(press(0, 0))
	b.Dragged(drag(10, 10))
	b.DragEnd()
	shapes := b.Editor().Scene().Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, red, shapes[0].Fill)
	assert.Equal(t, float32(3), shapes[0].StrokeWidth)
}

type recordingCanvas struct {
	fyne.Canvas
	handlers map[string]func(fyne.Shortcut)
}

func (c *recordingCanvas) AddShortcut(s fyne.Shortcut, h func(fyne.Shortcut)) {
	c.handlers[s.ShortcutName()] = h
}

func (c *recordingCanvas) RemoveShortcut(s fyne.Shortcut) {
	delete(c.handlers, s.ShortcutName())
}

func (c *recordingCanvas) press(key fyne.KeyName, mod fyne.KeyModifier) bool {
	s := &desktop.CustomShortcut{KeyName: key, Modifier: mod}
	h, ok := c.handlers[s.ShortcutName()]
	if ok {
		h(s)
	}
	return ok
}

func TestShortcuts(t *testing.T) {
	b := newTestBoard(t, state.ToolRectangle)
	exports := 0
	c := &recordingCanvas{handlers: map[string]func(fyne.Shortcut){}}
	release := bindShortcuts(c, keymap(b, func() { exports++ }))
	assert.Len(t, c.handlers, 8)

	b.MouseDown(press(0, 0))
	b.Dragged(drag(10, 10))
	b.DragEnd()

	ctrl := fyne.KeyModifierControl
	require.True(t, c.press(fyne.KeyZ, ctrl))
	assert.Zero(t, b.Editor().Scene().Len())
	require.True(t, c.press(fyne.KeyY, ctrl))
	assert.Equal(t, 1, b.Editor().Scene().Len())
	require.True(t, c.press(fyne.KeyD, ctrl|fyne.KeyModifierShift))
	assert.Equal(t, 1, exports)

	for _, tk := range toolKeys {
		require.True(t, c.press(tk.key, fyne.KeyModifierAlt))
		assert.Equal(t, tk.tool, b.Editor().Tools().Tool())
	}
	assert.False(t, c.press(fyne.Key6, fyne.KeyModifierAlt))

	release()
	assert.Empty(t, c.handlers)
}
