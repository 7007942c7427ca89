package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"VectorBoard/internal/state"
)

type binding struct {
	shortcut *desktop.CustomShortcut
	name     string
	run      func()
}

// Alt+1..5 pick the drawing tools in toolbar order.
var toolKeys = []struct {
	key  fyne.KeyName
	tool state.Tool
}{
	{fyne.Key1, state.ToolSelect},
	{fyne.Key2, state.ToolEllipse},
	{fyne.Key3, state.ToolRectangle},
	{fyne.Key4, state.ToolLine},
	{fyne.Key5, state.ToolFreeHand},
}

func keymap(board *Board, exportSVG func()) []binding {
	ctrl := fyne.KeyModifierControl
	keys := []binding{
		{&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: ctrl}, "undo", board.Undo},
		{&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: ctrl}, "redo", board.Redo},
		{&desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: ctrl | fyne.KeyModifierShift}, "export", exportSVG},
	}
	tools := board.Editor().Tools()
	for _, tk := range toolKeys {
		tool := tk.tool
		keys = append(keys, binding{
			shortcut: &desktop.CustomShortcut{KeyName: tk.key, Modifier: fyne.KeyModifierAlt},
			name:     "tool " + tool.String(),
			run:      func() { tools.SetTool(tool) },
		})
	}
	return keys
}

// bindShortcuts registers keys on c and returns the func that removes them
// again.
func bindShortcuts(c fyne.Canvas, keys []binding) (release func()) {
	for _, k := range keys {
		run := k.run
		c.AddShortcut(k.shortcut, func(fyne.Shortcut) { run() })
	}
	return func() {
		for _, k := range keys {
			c.RemoveShortcut(k.shortcut)
		}
	}
}
