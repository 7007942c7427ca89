package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"VectorBoard/internal/export"
)

// exporter writes the board to the configured export location.
type exporter struct {
	board  *Board
	win    fyne.Window
	target export.Target
	format export.Format
}

func (x *exporter) export(f export.Format) {
	t := x.target
	t.Width, t.Height = x.board.CanvasSize()
	path, err := export.ToFile(t, f, x.board.Editor().Scene().Shapes())
	if err != nil {
		slog.Error("export failed", "format", f, "err", err)
		if x.win != nil {
			dialog.ShowError(err, x.win)
		}
		x.board.statusBar.SetText("Export failed")
		return
	}
	x.board.statusBar.SetText(fmt.Sprintf("Exported %s", path))
}

func (x *exporter) menu() *fyne.Menu {
	item := func(label string, f export.Format) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() { x.export(f) })
	}
	return fyne.NewMenu("File",
		item(fmt.Sprintf("Export %s", strings.ToUpper(string(x.format))), x.format),
		fyne.NewMenuItemSeparator(),
		item("Export SVG (Ctrl+Shift+D)", export.FormatSVG),
		item("Export PNG", export.FormatPNG),
		item("Export PDF", export.FormatPDF),
	)
}
