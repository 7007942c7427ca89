package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/export"
)

type Options struct {
	Title  string
	Size   fyne.Size
	Export export.Target
	// Format is what File > Export writes.
	Format export.Format
	// ShareLink is shown in the status bar when the drawing is shared.
	ShareLink string
}

func RunApp(board *Board, opts Options) {
	myApp := app.NewWithID("io.vectorboard")
	myWindow := myApp.NewWindow(opts.Title)
	myWindow.Resize(opts.Size)

	content, release := buildContent(board, myWindow, opts)
	myWindow.SetContent(content)
	myWindow.SetOnClosed(release)
	myWindow.ShowAndRun()
}

// buildContent lays out the window and hooks up menus and shortcuts. The
// returned func undoes the wiring.
func buildContent(board *Board, win fyne.Window, opts Options) (fyne.CanvasObject, func()) {
	x := &exporter{board: board, win: win, target: opts.Export, format: opts.Format}
	if x.format == "" {
		x.format = export.FormatSVG
	}

	undo := fyne.NewMenuItem("Undo (Ctrl+Z)", board.Undo)
	redo := fyne.NewMenuItem("Redo (Ctrl+Y)", board.Redo)
	mainMenu := fyne.NewMainMenu(x.menu(), fyne.NewMenu("Edit", undo, redo))
	win.SetMainMenu(mainMenu)
	syncEdit := func() {
		h := board.Editor().History()
		undo.Disabled = !h.CanUndo()
		redo.Disabled = !h.CanRedo()
		mainMenu.Refresh()
	}
	syncEdit()
	board.OnChange = syncEdit

	toolbar := NewToolbar(board)
	styles := NewStylePanel(board)
	unbind := bindShortcuts(win.Canvas(), keymap(board, func() { x.export(export.FormatSVG) }))

	status := container.NewHBox(board.StatusBar(), layout.NewSpacer())
	if opts.ShareLink != "" {
		link := widget.NewEntry()
		link.SetText(opts.ShareLink)
		link.Disable()
		status.Add(widget.NewLabel("Share:"))
		status.Add(link)
	}

	content := container.NewBorder(nil, status, toolbar, styles, board)
	return content, func() {
		unbind()
		board.OnChange = nil
		toolbar.Release()
		styles.Release()
	}
}
