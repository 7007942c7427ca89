package ui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/export"
	"VectorBoard/internal/state"
)

// Board is the drawing surface. Pointer input drives the editor's drag
// session and the scene is painted through the same SVG pipeline used for
// export.
type Board struct {
	widget.BaseWidget
	editor    *state.Editor
	statusBar *widget.Label
	readOnly  bool

	// OnChange runs after the scene changed because of local input.
	OnChange func()
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)
var _ desktop.Cursorable = (*Board)(nil)

func NewBoard(editor *state.Editor) *Board {
	b := &Board{
		editor:    editor,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) Editor() *state.Editor { return b.editor }

func (b *Board) StatusBar() *widget.Label { return b.statusBar }

// SetReadOnly turns local drawing off, used while following a shared board.
func (b *Board) SetReadOnly(readOnly bool) { b.readOnly = readOnly }

// SetStatus is safe to call from any goroutine.
func (b *Board) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

// ApplyRemote merges an op received from a shared board. Safe to call from
// any goroutine.
func (b *Board) ApplyRemote(op state.Op) {
	fyne.Do(func() {
		if b.editor.Scene().ApplyRemote(op) {
			b.Refresh()
		}
	})
}

func (b *Board) Undo() {
	if b.readOnly || !b.editor.Undo() {
		return
	}
	b.changed()
	b.statusBar.SetText(fmt.Sprintf("Undo (%d shapes)", b.editor.Scene().Len()))
}

func (b *Board) Redo() {
	if b.readOnly || !b.editor.Redo() {
		return
	}
	b.changed()
	b.statusBar.SetText(fmt.Sprintf("Redo (%d shapes)", b.editor.Scene().Len()))
}

func (b *Board) changed() {
	b.Refresh()
	if b.OnChange != nil {
		b.OnChange()
	}
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if b.readOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.editor.PointerDown(toPoint(e.Position)) {
		b.Refresh()
	}
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	if b.editor.PointerMove(toPoint(e.Position)) {
		b.Refresh()
	}
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.finish()
	}
}

func (b *Board) DragEnd() { b.finish() }

func (b *Board) finish() {
	if b.editor.PointerUp() {
		b.changed()
	}
}

func (b *Board) MouseIn(*desktop.MouseEvent)    {}
func (b *Board) MouseOut()                      {}
func (b *Board) MouseMoved(*desktop.MouseEvent) {}

func (b *Board) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

// CanvasSize is the board size in whole canvas units.
func (b *Board) CanvasSize() (int, int) {
	size := b.Size()
	return int(size.Width), int(size.Height)
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(r.draw)
	r.shapes = b.editor.Scene().Shapes()
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
	raster     *canvas.Raster
	shapes     []state.Shape
}

func (r *boardRenderer) draw(pw, ph int) image.Image {
	w, h := r.board.CanvasSize()
	img, err := export.Rasterize(w, h, pw, ph, r.shapes)
	if err != nil {
		if w > 0 && h > 0 {
			slog.Warn("board paint failed", "err", err)
		}
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return img
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardRenderer) Refresh() {
	r.shapes = r.board.editor.Scene().Shapes()
	canvas.Refresh(r.raster)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
