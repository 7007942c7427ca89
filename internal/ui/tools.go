package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/state"
)

var palette = []color.NRGBA{
	{A: 255},                         // black
	{R: 255, A: 255},                 // red
	{G: 255, A: 255},                 // green
	{B: 255, A: 255},                 // blue
	{R: 255, G: 255, A: 255},         // yellow
	{R: 255, G: 255, B: 255, A: 255}, // white
	{},                               // none
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	objects := []fyne.CanvasObject{rect, border}
	if s.Color.A == 0 {
		// diagonal marks "no paint"
		slash := canvas.NewLine(color.NRGBA{R: 200, A: 255})
		slash.StrokeWidth = 2
		objects = append(objects, slash)
		return &swatchRenderer{WidgetRenderer: widget.NewSimpleRenderer(container.NewStack(objects...)), slash: slash}
	}
	return widget.NewSimpleRenderer(container.NewStack(objects...))
}

type swatchRenderer struct {
	fyne.WidgetRenderer
	slash *canvas.Line
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.WidgetRenderer.Layout(size)
	r.slash.Position1 = fyne.NewPos(0, size.Height)
	r.slash.Position2 = fyne.NewPos(size.Width, 0)
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

type toolButton struct {
	tool   state.Tool
	label  string
	icon   func() fyne.Resource
	button *widget.Button
}

// Toolbar holds one button per tool. The button of the active tool is
// highlighted.
type Toolbar struct {
	fyne.CanvasObject
	buttons []*toolButton
	cancel  func()
}

func newToolButtons() []*toolButton {
	return []*toolButton{
		{tool: state.ToolSelect, label: "Edit", icon: theme.MenuIcon},
		{tool: state.ToolEllipse, label: "Ellipse", icon: theme.RadioButtonIcon},
		{tool: state.ToolRectangle, label: "Rect", icon: theme.CheckButtonIcon},
		{tool: state.ToolLine, label: "Line", icon: theme.ContentRemoveIcon},
		{tool: state.ToolFreeHand, label: "Brush", icon: theme.DocumentCreateIcon},
		{tool: state.ToolFillConfig, label: "Fill", icon: theme.ColorPaletteIcon},
		{tool: state.ToolStrokeConfig, label: "Stroke", icon: theme.ColorChromaticIcon},
	}
}

func NewToolbar(board *Board) *Toolbar {
	tools := board.Editor().Tools()
	t := &Toolbar{buttons: newToolButtons()}

	box := container.NewVBox(widget.NewLabel("Tool:"))
	for _, tb := range t.buttons {
		tool := tb.tool
		tb.button = widget.NewButtonWithIcon(tb.label, tb.icon(), func() {
			tools.SetTool(tool)
		})
		tb.button.Alignment = widget.ButtonAlignLeading
		box.Add(tb.button)
	}
	box.Add(layout.NewSpacer())
	t.CanvasObject = box

	t.cancel = tools.Subscribe(func(active state.Tool, _ state.ConfigTab) {
		for _, tb := range t.buttons {
			importance := widget.MediumImportance
			if tb.tool == active {
				importance = widget.HighImportance
			}
			if tb.button.Importance != importance {
				tb.button.Importance = importance
				tb.button.Refresh()
			}
		}
	})
	return t
}

// Release stops following the tool state.
func (t *Toolbar) Release() { t.cancel() }

// StylePanel edits the style new shapes are drawn with. It shows the fill
// or stroke page depending on the active config tab.
type StylePanel struct {
	fyne.CanvasObject
	board        *Board
	fill, stroke fyne.CanvasObject
	strokeWidth  *widget.Slider
	brushWidth   *widget.Slider
	cancel       func()
}

func NewStylePanel(board *Board) *StylePanel {
	p := &StylePanel{board: board}
	style := board.Editor().Style()

	fills := container.NewGridWrap(fyne.NewSize(32, 32))
	strokes := container.NewGridWrap(fyne.NewSize(32, 32))
	for _, c := range palette {
		fills.Add(newColorSwatch(c, p.setFill))
		strokes.Add(newColorSwatch(c, p.setStroke))
	}

	p.strokeWidth = widget.NewSlider(0, 20)
	p.strokeWidth.SetValue(float64(style.StrokeWidth))
	p.strokeWidth.OnChanged = func(v float64) {
		p.update(func(s *state.Style) { s.StrokeWidth = float32(v) })
	}
	p.brushWidth = widget.NewSlider(1, 50)
	p.brushWidth.SetValue(float64(style.BrushWidth))
	p.brushWidth.OnChanged = func(v float64) {
		p.update(func(s *state.Style) { s.BrushWidth = float32(v) })
	}

	p.fill = container.NewVBox(widget.NewLabel("Fill:"), fills)
	p.stroke = container.NewVBox(
		widget.NewLabel("Outline:"), strokes,
		widget.NewLabel("Outline width:"), p.strokeWidth,
		widget.NewLabel("Brush width:"), p.brushWidth,
	)
	p.CanvasObject = container.New(layout.NewGridWrapLayout(fyne.NewSize(170, 320)),
		container.NewStack(p.fill, p.stroke))

	p.cancel = board.Editor().Tools().Subscribe(func(_ state.Tool, tab state.ConfigTab) {
		if tab == state.TabStroke {
			p.fill.Hide()
			p.stroke.Show()
		} else {
			p.stroke.Hide()
			p.fill.Show()
		}
	})
	return p
}

func (p *StylePanel) Release() { p.cancel() }

func (p *StylePanel) update(fn func(*state.Style)) {
	ed := p.board.Editor()
	s := ed.Style()
	fn(&s)
	ed.SetStyle(s)
}

func (p *StylePanel) setFill(c color.NRGBA) {
	p.update(func(s *state.Style) { s.Fill = c })
}

func (p *StylePanel) setStroke(c color.NRGBA) {
	p.update(func(s *state.Style) { s.Stroke = c })
}
