// Package state holds the drawing model: shapes, the scene, the drag
// session that turns pointer events into shape geometry, and the undo
// history. It is driven from a single goroutine.
package state

import "log/slog"

type Editor struct {
	tools   *ToolState
	clock   *Clock
	scene   *Scene
	history *History
	session Session
	style   Style
}

type Option func(*Editor)

func WithTool(t Tool) Option { return func(e *Editor) { e.tools.SetTool(t) } }

func WithStyle(s Style) Option { return func(e *Editor) { e.style = s } }

func WithClock(c *Clock) Option {
	return func(e *Editor) {
		e.clock = c
		e.scene.clock = c
	}
}

func NewEditor(opts ...Option) *Editor {
	clock := NewClock()
	e := &Editor{
		tools: NewToolState(ToolSelect),
		clock: clock,
		scene: NewScene(clock),
		style: DefaultStyle(),
	}
	e.history = NewHistory(e.scene)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Tools() *ToolState { return e.tools }

func (e *Editor) Scene() *Scene { return e.scene }

func (e *Editor) History() *History { return e.history }

func (e *Editor) Clock() *Clock { return e.clock }

func (e *Editor) Session() *Session { return &e.session }

func (e *Editor) Style() Style { return e.style }

func (e *Editor) SetStyle(s Style) { e.style = s }

func (e *Editor) Dragging() bool { return e.session.Active() }

// PointerDown starts a drag with the active tool. It reports false when a
// drag is already running or the tool draws nothing.
func (e *Editor) PointerDown(p Point) bool {
	if e.session.Active() {
		return false
	}
	tool := e.tools.Tool()
	kind, ok := tool.ShapeKind()
	if !ok {
		return false
	}
	shape := NewShape(kind, p, e.style)
	e.history.Append(shape)
	e.session.begin(tool, p, shape)
	slog.Debug("drag started", "tool", tool, "shape", shape.ID, "x", p.X, "y", p.Y)
	return true
}

// PointerMove updates the shape being drawn. Moves outside a drag are
// ignored.
func (e *Editor) PointerMove(p Point) bool {
	if !e.session.Active() {
		return false
	}
	e.session.move(p)
	return true
}

// PointerUp ends the drag and publishes the final geometry.
func (e *Editor) PointerUp() bool {
	if !e.session.Active() {
		return false
	}
	shape := e.session.end()
	e.scene.Commit(shape)
	slog.Debug("drag finished", "shape", shape.ID, "kind", shape.Kind)
	return true
}

// Undo ends any drag in progress, then moves the newest shape to the
// undone list.
func (e *Editor) Undo() bool {
	e.PointerUp()
	s, ok := e.history.Undo()
	if ok {
		slog.Debug("undo", "shape", s.ID)
	}
	return ok
}

func (e *Editor) Redo() bool {
	e.PointerUp()
	s, ok := e.history.Redo()
	if ok {
		slog.Debug("redo", "shape", s.ID)
	}
	return ok
}
