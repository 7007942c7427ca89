package state

// Renderer is the part of the scene the history needs to show and hide
// shapes.
type Renderer interface {
	Add(*Shape)
	Remove(*Shape) bool
}

// History keeps the drawn shapes and the undone ones. Drawing a new shape
// does not clear the undone list, so redo stays available after new work.
type History struct {
	elements []*Shape
	undone   []*Shape
	scene    Renderer
}

func NewHistory(scene Renderer) *History {
	return &History{scene: scene}
}

// Append records a freshly created shape and puts it on the scene.
func (h *History) Append(s *Shape) {
	h.elements = append(h.elements, s)
	h.scene.Add(s)
}

// Undo moves the most recent shape to the undone list.
func (h *History) Undo() (*Shape, bool) {
	if len(h.elements) == 0 {
		return nil, false
	}
	last := len(h.elements) - 1
	s := h.elements[last]
	h.elements[last] = nil
	h.elements = h.elements[:last]
	h.undone = append(h.undone, s)
	h.scene.Remove(s)
	return s, true
}

// Redo brings back the most recently undone shape.
func (h *History) Redo() (*Shape, bool) {
	if len(h.undone) == 0 {
		return nil, false
	}
	last := len(h.undone) - 1
	s := h.undone[last]
	h.undone[last] = nil
	h.undone = h.undone[:last]
	h.elements = append(h.elements, s)
	h.scene.Add(s)
	return s, true
}

func (h *History) Elements() []*Shape { return append([]*Shape(nil), h.elements...) }

func (h *History) Undone() []*Shape { return append([]*Shape(nil), h.undone...) }

func (h *History) CanUndo() bool { return len(h.elements) > 0 }

func (h *History) CanRedo() bool { return len(h.undone) > 0 }
