package state

import (
	"errors"
	"fmt"
	"strings"
)

type Point struct{ X, Y float32 }

// Tool is the action selected in the toolbar.
type Tool int

const (
	ToolSelect Tool = iota
	ToolEllipse
	ToolRectangle
	ToolLine
	ToolFreeHand
	ToolFillConfig
	ToolStrokeConfig
)

var ErrUnknownTool = errors.New("unknown tool")

var toolNames = map[Tool]string{
	ToolSelect:       "select",
	ToolEllipse:      "ellipse",
	ToolRectangle:    "rectangle",
	ToolLine:         "line",
	ToolFreeHand:     "freehand",
	ToolFillConfig:   "fill",
	ToolStrokeConfig: "stroke",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool maps a config or CLI name back to a Tool.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return ToolSelect, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// ShapeKind reports which shape variant a drag with this tool creates.
func (t Tool) ShapeKind() (ShapeKind, bool) {
	switch t {
	case ToolEllipse:
		return KindEllipse, true
	case ToolRectangle:
		return KindRect, true
	case ToolLine:
		return KindLine, true
	case ToolFreeHand:
		return KindPath, true
	}
	return "", false
}

// keepsDirection is true for tools whose geometry must not be sign-normalised.
func (t Tool) keepsDirection() bool {
	return t == ToolLine || t == ToolFreeHand
}

type ConfigTab int

const (
	TabFill ConfigTab = iota
	TabStroke
)

func (c ConfigTab) String() string {
	if c == TabStroke {
		return "stroke"
	}
	return "fill"
}

type ShapeKind string

const (
	KindEllipse ShapeKind = "ellipse"
	KindRect    ShapeKind = "rect"
	KindLine    ShapeKind = "line"
	KindPath    ShapeKind = "path"
)

// DragAnchor is the geometry of the drag in progress. X1/Y1 stay fixed at
// the pointer-down position; the rest follows the pointer.
type DragAnchor struct {
	X1, Y1        float32
	X2, Y2        float32
	Width, Height float32
}

func (a DragAnchor) Start() Point { return Point{X: a.X1, Y: a.Y1} }

type OpType string

const (
	OpInsertShape OpType = "insert_shape"
	OpUpdateShape OpType = "update_shape"
	OpDeleteShape OpType = "delete_shape"
	OpSnapshot    OpType = "snapshot"
)

// Op is one change to a scene, as seen by observers and remote viewers.
type Op struct {
	Type    OpType  `json:"type"`
	Shape   *Shape  `json:"shape,omitempty"`
	Shapes  []Shape `json:"shapes,omitempty"`
	Target  string  `json:"target,omitempty"` // ID of shape to delete
	Lamport uint64  `json:"lamport"`
	Site    string  `json:"site"`
}
