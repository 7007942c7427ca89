package state

import "log/slog"

// Scene is the ordered set of shapes currently rendered. Local edits are
// reported to observers as stamped ops; remote ops are applied without
// being re-emitted.
type Scene struct {
	shapes    []*Shape
	clock     *Clock
	observers []func(Op)
}

// NewScene creates an empty scene. A nil clock makes a passive scene that
// only mirrors remote ops.
func NewScene(clock *Clock) *Scene {
	return &Scene{clock: clock}
}

// Observe registers fn to receive every local op.
func (s *Scene) Observe(fn func(Op)) {
	s.observers = append(s.observers, fn)
}

func (s *Scene) emit(op Op) {
	if s.clock == nil {
		return
	}
	op = s.clock.Stamp(op)
	for _, fn := range s.observers {
		fn(op)
	}
}

func (s *Scene) Add(sh *Shape) {
	s.shapes = append(s.shapes, sh)
	c := sh.Clone()
	s.emit(Op{Type: OpInsertShape, Shape: &c})
}

func (s *Scene) Remove(sh *Shape) bool {
	i := s.indexOf(sh.ID)
	if i < 0 {
		return false
	}
	s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
	s.emit(Op{Type: OpDeleteShape, Target: sh.ID})
	return true
}

// Commit publishes the current geometry of a shape already in the scene.
func (s *Scene) Commit(sh *Shape) {
	if s.indexOf(sh.ID) < 0 {
		return
	}
	c := sh.Clone()
	s.emit(Op{Type: OpUpdateShape, Shape: &c})
}

// Snapshot returns an op carrying a copy of every shape, for late joiners.
// It carries the current clock time without advancing it.
func (s *Scene) Snapshot() Op {
	op := Op{Type: OpSnapshot, Shapes: s.Shapes()}
	if s.clock != nil {
		op.Lamport = s.clock.Now()
		op.Site = s.clock.Site()
	}
	return op
}

// Shapes returns copies of the shapes in render order.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, 0, len(s.shapes))
	for _, sh := range s.shapes {
		out = append(out, sh.Clone())
	}
	return out
}

func (s *Scene) Len() int { return len(s.shapes) }

func (s *Scene) Contains(id string) bool { return s.indexOf(id) >= 0 }

func (s *Scene) indexOf(id string) int {
	for i, sh := range s.shapes {
		if sh.ID == id {
			return i
		}
	}
	return -1
}

// ApplyRemote merges an op received from another site. It reports whether
// the scene changed.
func (s *Scene) ApplyRemote(op Op) bool {
	if s.clock != nil {
		s.clock.Observe(op.Lamport)
	}
	switch op.Type {
	case OpInsertShape:
		if op.Shape == nil {
			return false
		}
		if s.Contains(op.Shape.ID) {
			slog.Debug("duplicate shape ignored", "id", op.Shape.ID, "site", op.Site)
			return false
		}
		c := op.Shape.Clone()
		s.shapes = append(s.shapes, &c)
		return true
	case OpUpdateShape:
		if op.Shape == nil {
			return false
		}
		i := s.indexOf(op.Shape.ID)
		if i < 0 {
			return false
		}
		c := op.Shape.Clone()
		s.shapes[i] = &c
		return true
	case OpDeleteShape:
		i := s.indexOf(op.Target)
		if i < 0 {
			return false
		}
		s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
		return true
	case OpSnapshot:
		s.shapes = s.shapes[:0]
		for i := range op.Shapes {
			c := op.Shapes[i].Clone()
			s.shapes = append(s.shapes, &c)
		}
		return true
	}
	slog.Warn("unknown op ignored", "type", op.Type, "site", op.Site)
	return false
}
