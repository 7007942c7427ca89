package state

// ToolState is the observable toolbar selection: the active tool and the
// active style tab. Subscribers run synchronously on every change.
type ToolState struct {
	tool   Tool
	tab    ConfigTab
	nextID int
	subs   map[int]func(Tool, ConfigTab)
}

func NewToolState(initial Tool) *ToolState {
	t := &ToolState{subs: make(map[int]func(Tool, ConfigTab))}
	t.SetTool(initial)
	return t
}

func (t *ToolState) Tool() Tool { return t.tool }

func (t *ToolState) Tab() ConfigTab { return t.tab }

// SetTool selects a tool. The config tools also switch the style tab.
func (t *ToolState) SetTool(tool Tool) {
	t.tool = tool
	switch tool {
	case ToolFillConfig:
		t.tab = TabFill
	case ToolStrokeConfig:
		t.tab = TabStroke
	}
	t.notify()
}

func (t *ToolState) SetTab(tab ConfigTab) {
	t.tab = tab
	t.notify()
}

// Subscribe calls fn with the current selection and on every change until
// the returned cancel func is called.
func (t *ToolState) Subscribe(fn func(Tool, ConfigTab)) (cancel func()) {
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	fn(t.tool, t.tab)
	return func() { delete(t.subs, id) }
}

func (t *ToolState) notify() {
	for _, fn := range t.subs {
		fn(t.tool, t.tab)
	}
}
