package state

// Handle refers to a line in Document.lines. The zero value refers to no
// line.
type Handle struct {
	index int
	valid bool
}

// Valid reports whether h refers to a line.
func (h Handle) Valid() bool { return h.valid }

// Document holds the visible lines in drawing order and the history of
// undone lines. Each line lives in exactly one of the two stacks.
type Document struct {
	lines    []*Line
	history  []*Line
	revision Revision
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// BeginLine appends a new line with the given style and commits start as
// its first point, clamped to bounds. Lines are never stored without a
// point.
func (d *Document) BeginLine(style Style, start Vec, bounds Size) Handle {
	l := newLine(style)
	l.Points = append(l.Points, Clamp(start, l.Thickness, bounds))
	d.lines = append(d.lines, l)
	d.revision.Tick()
	return Handle{index: len(d.lines) - 1, valid: true}
}

// Line returns the line h refers to, or nil if h is stale or empty.
func (d *Document) Line(h Handle) *Line {
	if !h.valid || h.index < 0 || h.index >= len(d.lines) {
		return nil
	}
	return d.lines[h.index]
}

// CommitPoint clamps v to bounds and appends it to the line h refers to.
// It does nothing and returns false when h does not refer to a line.
func (d *Document) CommitPoint(h Handle, v Vec, bounds Size) (Point, bool) {
	l := d.Line(h)
	if l == nil {
		return Point{}, false
	}
	p := Clamp(v, l.Thickness, bounds)
	l.Points = append(l.Points, p)
	d.revision.Tick()
	return p, true
}

// EndLine completes the line h refers to. A completed line invalidates any
// pending redo.
func (d *Document) EndLine(h Handle) bool {
	if d.Line(h) == nil {
		return false
	}
	d.history = nil
	d.revision.Tick()
	return true
}

// Undo moves the last line onto the history stack.
func (d *Document) Undo() bool {
	if len(d.lines) == 0 {
		return false
	}
	last := d.lines[len(d.lines)-1]
	d.lines = d.lines[:len(d.lines)-1]
	d.history = append(d.history, last)
	d.revision.Tick()
	return true
}

// Redo moves the most recently undone line back onto the visible stack.
func (d *Document) Redo() bool {
	if len(d.history) == 0 {
		return false
	}
	last := d.history[len(d.history)-1]
	d.history = d.history[:len(d.history)-1]
	d.lines = append(d.lines, last)
	d.revision.Tick()
	return true
}

// ClearAll drops every line and the whole history. It cannot be undone.
func (d *Document) ClearAll() {
	d.lines = nil
	d.history = nil
	d.revision.Tick()
}

// Lines returns copies of the visible lines in drawing order.
func (d *Document) Lines() []Line {
	return cloneAll(d.lines)
}

// History returns copies of the undone lines, most recent last.
func (d *Document) History() []Line {
	return cloneAll(d.history)
}

// Each calls fn for every visible line in drawing order without copying.
// fn must not retain or modify the line.
func (d *Document) Each(fn func(*Line)) {
	for _, l := range d.lines {
		fn(l)
	}
}

// Len returns the number of visible lines.
func (d *Document) Len() int { return len(d.lines) }

// HistoryLen returns the number of undone lines.
func (d *Document) HistoryLen() int { return len(d.history) }

// Revision returns the current mutation count.
func (d *Document) Revision() uint64 { return d.revision.Current() }

func cloneAll(src []*Line) []Line {
	if len(src) == 0 {
		return nil
	}
	out := make([]Line, 0, len(src))
	for _, l := range src {
		out = append(out, l.Clone())
	}
	return out
}
