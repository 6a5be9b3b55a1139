package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas600 = Size{600, 600}

func drawLine(d *Document, style Style, pts ...Vec) Handle {
	h := d.BeginLine(style, pts[0], canvas600)
	for _, p := range pts[1:] {
		d.CommitPoint(h, p, canvas600)
	}
	d.EndLine(h)
	return h
}

func TestBeginLineCommitsFirstPoint(t *testing.T) {
	d := NewDocument()
	h := d.BeginLine(Style{Color: "#ff0000", Thickness: 16}, Vec{2, 700}, canvas600)
	require.True(t, h.Valid())

	l := d.Line(h)
	require.NotNil(t, l)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "#ff0000", l.Color)
	assert.Equal(t, 16.0, l.Thickness)
	assert.Equal(t, []Point{{8, 592}}, l.Points)
}

func TestCommitPointWithoutLine(t *testing.T) {
	d := NewDocument()
	_, ok := d.CommitPoint(Handle{}, Vec{1, 1}, canvas600)
	assert.False(t, ok)
	assert.False(t, d.EndLine(Handle{}))

	h := d.BeginLine(Style{Thickness: 2}, Vec{10, 10}, canvas600)
	d.Undo()
	_, ok = d.CommitPoint(h, Vec{20, 20}, canvas600)
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	d := NewDocument()
	drawLine(d, Style{"#000", 4}, Vec{10, 10}, Vec{40, 40})
	drawLine(d, Style{"#111", 6}, Vec{100, 10}, Vec{140, 40})
	before := d.Lines()

	require.True(t, d.Undo())
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 1, d.HistoryLen())

	require.True(t, d.Redo())
	assert.Equal(t, before, d.Lines())
	assert.Equal(t, 0, d.HistoryLen())
}

func TestUndoMovesOwnership(t *testing.T) {
	d := NewDocument()
	h := d.BeginLine(Style{"#000", 4}, Vec{10, 10}, canvas600)
	d.EndLine(h)
	l := d.Line(h)

	d.Undo()
	require.Len(t, d.history, 1)
	assert.Same(t, l, d.history[0])
	d.Redo()
	assert.Same(t, l, d.lines[0])
}

func TestEmptyStacksAreNoops(t *testing.T) {
	d := NewDocument()
	rev := d.Revision()
	assert.False(t, d.Undo())
	assert.False(t, d.Redo())
	assert.Equal(t, rev, d.Revision())
}

func TestNewLineClearsHistory(t *testing.T) {
	d := NewDocument()
	drawLine(d, Style{"#000", 4}, Vec{10, 10})
	drawLine(d, Style{"#000", 4}, Vec{20, 20})
	d.Undo()
	require.Equal(t, 1, d.HistoryLen())

	h := d.BeginLine(Style{"#000", 4}, Vec{30, 30}, canvas600)
	assert.Equal(t, 1, d.HistoryLen(), "history survives until the line completes")
	d.EndLine(h)

	assert.Equal(t, 0, d.HistoryLen())
	assert.False(t, d.Redo())
	assert.Equal(t, 2, d.Len())
}

func TestClearAll(t *testing.T) {
	d := NewDocument()
	drawLine(d, Style{"#000", 4}, Vec{10, 10})
	drawLine(d, Style{"#000", 4}, Vec{20, 20})
	d.Undo()
	d.ClearAll()
	assert.Empty(t, d.Lines())
	assert.Empty(t, d.History())

	d.ClearAll()
	assert.Equal(t, 0, d.Len())
}

func TestLinesAreCopies(t *testing.T) {
	d := NewDocument()
	drawLine(d, Style{"#000", 4}, Vec{10, 10}, Vec{50, 50})
	lines := d.Lines()
	lines[0].Points[0] = Point{-1, -1}
	assert.Equal(t, Point{10, 10}, d.Lines()[0].Points[0])
}

func TestStyleIsFixedAtCreation(t *testing.T) {
	d := NewDocument()
	style := Style{"#000000", 16}
	drawLine(d, style, Vec{10, 10})
	style.Thickness = 4
	style.Color = "#ffffff"
	drawLine(d, style, Vec{10, 10})

	lines := d.Lines()
	assert.Equal(t, 16.0, lines[0].Thickness)
	assert.Equal(t, "#000000", lines[0].Color)
	assert.Equal(t, 4.0, lines[1].Thickness)
}
