package replay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"LineSketch/internal/config"
	"LineSketch/internal/render"
)

const session = `
scale: 1
steps:
  - {op: drag, from: [10, 10], to: [10, 200]}
  - {op: thickness, value: "4"}
  - {op: color, value: "#ff0000"}
  - {op: drag, from: [100, 100], to: [140, 100]}
  - {op: undo}
  - {op: redo}
  - {op: format, value: raw}
`

func TestRunSession(t *testing.T) {
	s, err := Decode(strings.NewReader(session))
	require.NoError(t, err)
	require.Len(t, s.Steps, 7)

	rec := &render.Recorder{}
	c, err := NewCanvas(config.Default(), s, rec, zaptest.NewLogger(t))
	require.NoError(t, err)
	var out string
	c.OnOutput = func(text string) { out = text }

	require.NoError(t, Run(c, s))
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 16.0, lines[0].Thickness)
	assert.Equal(t, 4.0, lines[1].Thickness)
	assert.Equal(t, "#ff0000", lines[1].Color)
	assert.Contains(t, out, `"points":[{"x":10,"y":10},`)
	assert.Len(t, rec.Strokes, 2)
}

func TestDecodeRejectsUnknownOp(t *testing.T) {
	_, err := Decode(strings.NewReader("steps:\n  - {op: paint}\n"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
}

func TestRunStopsOnBadStep(t *testing.T) {
	s, err := Decode(strings.NewReader(`
steps:
  - {op: down, x: 10, y: 10}
  - {op: size, width: 100, height: 100}
`))
	require.NoError(t, err)
	c, err := NewCanvas(config.Default(), s, nil, nil)
	require.NoError(t, err)

	err = Run(c, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2 (size)")
}

func TestRunRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"steps:\n  - {op: format, value: \"9\"}\n",
		"steps:\n  - {op: thickness, value: thick}\n",
		"steps:\n  - {op: color}\n",
	} {
		s, err := Decode(strings.NewReader(body))
		require.NoError(t, err)
		c, err := NewCanvas(config.Default(), s, nil, nil)
		require.NoError(t, err)
		assert.Error(t, Run(c, s), body)
	}
}

func TestNewCanvasBadFormat(t *testing.T) {
	cfg := config.Default()
	cfg.DataFormat = "5"
	_, err := NewCanvas(cfg, &Script{}, nil, nil)
	assert.Error(t, err)
}
