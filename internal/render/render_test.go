package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LineSketch/internal/state"
)

func TestDrawScalesLines(t *testing.T) {
	lines := []state.Line{
		{Color: "#ff0000", Thickness: 16, Points: []state.Point{{X: 10, Y: 10}, {X: 10, Y: 30}}},
		{Color: "blue", Thickness: 4, Points: []state.Point{{X: 100, Y: 50}}},
	}
	var rec Recorder
	Draw(&rec, lines, 0.5)

	assert.Equal(t, 1, rec.Frames)
	require.Len(t, rec.Strokes, 2)
	assert.Equal(t, Stroke{Color: "#ff0000", Width: 8, Points: []Point{{5, 5}, {5, 15}}}, rec.Strokes[0])
	assert.Equal(t, Stroke{Color: "blue", Width: 2, Points: []Point{{50, 25}}}, rec.Strokes[1])
}

func TestDrawClearsEveryFrame(t *testing.T) {
	var rec Recorder
	lines := []state.Line{{Color: "#000", Thickness: 2, Points: []state.Point{{X: 1, Y: 1}}}}
	Draw(&rec, lines, 1)
	Draw(&rec, nil, 1)
	assert.Equal(t, 2, rec.Frames)
	assert.Empty(t, rec.Strokes)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ff8000", color.NRGBA{255, 128, 0, 255}},
		{"#0f0", color.NRGBA{0, 255, 0, 255}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{" Blue ", color.NRGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	_, err := ParseColor("not-a-color")
	assert.Error(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, ColorOrBlack("not-a-color"))
}

func TestHexColor(t *testing.T) {
	hex, err := HexColor(color.NRGBA{R: 255, A: 255})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", hex)

	hex, err = HexColor(color.Black)
	require.NoError(t, err)
	assert.Equal(t, "#000000", hex)

	_, err = HexColor(color.Transparent)
	assert.ErrorIs(t, err, ErrTransparent)
	_, err = HexColor(color.NRGBA{R: 255})
	assert.ErrorIs(t, err, ErrTransparent)
}

func TestRasterStroke(t *testing.T) {
	r := NewRaster(100, 100, color.White)
	r.Stroke(Stroke{Color: "#ff0000", Width: 10, Points: []Point{{20, 50}, {80, 50}}})

	img := r.Image()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(50, 50), "on the segment")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(17, 50), "inside the round cap")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(50, 60), "outside the stroke")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(10, 50), "beyond the cap")
}

func TestRasterDotAndOverlap(t *testing.T) {
	r := NewRaster(60, 60, color.White)
	r.Stroke(Stroke{Color: "#0000ff", Width: 20, Points: []Point{{30, 30}}})
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, r.Image().RGBAAt(30, 30))

	// a polyline that doubles back over itself must stay solid
	r.Stroke(Stroke{Color: "#00ff00", Width: 8, Points: []Point{{10, 10}, {50, 10}, {10, 10}}})
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, r.Image().RGBAAt(30, 10))

	r.Clear()
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, r.Image().RGBAAt(30, 30))
}

func TestRasterWritePNG(t *testing.T) {
	r := NewRaster(8, 4, color.White)
	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}
