// Package render turns document lines into stroke commands for a host
// rendering surface.
package render

import "LineSketch/internal/state"

// Point is a position in device space.
type Point struct{ X, Y float64 }

// Stroke is one polyline draw command. Width is in device units. All
// strokes use round caps and joins; a single point draws a dot.
type Stroke struct {
	Color  string
	Width  float64
	Points []Point
}

// Surface is the host rendering target.
type Surface interface {
	Clear()
	Stroke(s Stroke)
}

// Draw clears surface and strokes every line in drawing order, scaled from
// logical to device space.
func Draw(surface Surface, lines []state.Line, scale float64) {
	surface.Clear()
	for _, l := range lines {
		if len(l.Points) == 0 {
			continue
		}
		surface.Stroke(StrokeFor(l, scale))
	}
}

// StrokeFor builds the device-space stroke command for a line.
func StrokeFor(l state.Line, scale float64) Stroke {
	pts := make([]Point, len(l.Points))
	for i, p := range l.Points {
		v := state.ToDevice(p, scale)
		pts[i] = Point{X: v.X, Y: v.Y}
	}
	return Stroke{
		Color:  l.Color,
		Width:  l.Thickness * scale,
		Points: pts,
	}
}
