package state

import "github.com/google/uuid"

// Point is a committed position in logical drawing space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec is an unrounded position, used for raw pointer input and sampler math.
type Vec struct{ X, Y float64 }

// Vec returns p as a float vector.
func (p Point) Vec() Vec { return Vec{X: float64(p.X), Y: float64(p.Y)} }

// Size is the logical extent of the drawing space.
type Size struct{ Width, Height float64 }

// Style is captured by a Line when it is created and never changes after.
type Style struct {
	Color     string
	Thickness float64
}

// Line is one continuous stroke.
type Line struct {
	ID        string
	Color     string
	Thickness float64
	Points    []Point
}

func newLine(style Style) *Line {
	return &Line{
		ID:        uuid.NewString(),
		Color:     style.Color,
		Thickness: style.Thickness,
	}
}

// Last returns the most recently committed point.
func (l *Line) Last() (Point, bool) {
	if l == nil || len(l.Points) == 0 {
		return Point{}, false
	}
	return l.Points[len(l.Points)-1], true
}

// Clone returns a copy of l that shares nothing with it.
func (l Line) Clone() Line {
	l.Points = append([]Point(nil), l.Points...)
	return l
}
