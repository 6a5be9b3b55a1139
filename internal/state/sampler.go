package state

import "math"

// Sample reduces a stream of raw pointer positions to the sparse set of
// points a Line keeps. It decides whether raw produces a new point after
// last; the returned vector is unclamped and unrounded, pass it to Clamp
// before storing it.
//
// The candidate trails the pointer by thickness/2 along the direction from
// last to raw. It is only accepted once raw is a full thickness away from
// last, which places the candidate at least thickness/2 from last. The
// price is that up to one thickness of travel at the end of a quick stroke
// may never produce a point.
func Sample(last Point, raw Vec, thickness float64) (Vec, bool) {
	half := thickness / 2
	from := last.Vec()
	dx, dy := raw.X-from.X, raw.Y-from.Y
	n := math.Hypot(dx, dy)
	if n < thickness {
		return Vec{}, false
	}
	b := (n - half) / n
	return Vec{X: from.X + dx*b, Y: from.Y + dy*b}, true
}

// roundingSlack is the most a step can shrink when both ends are rounded
// to whole units.
const roundingSlack = math.Sqrt2 / 2

// Next samples raw against last and clamps the candidate to bounds. A
// candidate that clamps back onto last, or within thickness/2 of it less
// rounding, is dropped; this is what keeps a drag past the canvas edge from
// piling up copies of the edge point.
func Next(last Point, raw Vec, thickness float64, bounds Size) (Point, bool) {
	v, ok := Sample(last, raw, thickness)
	if !ok {
		return Point{}, false
	}
	p := Clamp(v, thickness, bounds)
	if d := Distance(last, p); d == 0 || d < thickness/2-roundingSlack {
		return Point{}, false
	}
	return p, true
}

// Clamp keeps the whole stroke width inside the canvas and rounds v to
// integral units. When the stroke is wider than the canvas the upper bound
// wins.
func Clamp(v Vec, thickness float64, bounds Size) Point {
	half := thickness / 2
	return Point{
		X: roundHalfUp(math.Min(math.Max(half, v.X), bounds.Width-half)),
		Y: roundHalfUp(math.Min(math.Max(half, v.Y), bounds.Height-half)),
	}
}

// roundHalfUp rounds .5 towards positive infinity, unlike math.Round.
func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
