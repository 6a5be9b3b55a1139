package render

// Recorder is a Surface that keeps the command sequence of the last frame.
type Recorder struct {
	Strokes []Stroke
	Frames  int
}

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.Strokes = r.Strokes[:0]
	r.Frames++
}

// Stroke records s.
func (r *Recorder) Stroke(s Stroke) {
	r.Strokes = append(r.Strokes, s)
}
