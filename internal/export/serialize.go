// Package export converts drawings into data for other programs: JSON line
// data for the output area, and PDF pages.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"LineSketch/internal/state"
)

// ErrMalformedPoints is returned when a compact point string does not parse.
var ErrMalformedPoints = errors.New("malformed compact points")

// Line is the exported form of a state.Line. Points holds []state.Point for
// Raw and a string for Compact.
type Line struct {
	Color     string  `json:"color"`
	Thickness float64 `json:"thickness"`
	Points    any     `json:"points"`
}

// Serialize converts lines into their exported form. An empty drawing
// yields nil. The input is never modified.
func Serialize(lines []state.Line, format Format) ([]Line, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if len(lines) == 0 {
		return nil, nil
	}
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		var pts any
		switch format {
		case Raw:
			pts = append(make([]state.Point, 0, len(l.Points)), l.Points...)
		case Compact:
			pts = FormatPoints(l.Points)
		}
		out = append(out, Line{Color: l.Color, Thickness: l.Thickness, Points: pts})
	}
	return out, nil
}

// Text serializes lines and encodes them as JSON. Nothing drawn yields "".
func Text(lines []state.Line, format Format) (string, error) {
	exported, err := Serialize(lines, format)
	if err != nil {
		return "", err
	}
	if exported == nil {
		return "", nil
	}
	data, err := json.Marshal(exported)
	if err != nil {
		return "", fmt.Errorf("encode lines: %w", err)
	}
	return string(data), nil
}

// FormatPoints renders points as "x1,y1|x2,y2|...".
func FormatPoints(points []state.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
	}
	return sb.String()
}

// ParsePoints is the inverse of FormatPoints.
func ParsePoints(s string) ([]state.Point, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "|")
	points := make([]state.Point, 0, len(parts))
	for _, part := range parts {
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPoints, part)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedPoints, part, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedPoints, part, err)
		}
		points = append(points, state.Point{X: x, Y: y})
	}
	return points, nil
}
