package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for data format tags that name neither
// Raw nor Compact.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// Format selects how line points are serialized.
type Format int

const (
	// Raw keeps each point as an {x, y} object.
	Raw Format = iota + 1
	// Compact joins points into a single "x,y|x,y" string.
	Compact
)

// ParseFormat accepts the UI tags "1" and "2" as well as "raw" and
// "compact".
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "1", "raw":
		return Raw, nil
	case "2", "compact":
		return Compact, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
}

// String returns the UI tag of f.
func (f Format) String() string {
	switch f {
	case Raw:
		return "1"
	case Compact:
		return "2"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Valid reports whether f is Raw or Compact.
func (f Format) Valid() bool {
	return f == Raw || f == Compact
}
