package state

import "math"

// MinScale is the smallest display scale FitScale will return.
const MinScale = 0.2

// FitScale returns the display-to-logical ratio that fits a logical canvas
// into the available display area, leaving padding on every side. The
// result never drops below MinScale.
func FitScale(avail, logical Size, padding float64) float64 {
	if logical.Width <= 0 || logical.Height <= 0 {
		return MinScale
	}
	sx := (avail.Width - padding*2) / logical.Width
	sy := (avail.Height - padding*2) / logical.Height
	return math.Max(MinScale, math.Min(sx, sy))
}

// ToLogical maps a device-space position into logical drawing space.
func ToLogical(device Vec, scale float64) Vec {
	return Vec{X: device.X / scale, Y: device.Y / scale}
}

// ToDevice maps a logical point into device space.
func ToDevice(p Point, scale float64) Vec {
	return Vec{X: float64(p.X) * scale, Y: float64(p.Y) * scale}
}

// DisplaySize is the device extent of a logical canvas at the given scale.
func DisplaySize(logical Size, scale float64) Size {
	return Size{Width: logical.Width * scale, Height: logical.Height * scale}
}

// Contains reports whether p lies inside the logical canvas.
func (s Size) Contains(p Point) bool {
	return float64(p.X) >= 0 && float64(p.X) <= s.Width &&
		float64(p.Y) >= 0 && float64(p.Y) <= s.Height
}
