package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitScale(t *testing.T) {
	logical := Size{600, 600}
	assert.InDelta(t, 1.0, FitScale(Size{640, 900}, logical, 20), 1e-9)
	assert.InDelta(t, 0.5, FitScale(Size{1000, 340}, logical, 20), 1e-9)
	assert.Equal(t, MinScale, FitScale(Size{50, 50}, logical, 20))
	assert.Equal(t, MinScale, FitScale(Size{800, 800}, Size{0, 600}, 20))
}

func TestCoordinateMapping(t *testing.T) {
	v := ToLogical(Vec{50, 25}, 0.5)
	assert.Equal(t, Vec{100, 50}, v)
	assert.Equal(t, Vec{50, 25}, ToDevice(Point{100, 50}, 0.5))
	assert.Equal(t, Size{300, 150}, DisplaySize(Size{600, 300}, 0.5))
}

func TestSizeContains(t *testing.T) {
	s := Size{100, 50}
	assert.True(t, s.Contains(Point{0, 0}))
	assert.True(t, s.Contains(Point{100, 50}))
	assert.False(t, s.Contains(Point{101, 10}))
	assert.False(t, s.Contains(Point{10, -1}))
}
