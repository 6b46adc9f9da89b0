package common

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacementToRect(t *testing.T) {
	p := Placement{X: 20, Y: 30, Width: 100.7, Height: 50.2}
	assert.Equal(t, image.Rect(20, 30, 120, 80), p.ToRect())
}

func TestPlacementCenter(t *testing.T) {
	p := Placement{X: 10, Y: 10, Width: 80, Height: 40}
	cx, cy := p.Center()
	assert.InDelta(t, 50.0, cx, 0.0001)
	assert.InDelta(t, 30.0, cy, 0.0001)
}

func TestPlacementString(t *testing.T) {
	p := Placement{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, "placement 3x4 at (1, 2)", p.String())
}
