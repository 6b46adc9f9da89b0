package common

import (
	"fmt"
	"image"
)

// Placement describes where and how large an element is drawn on a canvas.
// Coordinates are in canvas units with the origin at the top-left corner.
type Placement struct {
	X, Y          float64
	Width, Height float64
}

func (p Placement) String() string {
	return fmt.Sprintf("placement %gx%g at (%g, %g)", p.Width, p.Height, p.X, p.Y)
}

// ToRect converts the placement to an image.Rectangle.
//
// This won't be entirely precise due to conversion to the integral rectangles
// from the image.Image library, but destination rectangles for raster blits
// only need integer pixels, so truncation is OK.
//
// Returns:
// - An image.Rectangle with canonicalized coordinates.
func (p Placement) ToRect() image.Rectangle {
	return image.Rect(int(p.X), int(p.Y), int(p.X+p.Width), int(p.Y+p.Height)).Canon()
}

// Center returns the midpoint of the placement.
func (p Placement) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}
