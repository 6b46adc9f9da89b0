// Package colors - RGB triples and the channel math shared by the analysis
// and compositing stages.
package colors

import (
	"image/color"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// Fallback is the color returned when dominant-color extraction finds no
// usable bucket (e.g. a fully transparent or all-near-white logo).
var Fallback = RGB{R: 0x33, G: 0x66, B: 0x99}

// Parse parses a #-prefixed 6-hex-digit color string. Shorthand 3-digit
// colors are rejected; the configuration surface is full-form only.
//
// Arguments:
// - s: The color string, e.g. "#ff8800".
//
// Returns:
// - The parsed RGB triple.
// - error: An error if the string is not a valid hex color.
func Parse(s string) (RGB, error) {
	if len(s) != 7 {
		return RGB{}, errors.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the triple as a #-prefixed lowercase hex string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// RGBA returns the fully opaque color.RGBA equivalent.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Luminance returns the perceptual brightness of a pixel in [0,255] using
// the Rec. 601 weighting 0.299*R + 0.587*G + 0.114*B. The compositing
// parity of the bitmap step depends on this exact formula.
func Luminance(r, g, b uint8) float32 {
	return 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)
}

// Quantize rounds a channel value to the nearest multiple of 10. The result
// is a histogram bucket coordinate, not a displayable channel, so it may
// exceed 255 (e.g. 255 quantizes to 260).
func Quantize(c uint8) int {
	return int(math32.Round(float32(c)/10.0)) * 10
}

// ClampChannel converts a bucket coordinate back into a displayable channel.
func ClampChannel(q int) uint8 {
	if q > 255 {
		return 255
	}
	if q < 0 {
		return 0
	}
	return uint8(q)
}
