// Package images - Raster primitives for the banner pipeline.
package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// Raster is a decoded, fully materialized image. The pixel buffer is never
// mutated after construction; every transform allocates a new Raster.
type Raster struct {
	// The pixel grid, 8 bits per channel, straight (non-premultiplied) alpha.
	Pix *image.NRGBA
}

// FromImage copies an arbitrary image.Image into a new Raster.
func FromImage(img image.Image) *Raster {
	return &Raster{Pix: imaging.Clone(img)}
}

// Width returns the pixel width of the image.
func (r *Raster) Width() int {
	return r.Pix.Bounds().Dx()
}

// Height returns the pixel height of the image.
func (r *Raster) Height() int {
	return r.Pix.Bounds().Dy()
}

// AspectRatio returns width/height.
func (r *Raster) AspectRatio() float64 {
	return float64(r.Width()) / float64(r.Height())
}
