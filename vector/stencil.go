package vector

import (
	"image"

	"github.com/disintegration/imaging"
)

// Stencil rasterizes the artifact's silhouette as an alpha mask at the
// given size: ink pixels become fully opaque, everything else fully
// transparent. This is the masked-composite primitive used by raster
// targets that cannot consume the SVG mask directly; it carries the same
// hole-preservation guarantee.
//
// The mask is scaled with nearest-neighbor sampling so the result stays a
// hard two-level stencil with no interpolated fringe.
func (a *Artifact) Stencil(width, height int) *image.Alpha {
	scaled := imaging.Resize(a.mask.Pix, width, height, imaging.NearestNeighbor)
	out := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(scaled.Pix); i += 4 {
		if scaled.Pix[i] < 128 {
			out.Pix[i/4] = 255
		}
	}
	return out
}
