// Package analyzer - raster logo analysis: dominant-color extraction and
// luminance-threshold reduction to a two-color bitmap mask.
package analyzer

import (
	"image"

	"github.com/pkg/errors"

	"github.com/bannerlab/go-banner/colors"
	"github.com/bannerlab/go-banner/images"
)

const (
	// sampleStride skips pixels during dominant-color sampling: every 4th
	// pixel by memory offset is considered.
	sampleStride = 4
	// opacityFloor excludes mostly transparent pixels from color sampling.
	opacityFloor = 128
	// nearWhiteFloor excludes presumed-background buckets whose quantized
	// channels are all above it.
	nearWhiteFloor = 240
	// alphaFloor is the hard transparency cutoff for the bitmap step:
	// anything below becomes background regardless of color.
	alphaFloor = 64
)

// ErrNoSourceImage is returned when a bitmap mask is requested before any
// logo has been loaded. This is a caller-sequencing error, not a decode
// problem.
var ErrNoSourceImage = errors.New("no source image loaded")

// DominantColor picks a single RGB triple representing the image's
// non-background content.
//
// Pixels are sampled at a fixed stride, mostly-transparent pixels are
// skipped, and the remaining colors are bucketed by quantizing each channel
// to the nearest multiple of 10. Buckets whose quantized channels are all
// near white are discarded as presumed background. The fullest bucket wins;
// ties go to the bucket seen first, which is an accepted nondeterminism
// floor rather than a bug. An empty histogram degrades to colors.Fallback;
// extraction never fails the surrounding load.
//
// Arguments:
// - r: The decoded logo raster.
//
// Returns:
// - The winning bucket as a displayable RGB triple, or colors.Fallback.
func DominantColor(r *images.Raster) colors.RGB {
	if r == nil {
		return colors.Fallback
	}

	type bucket [3]int
	counts := make(map[bucket]int)
	var order []bucket

	pix := r.Pix.Pix
	for i := 0; i+3 < len(pix); i += 4 * sampleStride {
		if pix[i+3] < opacityFloor {
			continue
		}
		b := bucket{
			colors.Quantize(pix[i]),
			colors.Quantize(pix[i+1]),
			colors.Quantize(pix[i+2]),
		}
		if b[0] > nearWhiteFloor && b[1] > nearWhiteFloor && b[2] > nearWhiteFloor {
			continue
		}
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}

	best := 0
	var winner bucket
	for _, b := range order {
		if counts[b] > best {
			best = counts[b]
			winner = b
		}
	}
	if best == 0 {
		return colors.Fallback
	}
	return colors.RGB{
		R: colors.ClampChannel(winner[0]),
		G: colors.ClampChannel(winner[1]),
		B: colors.ClampChannel(winner[2]),
	}
}

// BitmapMask reduces the image to a strict two-color (pure black ink, pure
// white background), fully opaque bitmap at the given luminance threshold.
//
// Pixels with alpha below the hard transparency floor become white
// regardless of color; all others are classified by Rec. 601 luminance
// against threshold*255. The classification is a plain per-pixel loop with
// no resampling; any interpolation here would introduce gray fringe pixels
// and break the two-color invariant. Re-running the reduction on its own
// output is a no-op for any threshold.
//
// Arguments:
// - r: The decoded logo raster.
// - threshold: The luminance cutoff in (0,1).
//
// Returns:
// - A new Raster where every pixel is (0,0,0,255) or (255,255,255,255).
// - error: ErrNoSourceImage when r is nil, or a range error on threshold.
func BitmapMask(r *images.Raster, threshold float64) (*images.Raster, error) {
	if r == nil {
		return nil, ErrNoSourceImage
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, errors.Errorf("threshold out of range (0,1): %f", threshold)
	}

	cutoff := float32(threshold) * 255.0
	src := r.Pix
	out := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))

	for i := 0; i+3 < len(src.Pix); i += 4 {
		ink := src.Pix[i+3] >= alphaFloor &&
			colors.Luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2]) < cutoff
		v := uint8(255)
		if ink {
			v = 0
		}
		out.Pix[i] = v
		out.Pix[i+1] = v
		out.Pix[i+2] = v
		out.Pix[i+3] = 255
	}
	return &images.Raster{Pix: out}, nil
}
