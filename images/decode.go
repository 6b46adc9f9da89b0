package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// MaxSide is the longest side, in pixels, a decoded logo is allowed to keep.
// Larger inputs are downscaled so the analysis stages stay cheap.
const MaxSide = 800

var (
	// ErrUnsupportedFormat is returned when the declared media type is not
	// PNG or JPEG. The input bytes are never inspected in that case.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrDecodeFailure is returned when bytes with an accepted media type
	// turn out to be malformed.
	ErrDecodeFailure = errors.New("image decode failed")
)

var acceptedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// Decode validates the declared media type, decodes the bytes, and bounds
// the result to MaxSide.
//
// Arguments:
// - data: The raw file bytes.
// - mediaType: The declared media type, e.g. "image/png".
//
// Returns:
// - The decoded Raster, downscaled if the longer side exceeded MaxSide.
// - error: ErrUnsupportedFormat or ErrDecodeFailure.
func Decode(data []byte, mediaType string) (*Raster, error) {
	if !acceptedTypes[strings.ToLower(strings.TrimSpace(mediaType))] {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "media type %q", mediaType)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrDecodeFailure, err.Error())
	}
	return FromImage(clampSize(img)), nil
}

// clampSize downscales img so its longer side equals MaxSide, preserving
// aspect ratio. Images already within bounds pass through unchanged; images
// are never upscaled.
func clampSize(img image.Image) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= MaxSide && h <= MaxSide {
		return img
	}
	if w >= h {
		return resize.Resize(MaxSide, 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, MaxSide, img, resize.Lanczos3)
}
