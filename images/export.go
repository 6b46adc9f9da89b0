package images

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "png encoding failed")
	}
	return buf.Bytes(), nil
}

// Checksum generates a deterministic checksum for a Raster to verify
// idempotency.
//
// Arguments:
// - r: The Raster to compute a checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
func Checksum(r *Raster) string {
	if r == nil || len(r.Pix.Pix) == 0 {
		return "empty"
	}
	hash := md5.New()
	hash.Write(r.Pix.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
