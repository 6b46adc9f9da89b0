package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img), "PNG encoding should succeed")
	return buf.Bytes()
}

func jpegBytes(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil), "JPEG encoding should succeed")
	return buf.Bytes()
}

func TestDecodeRejectsUnsupportedMediaType(t *testing.T) {
	data := pngBytes(t, newTestImage(10, 10, color.NRGBA{R: 255, A: 255}))

	for _, mediaType := range []string{"image/gif", "image/webp", "text/html", ""} {
		_, decodeErr := Decode(data, mediaType)
		assert.ErrorIs(t, decodeErr, ErrUnsupportedFormat,
			"media type %q should be rejected without byte inspection", mediaType)
	}
}

func TestDecodeAcceptsDeclaredTypes(t *testing.T) {
	img := newTestImage(10, 10, color.NRGBA{G: 255, A: 255})

	for _, mediaType := range []string{"image/png", "IMAGE/PNG", " image/png "} {
		r, decodeErr := Decode(pngBytes(t, img), mediaType)
		require.NoError(t, decodeErr, "media type %q should be accepted", mediaType)
		assert.Equal(t, 10, r.Width())
	}

	r, decodeErr := Decode(jpegBytes(t, img), "image/jpg")
	require.NoError(t, decodeErr)
	assert.Equal(t, 10, r.Height())
}

func TestDecodeMalformedBytes(t *testing.T) {
	_, decodeErr := Decode([]byte("not an image"), "image/png")
	assert.ErrorIs(t, decodeErr, ErrDecodeFailure,
		"malformed bytes with an accepted type should fail as a decode failure")
}

func TestDecodePassthroughWithinBounds(t *testing.T) {
	// Longer side exactly at the limit: no resampling applied.
	r, decodeErr := Decode(pngBytes(t, newTestImage(800, 300, color.NRGBA{B: 255, A: 255})), "image/png")
	require.NoError(t, decodeErr)
	assert.Equal(t, 800, r.Width(), "image within bounds keeps its width")
	assert.Equal(t, 300, r.Height(), "image within bounds keeps its height")
}

func TestDecodeDownscalesWideImage(t *testing.T) {
	r, decodeErr := Decode(pngBytes(t, newTestImage(2000, 1000, color.NRGBA{R: 255, A: 255})), "image/png")
	require.NoError(t, decodeErr)
	assert.Equal(t, 800, r.Width(), "longer side must land exactly on the bound")
	assert.InDelta(t, 400, r.Height(), 1, "shorter side preserves aspect within rounding")
}

func TestDecodeDownscalesTallImage(t *testing.T) {
	r, decodeErr := Decode(pngBytes(t, newTestImage(500, 1600, color.NRGBA{R: 255, A: 255})), "image/png")
	require.NoError(t, decodeErr)
	assert.Equal(t, 800, r.Height(), "longer side must land exactly on the bound")
	assert.InDelta(t, 250, r.Width(), 1)
}

func TestDecodeNeverUpscales(t *testing.T) {
	r, decodeErr := Decode(pngBytes(t, newTestImage(40, 20, color.NRGBA{R: 255, A: 255})), "image/png")
	require.NoError(t, decodeErr)
	assert.Equal(t, 40, r.Width())
	assert.Equal(t, 20, r.Height())
}

func TestAspectRatio(t *testing.T) {
	r := FromImage(newTestImage(200, 100, color.NRGBA{A: 255}))
	assert.InDelta(t, 2.0, r.AspectRatio(), 0.0001)
}

func TestChecksum(t *testing.T) {
	a := FromImage(newTestImage(10, 10, color.NRGBA{R: 1, A: 255}))
	b := FromImage(newTestImage(10, 10, color.NRGBA{R: 1, A: 255}))
	c := FromImage(newTestImage(10, 10, color.NRGBA{R: 2, A: 255}))

	assert.Equal(t, Checksum(a), Checksum(b), "identical pixels should checksum equal")
	assert.NotEqual(t, Checksum(a), Checksum(c), "different pixels should checksum differently")
	assert.Equal(t, "empty", Checksum(nil))
}
