package compositor

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/bannerlab/go-banner/colors"
)

// textEdgeGap is the fixed distance between the text baseline and the
// nearest canvas edge.
const textEdgeGap = 16

// RenderText draws the banner's bold text line, horizontally centered.
// Skipped entirely when the spec carries no text. There is no wrapping and
// no shrink-to-fit; overflow is the caller's responsibility.
//
// Arguments:
// - dc: The drawing context, already sized to the canvas.
// - spec: The banner configuration.
//
// Returns:
// - error: A font or color error.
func RenderText(dc *gg.Context, spec *BannerSpec) error {
	if spec.Text == "" {
		return nil
	}

	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return errors.Wrap(err, "parsing bold font")
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size: float64(spec.FontSize),
		DPI:  72,
	})
	if err != nil {
		return errors.Wrap(err, "building font face")
	}
	defer face.Close()
	dc.SetFontFace(face)

	c, err := colors.Parse(spec.TextColor)
	if err != nil {
		return err
	}
	dc.SetColor(c.RGBA())

	w, _ := dc.MeasureString(spec.Text)
	x := (float64(spec.CanvasWidth) - w) / 2.0
	y := float64(spec.FontSize) + textEdgeGap
	if spec.TextAnchor == TextBottom {
		y = float64(spec.CanvasHeight) - textEdgeGap
	}
	dc.DrawString(spec.Text, x, y)
	return nil
}
