package compositor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/bannerlab/go-banner/colors"
)

// checker geometry: squares of this size, tiled on a doubled period.
const (
	checkerSquare = 20
	checkerPeriod = 40
	checkerAlpha  = 0.2
)

// RenderBackground paints the banner background onto the context.
//
// Three generated templates (solid, gradient, checker) plus a passthrough
// mode that stretches an uploaded image to the exact canvas size. The
// stretch intentionally ignores aspect ratio; uploaded backgrounds are
// assumed pre-sized. An upload mode with no image falls back to a solid
// fill.
//
// Arguments:
// - dc: The drawing context, already sized to the canvas.
// - spec: The banner configuration.
// - uploaded: The uploaded background image, or nil.
//
// Returns:
// - error: A color parse error for specs that skipped validation.
func RenderBackground(dc *gg.Context, spec *BannerSpec, uploaded image.Image) error {
	if spec.Mode == ModeUpload && uploaded != nil {
		stretched := imaging.Resize(uploaded, spec.CanvasWidth, spec.CanvasHeight, imaging.Lanczos)
		dc.DrawImage(stretched, 0, 0)
		return nil
	}

	bg, err := colors.Parse(spec.Background)
	if err != nil {
		return err
	}
	dc.SetColor(bg.RGBA())
	dc.Clear()

	switch spec.Mode {
	case ModeGradient:
		grad, err := colors.Parse(spec.Gradient)
		if err != nil {
			return err
		}
		fill := gg.NewLinearGradient(0, 0, float64(spec.CanvasWidth), float64(spec.CanvasHeight))
		fill.AddColorStop(0, bg.RGBA())
		fill.AddColorStop(1, grad.RGBA())
		dc.SetFillStyle(fill)
		dc.DrawRectangle(0, 0, float64(spec.CanvasWidth), float64(spec.CanvasHeight))
		dc.Fill()
	case ModeChecker:
		grad, err := colors.Parse(spec.Gradient)
		if err != nil {
			return err
		}
		dc.SetRGBA(
			float64(grad.R)/255.0,
			float64(grad.G)/255.0,
			float64(grad.B)/255.0,
			checkerAlpha,
		)
		for y := 0; y < spec.CanvasHeight; y += checkerSquare {
			for x := 0; x < spec.CanvasWidth; x += checkerSquare {
				if ((x+y)/checkerPeriod)%2 == 0 {
					dc.DrawRectangle(float64(x), float64(y), checkerSquare, checkerSquare)
				}
			}
		}
		dc.Fill()
	}
	return nil
}
