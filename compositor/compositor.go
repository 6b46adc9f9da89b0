package compositor

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/bannerlab/go-banner/images"
	"github.com/bannerlab/go-banner/vector"
)

// Compose assembles the final banner.
//
// Draw order is fixed: background first, text second, logo last, so the
// logo always sits on top of overlapping text. The logo is either stamped
// through the artifact's alpha stencil in its fill color, or, when the spec
// preserves original colors, drawn as the processed logo raster scaled into
// the placement rectangle.
//
// Arguments:
// - spec: The banner configuration.
// - artifact: The synthesized logo artifact; nil composes a logo-free banner.
// - logo: The processed logo raster, used for the preserve-color path.
// - uploaded: The uploaded background image, or nil.
//
// Returns:
// - The composed canvas.
// - error: A validation or rendering error; no partial canvas is returned.
func Compose(spec *BannerSpec, artifact *vector.Artifact, logo *images.Raster, uploaded image.Image) (image.Image, error) {
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid banner spec")
	}

	dc := gg.NewContext(spec.CanvasWidth, spec.CanvasHeight)
	if err := RenderBackground(dc, spec, uploaded); err != nil {
		return nil, errors.Wrap(err, "rendering background")
	}
	if err := RenderText(dc, spec); err != nil {
		return nil, errors.Wrap(err, "rendering text")
	}
	if artifact != nil {
		if err := renderLogo(dc, spec, artifact, logo); err != nil {
			return nil, errors.Wrap(err, "rendering logo")
		}
	}
	return dc.Image(), nil
}

// ComposePNG composes the banner and encodes it to PNG bytes at the
// configured canvas dimensions.
func ComposePNG(spec *BannerSpec, artifact *vector.Artifact, logo *images.Raster, uploaded image.Image) ([]byte, error) {
	img, err := Compose(spec, artifact, logo, uploaded)
	if err != nil {
		return nil, err
	}
	return images.EncodePNG(img)
}

func renderLogo(dc *gg.Context, spec *BannerSpec, artifact *vector.Artifact, logo *images.Raster) error {
	p := LayoutLogo(spec, artifact.AspectRatio())
	rect := p.ToRect()
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil
	}

	if spec.PreserveColor && logo != nil {
		scaled := imaging.Resize(logo.Pix, rect.Dx(), rect.Dy(), imaging.Lanczos)
		dc.DrawImage(scaled, rect.Min.X, rect.Min.Y)
		return nil
	}

	// Alpha-stencil blit: opaque where the mask has ink, transparent
	// elsewhere, so enclosed holes in the silhouette stay see-through.
	stencil := artifact.Stencil(rect.Dx(), rect.Dy())
	full := image.NewAlpha(image.Rect(0, 0, spec.CanvasWidth, spec.CanvasHeight))
	draw.Draw(full, rect, stencil, image.Point{}, draw.Src)
	if err := dc.SetMask(full); err != nil {
		return err
	}
	dc.SetColor(artifact.Fill().RGBA())
	dc.DrawRectangle(p.X, p.Y, p.Width, p.Height)
	dc.Fill()
	return nil
}
