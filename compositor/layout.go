package compositor

import (
	"github.com/bannerlab/go-banner/common"
)

// EdgePadding is the fixed distance, in pixels, between the logo and the
// canvas edge for non-centered anchors.
const EdgePadding = 20

// LayoutLogo computes the logo's destination rectangle. Pure function of
// the spec and the artifact's aspect ratio.
//
// The logo is fit inside maxW x maxH (canvas dimension times LogoSizePct),
// preserving aspect ratio, never filled or cropped. Each axis then
// resolves independently: EdgePadding from the near edge, or centered for
// middle/center anchors.
//
// Arguments:
// - spec: The banner configuration.
// - aspectRatio: The artifact's intrinsic width/height ratio.
//
// Returns:
// - The placement rectangle in canvas coordinates.
func LayoutLogo(spec *BannerSpec, aspectRatio float64) common.Placement {
	maxW := float64(spec.CanvasWidth) * spec.LogoSizePct / 100.0
	maxH := float64(spec.CanvasHeight) * spec.LogoSizePct / 100.0

	var w, h float64
	if maxW/aspectRatio <= maxH {
		w = maxW
		h = maxW / aspectRatio
	} else {
		h = maxH
		w = maxH * aspectRatio
	}

	var x float64
	switch spec.LogoAnchor {
	case AnchorTopLeft, AnchorMiddleLeft, AnchorBottomLeft:
		x = EdgePadding
	case AnchorTopRight, AnchorMiddleRight, AnchorBottomRight:
		x = float64(spec.CanvasWidth) - w - EdgePadding
	default:
		x = (float64(spec.CanvasWidth) - w) / 2.0
	}

	var y float64
	switch spec.LogoAnchor {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		y = EdgePadding
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		y = float64(spec.CanvasHeight) - h - EdgePadding
	default:
		y = (float64(spec.CanvasHeight) - h) / 2.0
	}

	return common.Placement{X: x, Y: y, Width: w, Height: h}
}
