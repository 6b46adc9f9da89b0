// Package compositor - banner assembly: background templates, text, and
// 9-anchor logo placement on a fixed-size canvas.
package compositor

import (
	"github.com/pkg/errors"

	"github.com/bannerlab/go-banner/colors"
)

// Mode selects how the banner background is produced.
type Mode string

// Background modes. The first three are generated templates; ModeUpload
// stretches a caller-supplied image over the whole canvas.
const (
	ModeSolid    Mode = "solid"
	ModeGradient Mode = "gradient"
	ModeChecker  Mode = "checker"
	ModeUpload   Mode = "upload"
)

// Anchor names one of the nine grid positions for the logo.
type Anchor string

// Logo anchors, {top,middle,bottom} x {left,center,right}.
const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopCenter    Anchor = "top-center"
	AnchorTopRight     Anchor = "top-right"
	AnchorMiddleLeft   Anchor = "middle-left"
	AnchorMiddleCenter Anchor = "middle-center"
	AnchorMiddleRight  Anchor = "middle-right"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorBottomRight  Anchor = "bottom-right"
)

// VerticalAnchor places the text line near the top or bottom edge.
type VerticalAnchor string

// Text anchors.
const (
	TextTop    VerticalAnchor = "top"
	TextBottom VerticalAnchor = "bottom"
)

// BannerSpec is the configuration for one banner generation request. It is
// consumed, never defined, by this package; the UI layer fills it in.
type BannerSpec struct {
	// Canvas dimensions in pixels.
	CanvasWidth  int
	CanvasHeight int
	// Background mode and its two colors as #-prefixed hex strings.
	Mode       Mode
	Background string
	Gradient   string
	// Optional text line. Empty means no text is drawn.
	Text       string
	TextColor  string
	FontSize   int
	TextAnchor VerticalAnchor
	// Logo sizing as a percentage of the canvas and its grid position.
	LogoSizePct float64
	LogoAnchor  Anchor
	// PreserveColor draws the processed logo raster instead of the
	// recolored silhouette.
	PreserveColor bool
}

var validModes = map[Mode]bool{
	ModeSolid: true, ModeGradient: true, ModeChecker: true, ModeUpload: true,
}

var validAnchors = map[Anchor]bool{
	AnchorTopLeft: true, AnchorTopCenter: true, AnchorTopRight: true,
	AnchorMiddleLeft: true, AnchorMiddleCenter: true, AnchorMiddleRight: true,
	AnchorBottomLeft: true, AnchorBottomCenter: true, AnchorBottomRight: true,
}

// Validate checks the spec for values the renderers cannot work with.
//
// Returns:
// - error describing the first invalid field, or nil.
func (s *BannerSpec) Validate() error {
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return errors.Errorf("invalid canvas dimensions: %dx%d", s.CanvasWidth, s.CanvasHeight)
	}
	if !validModes[s.Mode] {
		return errors.Errorf("invalid background mode: %q", s.Mode)
	}
	if _, err := colors.Parse(s.Background); err != nil {
		return errors.Wrap(err, "background color")
	}
	if s.Mode == ModeGradient || s.Mode == ModeChecker {
		if _, err := colors.Parse(s.Gradient); err != nil {
			return errors.Wrap(err, "gradient color")
		}
	}
	if s.Text != "" {
		if _, err := colors.Parse(s.TextColor); err != nil {
			return errors.Wrap(err, "text color")
		}
		if s.FontSize <= 0 {
			return errors.Errorf("invalid font size: %d", s.FontSize)
		}
		if s.TextAnchor != TextTop && s.TextAnchor != TextBottom {
			return errors.Errorf("invalid text anchor: %q", s.TextAnchor)
		}
	}
	if s.LogoSizePct < 0 || s.LogoSizePct > 100 {
		return errors.Errorf("logo size out of range [0,100]: %f", s.LogoSizePct)
	}
	if !validAnchors[s.LogoAnchor] {
		return errors.Errorf("invalid logo anchor: %q", s.LogoAnchor)
	}
	return nil
}
