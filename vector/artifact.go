// Package vector - turns a two-color bitmap mask into a scalable,
// recolorable artifact.
//
// No contour tracing happens here. The bitmap is embedded as a
// luminance-driven mask and a single colored rectangle is painted through
// it, which keeps interior holes (letter counters, enclosed shapes)
// transparent without any polygon extraction. The cost is a masked
// raster-in-vector wrapper rather than a pure path document.
package vector

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bannerlab/go-banner/colors"
	"github.com/bannerlab/go-banner/images"
)

// ErrNoMaskAvailable is returned when synthesis is requested before the
// bitmap reduction step has produced a mask.
var ErrNoMaskAvailable = errors.New("no bitmap mask available")

// Artifact is a self-contained SVG document that renders the mask's
// silhouette, holes included, in a single fill color at any target size.
// Its intrinsic aspect ratio equals the mask's width/height ratio.
type Artifact struct {
	mask *images.Raster
	fill colors.RGB
	svg  string
}

// Synthesize embeds the mask into an SVG document and paints a fill-colored
// rectangle through it.
//
// SVG masks treat white as opaque and black as transparent, while the
// bitmap uses black for ink, so the embedded image is run through a
// channel-inverting filter first. Ink regions then render in the fill
// color and background regions, including enclosed holes, stay fully
// transparent.
//
// Arguments:
// - mask: The two-color bitmap produced by the analyzer.
// - fill: The fill color for ink regions.
//
// Returns:
// - The synthesized artifact.
// - error: ErrNoMaskAvailable when mask is nil, or a PNG encoding error.
func Synthesize(mask *images.Raster, fill colors.RGB) (*Artifact, error) {
	if mask == nil {
		return nil, ErrNoMaskAvailable
	}

	payload, err := images.EncodePNG(mask.Pix)
	if err != nil {
		return nil, errors.Wrap(err, "mask embedding failed")
	}
	encoded := base64.StdEncoding.EncodeToString(payload)
	w := mask.Width()
	h := mask.Height()

	sb := strings.Builder{}
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %d %d">`,
		w, h))
	sb.WriteString(`<defs>`)
	sb.WriteString(`<filter id="invert"><feColorMatrix type="matrix" values="-1 0 0 0 1 0 -1 0 0 1 0 0 -1 0 1 0 0 0 1 0"/></filter>`)
	sb.WriteString(fmt.Sprintf(
		`<mask id="ink"><image href="data:image/png;base64,%s" width="%d" height="%d" filter="url(#invert)"/></mask>`,
		encoded, w, h))
	sb.WriteString(`</defs>`)
	sb.WriteString(fmt.Sprintf(
		`<rect width="%d" height="%d" fill="%s" mask="url(#ink)"/>`,
		w, h, fill.Hex()))
	sb.WriteString(`</svg>`)

	return &Artifact{mask: mask, fill: fill, svg: sb.String()}, nil
}

// SVG returns the artifact markup.
func (a *Artifact) SVG() string {
	return a.svg
}

// Bytes returns the artifact markup as a byte slice.
func (a *Artifact) Bytes() []byte {
	return []byte(a.svg)
}

// Fill returns the artifact's fill color.
func (a *Artifact) Fill() colors.RGB {
	return a.fill
}

// Mask returns the bitmap the artifact was synthesized from.
func (a *Artifact) Mask() *images.Raster {
	return a.mask
}

// AspectRatio returns the artifact's intrinsic width/height ratio.
func (a *Artifact) AspectRatio() float64 {
	return a.mask.AspectRatio()
}
