// Package pipeline - orchestrates the analyzer and compositor for a single
// logo editing session.
package pipeline

import (
	"image"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bannerlab/go-banner/analyzer"
	"github.com/bannerlab/go-banner/colors"
	"github.com/bannerlab/go-banner/compositor"
	"github.com/bannerlab/go-banner/images"
	"github.com/bannerlab/go-banner/profiler"
	"github.com/bannerlab/go-banner/vector"
)

// DefaultThreshold is the initial luminance cutoff for the bitmap step.
const DefaultThreshold = 0.5

// session holds the cached artifacts derived from the current logo. The
// four fields are only ever replaced together; there is no partial update,
// so the cache can never hold a mask from one logo and an artifact from
// another.
type session struct {
	logo     *images.Raster
	mask     *images.Raster
	artifact *vector.Artifact
	dominant colors.RGB
}

// Pipeline owns the single mutable editing session: the current logo and
// its derived artifacts. All methods run to completion on the caller's
// goroutine; the pipeline is not safe for concurrent use and does not need
// to be, since there is exactly one live session by contract.
type Pipeline struct {
	log       *logrus.Entry
	timer     *profiler.StageTimer
	threshold float64
	fill      colors.RGB
	// autoFill keeps the artifact fill tracking the dominant color until
	// the caller picks an explicit fill.
	autoFill bool
	cur      session
}

// New creates a pipeline with no logo loaded and the default threshold.
func New() *Pipeline {
	return &Pipeline{
		log:       logrus.WithField("component", "pipeline"),
		timer:     profiler.NewStageTimer(),
		threshold: DefaultThreshold,
		autoFill:  true,
	}
}

// LoadLogo decodes a new logo and rebuilds every derived artifact.
//
// The previous session is discarded only after the whole chain (decode,
// dominant color, bitmap mask, vector synthesis) has succeeded; any failure
// leaves the prior artifacts untouched, so callers keep a consistent
// preview while the user corrects their input.
//
// Arguments:
// - data: The raw logo file bytes.
// - mediaType: The declared media type.
//
// Returns:
// - error: images.ErrUnsupportedFormat, images.ErrDecodeFailure, or a
//   downstream synthesis error.
func (p *Pipeline) LoadLogo(data []byte, mediaType string) error {
	stop := p.timer.Start("load")
	defer stop()

	logo, err := images.Decode(data, mediaType)
	if err != nil {
		return err
	}
	dominant := analyzer.DominantColor(logo)

	mask, err := analyzer.BitmapMask(logo, p.threshold)
	if err != nil {
		return err
	}

	fill := p.fill
	if p.autoFill {
		fill = dominant
	}
	artifact, err := vector.Synthesize(mask, fill)
	if err != nil {
		return err
	}

	// Replace-all: the four cached artifacts change together or not at all.
	p.cur = session{logo: logo, mask: mask, artifact: artifact, dominant: dominant}
	if p.autoFill {
		p.fill = dominant
	}
	p.log.WithFields(logrus.Fields{
		"width":    logo.Width(),
		"height":   logo.Height(),
		"dominant": dominant.Hex(),
	}).Debug("logo loaded")
	return nil
}

// SetThreshold rebinarizes the current logo at a new luminance cutoff and
// resynthesizes the artifact. The session is updated only on full success.
func (p *Pipeline) SetThreshold(threshold float64) error {
	defer p.timer.Start("rethreshold")()

	mask, err := analyzer.BitmapMask(p.cur.logo, threshold)
	if err != nil {
		return err
	}
	artifact, err := vector.Synthesize(mask, p.fill)
	if err != nil {
		return err
	}
	p.threshold = threshold
	p.cur.mask = mask
	p.cur.artifact = artifact
	return nil
}

// SetFillColor recolors the artifact. Turns off dominant-color tracking.
func (p *Pipeline) SetFillColor(fill colors.RGB) error {
	p.autoFill = false
	p.fill = fill
	if p.cur.mask == nil {
		return nil
	}
	artifact, err := vector.Synthesize(p.cur.mask, fill)
	if err != nil {
		return err
	}
	p.cur.artifact = artifact
	return nil
}

// Compose renders the banner for the current session and returns PNG bytes.
//
// Arguments:
// - spec: The banner configuration.
// - uploaded: The uploaded background image, or nil.
//
// Returns:
// - PNG bytes at the configured canvas dimensions.
// - error: vector.ErrNoMaskAvailable when no logo has been loaded, or a
//   composition error.
func (p *Pipeline) Compose(spec *compositor.BannerSpec, uploaded image.Image) ([]byte, error) {
	defer p.timer.Start("compose")()

	if p.cur.artifact == nil {
		return nil, vector.ErrNoMaskAvailable
	}
	out, err := compositor.ComposePNG(spec, p.cur.artifact, p.cur.logo, uploaded)
	if err != nil {
		return nil, errors.Wrap(err, "banner composition failed")
	}
	return out, nil
}

// Reset atomically clears the session: logo, mask, artifact, and dominant
// color are dropped together.
func (p *Pipeline) Reset() {
	p.cur = session{}
	p.autoFill = true
	p.fill = colors.RGB{}
	p.log.Debug("session reset")
}

// Loaded reports whether a logo is currently loaded.
func (p *Pipeline) Loaded() bool {
	return p.cur.logo != nil
}

// DominantColor returns the extracted dominant color of the current logo.
// The second return is false when no logo is loaded.
func (p *Pipeline) DominantColor() (colors.RGB, bool) {
	if p.cur.logo == nil {
		return colors.RGB{}, false
	}
	return p.cur.dominant, true
}

// Artifact returns the current vector artifact, or nil.
func (p *Pipeline) Artifact() *vector.Artifact {
	return p.cur.artifact
}

// Mask returns the current bitmap mask, or nil.
func (p *Pipeline) Mask() *images.Raster {
	return p.cur.mask
}

// Threshold returns the current luminance cutoff.
func (p *Pipeline) Threshold() float64 {
	return p.threshold
}

// StageStats exposes timing statistics for a named stage ("load",
// "rethreshold", "compose").
func (p *Pipeline) StageStats(name string) (profiler.StageStats, bool) {
	return p.timer.Stats(name)
}
