// Command bannergen composes a banner from a logo file on the command line.
// It plays the role of the orchestrating caller: all file I/O lives here,
// the pipeline only sees bytes and specs.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bannerlab/go-banner/colors"
	"github.com/bannerlab/go-banner/compositor"
	"github.com/bannerlab/go-banner/pipeline"
)

func main() {
	var (
		logoPath  = flag.String("logo", "", "Path to the logo image (PNG or JPEG)")
		bgPath    = flag.String("bg-image", "", "Optional background image for upload mode")
		out       = flag.String("out", "banner.png", "Output PNG path")
		width     = flag.Int("width", 1200, "Canvas width in pixels")
		height    = flag.Int("height", 630, "Canvas height in pixels")
		mode      = flag.String("mode", "solid", "Background mode: solid, gradient, checker, upload")
		bg        = flag.String("bg", "#ffffff", "Background color")
		grad      = flag.String("grad", "#dddddd", "Second color for gradient/checker modes")
		text      = flag.String("text", "", "Optional text line")
		textColor = flag.String("text-color", "#000000", "Text color")
		fontSize  = flag.Int("font-size", 48, "Text size in pixels")
		textPos   = flag.String("text-pos", "bottom", "Text position: top or bottom")
		pct       = flag.Float64("logo-size", 25, "Logo size as a percentage of the canvas")
		anchor    = flag.String("anchor", "middle-center", "Logo anchor, e.g. top-left, middle-center")
		threshold = flag.Float64("threshold", 0.5, "Luminance threshold in (0,1)")
		fill      = flag.String("fill", "", "Logo fill color; defaults to the extracted dominant color")
		preserve  = flag.Bool("preserve-color", false, "Keep the logo's original colors")
		verbose   = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	log := logrus.WithField("component", "bannergen")
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *logoPath == "" {
		log.Fatal("-logo is required")
	}

	data, err := os.ReadFile(*logoPath)
	if err != nil {
		log.WithError(err).Fatal("reading logo")
	}
	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(*logoPath)))

	p := pipeline.New()
	if err := p.LoadLogo(data, mediaType); err != nil {
		log.WithError(err).Fatal("loading logo")
	}
	if *threshold != pipeline.DefaultThreshold {
		if err := p.SetThreshold(*threshold); err != nil {
			log.WithError(err).Fatal("applying threshold")
		}
	}
	if *fill != "" {
		c, err := colors.Parse(*fill)
		if err != nil {
			log.WithError(err).Fatal("parsing fill color")
		}
		if err := p.SetFillColor(c); err != nil {
			log.WithError(err).Fatal("applying fill color")
		}
	}
	if dominant, ok := p.DominantColor(); ok {
		log.WithField("color", dominant.Hex()).Debug("dominant color extracted")
	}

	spec := &compositor.BannerSpec{
		CanvasWidth:   *width,
		CanvasHeight:  *height,
		Mode:          compositor.Mode(*mode),
		Background:    *bg,
		Gradient:      *grad,
		Text:          *text,
		TextColor:     *textColor,
		FontSize:      *fontSize,
		TextAnchor:    compositor.VerticalAnchor(*textPos),
		LogoSizePct:   *pct,
		LogoAnchor:    compositor.Anchor(*anchor),
		PreserveColor: *preserve,
	}

	png, err := p.Compose(spec, loadBackground(log, *bgPath))
	if err != nil {
		log.WithError(err).Fatal("composing banner")
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.WithError(err).Fatal("writing output")
	}
	log.WithField("path", *out).Info("banner written")
}

// loadBackground decodes the optional upload-mode background image. A
// missing path is fine; a present but unreadable one is fatal.
func loadBackground(log *logrus.Entry, path string) image.Image {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Fatal("opening background image")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.WithError(err).Fatal("decoding background image")
	}
	return img
}
