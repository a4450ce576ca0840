package extract

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/icon-cleaner/internal/imaging"
	"github.com/ironsheep/icon-cleaner/internal/segment"
)

// ErrNoComponents is returned when the threshold mask has no content at all.
var ErrNoComponents = errors.New("no components found")

// Source loads decoded images by path. *imaging.ImageCache implements it.
type Source interface {
	Load(path string) (image.Image, error)
}

// Result is the outcome of one extraction.
type Result struct {
	// Image is the 4-channel result: foreground colour everywhere, alpha 255
	// on kept pixels and 0 elsewhere.
	Image *image.NRGBA

	// Mask is the foreground selection mask at source size, before trimming.
	Mask *image.Gray

	// Report describes every component and the classification outcome.
	Report Report

	// OutputPath is where the result was written; empty for in-memory runs.
	OutputPath string

	labels  *segment.Labeling
	classes []segment.Class
}

// Extract runs the pipeline on an in-memory image.
//
// Parameters:
//   - img: Source image, 3- or 4-channel. Alpha is ignored.
//   - cfg: Extraction settings; see Hands and Wave for presets.
//
// Returns:
//   - *Result: The composed image, selection mask and report.
//   - error: Non-nil for an invalid config, or ErrNoComponents when the
//     threshold mask is empty in ModeComponents.
func Extract(img image.Image, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	fg := imaging.White
	if cfg.Color != "" {
		fg, _ = imaging.ParseColor(cfg.Color)
	}

	gray := imaging.Grayscale(img)
	content := imaging.ThresholdInv(gray, cfg.Threshold)
	w, h := content.Bounds().Dx(), content.Bounds().Dy()

	res := &Result{
		Report: Report{
			Width:     w,
			Height:    h,
			Threshold: cfg.Threshold,
			Mode:      cfg.mode(),
		},
	}

	switch cfg.mode() {
	case ModeThreshold:
		res.Mask = content
		if cfg.DebugPath != "" {
			res.labels = segment.Label(content)
			res.classes = make([]segment.Class, len(res.labels.Components))
		}
	default:
		labels := segment.Label(content)
		if len(labels.Components) == 0 {
			return nil, ErrNoComponents
		}
		res.labels = labels
		res.Mask = selectForeground(labels, cfg, &res.Report, &res.classes)
	}

	if cfg.Dilate > 0 {
		res.Mask = dilate(res.Mask, cfg.Dilate)
	}

	res.Report.ForegroundPixels = imaging.CountNonZero(res.Mask)
	res.Report.Blank = res.Report.ForegroundPixels == 0
	if res.Report.Blank {
		log.Printf("warning: no foreground kept (%d components, %d frame, %d noise); result is fully transparent",
			len(res.Report.Components), res.Report.Frames, res.Report.Noise)
	}

	res.Image = imaging.MaskToAlpha(res.Mask, fg)
	if cfg.Trim {
		if r, ok := imaging.ContentBounds(res.Mask); ok {
			res.Image = imaging.TrimToContent(res.Image, r, cfg.Padding)
		}
	}

	return res, nil
}

// selectForeground classifies every component and paints the kept ones into
// a fresh selection mask.
func selectForeground(labels *segment.Labeling, cfg Config, report *Report, classes *[]segment.Class) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, labels.Width, labels.Height))
	imageArea := labels.Width * labels.Height
	cl := cfg.classifier()

	*classes = make([]segment.Class, len(labels.Components))
	for i, c := range labels.Components {
		class := cl.Classify(c, imageArea)
		(*classes)[i] = class

		row := ComponentReport{
			Label:          c.Label,
			Area:           c.Area,
			BBox:           c.Box,
			Centroid:       c.Centroid,
			Coverage:       segment.Coverage(c, imageArea),
			CenterDistance: segment.CenterDistance(c, labels.Width, labels.Height),
			Class:          class,
		}
		report.add(row)

		if cfg.Verbose {
			log.Printf("label %d: area=%d bbox_cover=%.2f dist=%.1f -> %s",
				row.Label, row.Area, row.Coverage, row.CenterDistance, row.Class)
		}

		if class == segment.Foreground {
			labels.Paint(mask, c.Label)
		}
	}
	return mask
}

// dilate grows mask by radius using a local-maximum filter.
func dilate(mask *image.Gray, radius float64) *image.Gray {
	grown := effect.Dilate(mask, radius)
	b := grown.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if grown.RGBAAt(b.Min.X+x, b.Min.Y+y).R != 0 {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// ExtractFile loads in through src, extracts it and writes the result.
//
// An empty out derives the path from in with CleanSuffix. The output format
// is checked before the source is read, and nothing is written when loading
// or extraction fails.
func ExtractFile(src Source, in, out string, cfg Config) (*Result, error) {
	if out == "" {
		out = imaging.DerivedOutputPath(in, CleanSuffix)
	}
	if err := imaging.CheckOutputFormat(out); err != nil {
		return nil, err
	}

	img, err := src.Load(in)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", in, err)
	}

	res, err := Extract(img, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}

	if err := imaging.Save(res.Image, out); err != nil {
		return nil, err
	}
	res.OutputPath = out

	if cfg.DebugPath != "" {
		if err := imaging.Save(res.Overlay(img), cfg.DebugPath); err != nil {
			return res, fmt.Errorf("failed to write debug overlay: %w", err)
		}
	}

	return res, nil
}

// Inspect runs the pipeline without writing anything and returns the report.
func Inspect(src Source, in string, cfg Config) (*Report, error) {
	img, err := src.Load(in)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", in, err)
	}
	cfg.DebugPath = ""
	res, err := Extract(img, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	return &res.Report, nil
}

func (c Config) mode() Mode {
	if c.Mode == "" {
		return ModeComponents
	}
	return c.Mode
}
