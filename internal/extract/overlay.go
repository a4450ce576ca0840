package extract

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	localimaging "github.com/ironsheep/icon-cleaner/internal/imaging"
	"github.com/ironsheep/icon-cleaner/internal/segment"
)

var (
	frameTint = color.NRGBA{R: 230, G: 40, B: 40, A: 170}
	noiseTint = color.NRGBA{R: 128, G: 128, B: 128, A: 170}
	labelInk  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Overlay renders src with every labelled component tinted by class:
// kept components get distinct palette colours, the frame is red and noise
// is grey. Each component's bounding box is outlined and numbered with its
// label. Without a labelling the kept mask is tinted with the first palette
// colour.
func (r *Result) Overlay(src image.Image) *image.RGBA {
	base := imaging.Clone(src)
	b := base.Bounds()
	tint := image.NewNRGBA(b)

	if r.labels == nil {
		c := localimaging.Palette(1, 170)[0]
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				if r.Mask.GrayAt(x, y).Y != 0 {
					tint.SetNRGBA(x, y, c)
				}
			}
		}
		return blend.Normal(base, tint)
	}

	palette := localimaging.Palette(len(r.labels.Components), 170)
	tintFor := func(label int) color.NRGBA {
		switch r.classes[label-1] {
		case segment.Frame:
			return frameTint
		case segment.Noise:
			return noiseTint
		}
		return palette[label-1]
	}

	for y := 0; y < r.labels.Height; y++ {
		for x := 0; x < r.labels.Width; x++ {
			label := r.labels.At(x, y)
			if label == 0 {
				continue
			}
			tint.SetNRGBA(x, y, tintFor(label))
		}
	}

	out := blend.Normal(base, tint)
	for _, c := range r.labels.Components {
		t := tintFor(c.Label)
		solid := color.RGBA{R: t.R, G: t.G, B: t.B, A: 255}
		localimaging.DrawBox(out, c.Box.Rect(), solid)
		localimaging.DrawNumber(out, c.Box.X+2, c.Box.Y+2, c.Label, labelInk, solid)
	}
	return out
}
