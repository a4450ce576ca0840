package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// White is the default foreground colour of a cleaned icon.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseColor parses "#RRGGBB", "#RGB", or the same without the leading '#'.
// The returned colour is always fully opaque; transparency of the result
// comes from the selection mask alone.
func ParseColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexString formats c as "#RRGGBB".
func HexString(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Palette returns n visually distinct opaque colours with the given alpha.
//
// Hues are spread by the golden angle so neighbouring labels never share a
// colour, and the sequence is deterministic for a given n.
func Palette(n int, alpha uint8) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for i := range out {
		hue := float64(i) * 137.508
		for hue >= 360 {
			hue -= 360
		}
		r, g, b := colorful.Hsv(hue, 0.75, 0.95).Clamped().RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: alpha}
	}
	return out
}

// MaskToAlpha composes the 4-channel result: every pixel carries the colour
// fg and its alpha is copied from mask. The output has the mask's size with
// bounds starting at (0,0).
func MaskToAlpha(mask *image.Gray, fg color.NRGBA) *image.NRGBA {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		src := mask.Pix[mask.PixOffset(b.Min.X, b.Min.Y+y):]
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			p[0] = fg.R
			p[1] = fg.G
			p[2] = fg.B
			p[3] = src[x]
		}
	}
	return out
}
