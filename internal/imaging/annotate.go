package imaging

import (
	"image"
	"image/color"
	"strconv"
)

// digitGlyphs is a 3x5 bitmap font for the decimal digits. Each row holds
// three bits, most significant bit leftmost.
var digitGlyphs = [10][5]uint8{
	{7, 5, 5, 5, 7}, // 0
	{2, 6, 2, 2, 7}, // 1
	{7, 1, 7, 4, 7}, // 2
	{7, 1, 7, 1, 7}, // 3
	{5, 5, 7, 1, 1}, // 4
	{7, 4, 7, 1, 7}, // 5
	{7, 4, 7, 5, 7}, // 6
	{7, 1, 1, 1, 1}, // 7
	{7, 5, 7, 5, 7}, // 8
	{7, 5, 7, 1, 7}, // 9
}

const (
	glyphAdvance = 4
	labelHeight  = 7
)

// DrawBox outlines r on img with a one-pixel border. Parts of r outside img
// are skipped.
func DrawBox(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		setClipped(img, x, r.Min.Y, c)
		setClipped(img, x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		setClipped(img, r.Min.X, y, c)
		setClipped(img, r.Max.X-1, y, c)
	}
}

// DrawNumber writes n at (x, y) in the digit font on a filled background
// box, clipped to img.
func DrawNumber(img *image.RGBA, x, y, n int, fg, bg color.RGBA) {
	text := strconv.Itoa(n)

	for dy := -1; dy < labelHeight-1; dy++ {
		for dx := -1; dx < len(text)*glyphAdvance; dx++ {
			setClipped(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if ch < '0' || ch > '9' {
			// minus sign
			setClipped(img, cx, y+2, fg)
			setClipped(img, cx+1, y+2, fg)
			setClipped(img, cx+2, y+2, fg)
			cx += glyphAdvance
			continue
		}
		for row, bits := range digitGlyphs[ch-'0'] {
			for col := 0; col < 3; col++ {
				if bits&(4>>col) != 0 {
					setClipped(img, cx+col, y+row, fg)
				}
			}
		}
		cx += glyphAdvance
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Rect) {
		img.SetRGBA(x, y, c)
	}
}
