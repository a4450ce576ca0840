package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Grayscale converts an image to a single luminance channel.
//
// The source is normalised to straight (non-premultiplied) NRGBA first, so a
// translucent pixel keeps the colour it was drawn with and alpha plays no
// part in the result. Luminance uses BT.601 weights in 14-bit fixed point
// with rounding, the same integer form OpenCV uses for 8-bit images:
//
//	Y = (4899*R + 9617*G + 1868*B + 8192) >> 14
//
// The returned image has bounds starting at (0,0) with the source's size.
func Grayscale(img image.Image) *image.Gray {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			p := srcRow[x*4 : x*4+3]
			dstRow[x] = luma(p[0], p[1], p[2])
		}
	}
	return dst
}

func luma(r, g, b uint8) uint8 {
	return uint8((4899*uint32(r) + 9617*uint32(g) + 1868*uint32(b) + 8192) >> 14)
}

// ThresholdInv performs inverted fixed-level binarization.
//
// Pixels with luminance at or below level become 255 (foreground
// candidate); brighter pixels become 0. A level of 0 therefore marks only
// pure black and a level of 255 marks everything.
func ThresholdInv(gray *image.Gray, level uint8) *image.Gray {
	bounds := gray.Bounds()
	dst := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := gray.Pix[gray.PixOffset(bounds.Min.X, y):]
		out := dst.Pix[dst.PixOffset(bounds.Min.X, y):]
		for x := 0; x < bounds.Dx(); x++ {
			if src[x] <= level {
				out[x] = 255
			}
		}
	}
	return dst
}

// CountNonZero returns the number of non-zero pixels in a mask.
func CountNonZero(mask *image.Gray) int {
	b := mask.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := mask.PixOffset(b.Min.X, y)
		for _, v := range mask.Pix[off : off+b.Dx()] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
