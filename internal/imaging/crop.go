package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ContentBounds returns the smallest rectangle holding every non-zero mask
// pixel. ok is false for an empty mask.
func ContentBounds(mask *image.Gray) (r image.Rectangle, ok bool) {
	b := mask.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if row[x] == 0 {
				continue
			}
			px := b.Min.X + x
			if px < minX {
				minX = px
			}
			if px > maxX {
				maxX = px
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// TrimToContent crops img to content grown by padding on every side, clipped
// to the image. An empty content rectangle returns img unchanged.
func TrimToContent(img *image.NRGBA, content image.Rectangle, padding int) *image.NRGBA {
	if content.Empty() {
		return img
	}
	if padding < 0 {
		padding = 0
	}
	rect := content.Inset(-padding).Intersect(img.Bounds())
	return imaging.Crop(img, rect)
}
