package segment

import (
	"image"
	"math"
)

// Box is an axis-aligned bounding box in pixel coordinates.
// (X, Y) is the top-left pixel; Width and Height are at least 1 for any
// labelled component.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width × Height.
func (b Box) Area() int {
	return b.Width * b.Height
}

// Rect converts the box to an image.Rectangle (Max exclusive).
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Point is a sub-pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Component describes one 8-connected region of a mask.
type Component struct {
	// Label is the component's id in Labeling.Labels (1-based).
	Label int `json:"label"`

	// Box is the bounding box enclosing every pixel of the component.
	Box Box `json:"bbox"`

	// Area is the number of pixels in the component.
	Area int `json:"area"`

	// Centroid is the mean pixel position.
	Centroid Point `json:"centroid"`
}

// Labeling is the result of connected-component analysis.
type Labeling struct {
	Width  int
	Height int

	// Labels holds one entry per pixel in row-major order; 0 is background.
	Labels []int32

	// Components holds the stats of label i at index i-1.
	Components []Component
}

// Component returns the stats for label, or false for background or an
// unknown label.
func (l *Labeling) Component(label int) (Component, bool) {
	if label < 1 || label > len(l.Components) {
		return Component{}, false
	}
	return l.Components[label-1], true
}

// At returns the label of pixel (x, y) relative to the mask's top-left.
func (l *Labeling) At(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	return int(l.Labels[y*l.Width+x])
}

// Paint sets every pixel of label to 255 in dst. dst must have the
// labelling's size; its bounds may start anywhere.
func (l *Labeling) Paint(dst *image.Gray, label int) {
	c, ok := l.Component(label)
	if !ok {
		return
	}
	origin := dst.Bounds().Min
	want := int32(label)
	for y := c.Box.Y; y < c.Box.Y+c.Box.Height; y++ {
		row := l.Labels[y*l.Width : (y+1)*l.Width]
		out := dst.Pix[dst.PixOffset(origin.X, origin.Y+y):]
		for x := c.Box.X; x < c.Box.X+c.Box.Width; x++ {
			if row[x] == want {
				out[x] = 255
			}
		}
	}
}

// Label computes 8-connectivity connected components over the non-zero
// pixels of mask.
//
// # Algorithm
//
// The mask is scanned in raster order. Each unlabelled foreground pixel seeds
// an iterative stack-based flood fill that visits all 8 neighbours, so large
// regions never recurse. Bounding box, area and coordinate sums are
// accumulated during the fill.
func Label(mask *image.Gray) *Labeling {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	fg := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := mask.Pix[mask.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			fg[y*w+x] = row[x] != 0
		}
	}

	l := &Labeling{
		Width:  w,
		Height: h,
		Labels: make([]int32, w*h),
	}

	var stack []int
	for start := range fg {
		if !fg[start] || l.Labels[start] != 0 {
			continue
		}

		label := int32(len(l.Components) + 1)
		l.Labels[start] = label
		stack = append(stack[:0], start)

		minX, minY := w, h
		maxX, maxY := -1, -1
		var area int
		var sumX, sumY float64

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			px, py := idx%w, idx/w
			area++
			sumX += float64(px)
			sumY += float64(py)
			if px < minX {
				minX = px
			}
			if px > maxX {
				maxX = px
			}
			if py < minY {
				minY = py
			}
			if py > maxY {
				maxY = py
			}

			// 8-connected neighbours
			for dy := -1; dy <= 1; dy++ {
				ny := py + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := px + dx
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
						continue
					}
					n := ny*w + nx
					if fg[n] && l.Labels[n] == 0 {
						l.Labels[n] = label
						stack = append(stack, n)
					}
				}
			}
		}

		l.Components = append(l.Components, Component{
			Label: int(label),
			Box: Box{
				X:      minX,
				Y:      minY,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
			},
			Area: area,
			Centroid: Point{
				X: sumX / float64(area),
				Y: sumY / float64(area),
			},
		})
	}

	return l
}

// CenterDistance returns the Euclidean distance from the component's
// centroid to the centre of a width × height image.
func CenterDistance(c Component, width, height int) float64 {
	dx := c.Centroid.X - float64(width)/2
	dy := c.Centroid.Y - float64(height)/2
	return math.Sqrt(dx*dx + dy*dy)
}
