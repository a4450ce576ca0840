package extract

import (
	"fmt"
	"io"

	"github.com/ironsheep/icon-cleaner/internal/segment"
)

// ComponentReport is one row of the classification table.
type ComponentReport struct {
	Label          int           `json:"label"`
	Area           int           `json:"area"`
	BBox           segment.Box   `json:"bbox"`
	Centroid       segment.Point `json:"centroid"`
	Coverage       float64       `json:"bbox_coverage"`
	CenterDistance float64       `json:"center_distance"`
	Class          segment.Class `json:"class"`
}

// Report summarises an extraction.
type Report struct {
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	Threshold uint8 `json:"threshold"`
	Mode      Mode  `json:"mode"`

	// Components is empty in ModeThreshold.
	Components []ComponentReport `json:"components"`

	// Counts per class.
	Foreground int `json:"foreground"`
	Frames     int `json:"frames"`
	Noise      int `json:"noise"`

	// ForegroundPixels is the number of opaque pixels in the result.
	ForegroundPixels int `json:"foreground_pixels"`

	// Blank is true when nothing was kept; the result is fully transparent.
	Blank bool `json:"blank"`
}

func (r *Report) add(row ComponentReport) {
	r.Components = append(r.Components, row)
	switch row.Class {
	case segment.Foreground:
		r.Foreground++
	case segment.Frame:
		r.Frames++
	case segment.Noise:
		r.Noise++
	}
}

// WriteTable prints one line per component followed by a summary line.
func (r *Report) WriteTable(w io.Writer) error {
	for _, c := range r.Components {
		_, err := fmt.Fprintf(w, "Label %d: Area=%d, BBox=%dx%d@(%d,%d), BBoxCover=%.2f, Dist=%.1f, %s\n",
			c.Label, c.Area, c.BBox.Width, c.BBox.Height, c.BBox.X, c.BBox.Y,
			c.Coverage, c.CenterDistance, c.Class)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%dx%d threshold=%d mode=%s: %d kept, %d frame, %d noise, %d pixels\n",
		r.Width, r.Height, r.Threshold, r.Mode, r.Foreground, r.Frames, r.Noise, r.ForegroundPixels)
	return err
}
