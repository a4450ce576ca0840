package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrNoAlpha is returned for output formats that cannot store transparency.
var ErrNoAlpha = errors.New("output format cannot store an alpha channel")

// CheckOutputFormat validates that path names a format able to hold the
// 4-channel result. It is cheap and meant to run before any pixel work.
func CheckOutputFormat(path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}
	switch format {
	case imaging.PNG, imaging.TIFF, imaging.BMP:
		return nil
	default:
		return fmt.Errorf("%s: %w", format, ErrNoAlpha)
	}
}

// Save encodes img to path using the encoder named by the file extension.
func Save(img image.Image, path string) error {
	if err := CheckOutputFormat(path); err != nil {
		return err
	}
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DerivedOutputPath inserts suffix between the base name and the extension:
//
//	DerivedOutputPath("docs/hand-point.png", "_clean") == "docs/hand-point_clean.png"
//
// A path without an extension gets ".png" appended after the suffix.
func DerivedOutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + suffix + ".png"
	}
	return strings.TrimSuffix(path, ext) + suffix + ext
}
