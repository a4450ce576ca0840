// Package imaging provides the raster primitives used by the icon cleaner.
//
// This package covers everything that touches pixels but knows nothing about
// icons: loading and caching source images, reporting their metadata,
// converting to luminance, fixed-level binarization, colour parsing, trimming
// and encoding the final result by file extension.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive and Max is exclusive, as in image.Rectangle
//
// # Luminance
//
// Grayscale conversion uses ITU-R BT.601 weights (0.299 R + 0.587 G + 0.114 B)
// in 14-bit fixed point on straight, non-premultiplied colour channels. The alpha channel of the
// source never contributes to the luminance value.
//
// # Binary Masks
//
// Masks are *image.Gray values holding only 0 (background) or 255
// (foreground). ThresholdInv marks pixels at or below the level as 255, which
// is the convention for dark line-art on a light background.
//
// # Output Formats
//
// Results carry an alpha channel, so Save refuses formats that cannot store
// one (JPEG, and GIF whose encoder re-quantises to an opaque palette). PNG is
// the expected output; BMP and TIFF are accepted because their encoders keep
// transparency.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless and allocate their own output buffers.
package imaging
