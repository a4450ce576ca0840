// Package segment labels connected regions of a binary mask and classifies
// them as icon artwork, enclosing frame, or noise.
//
// # Labeling
//
// Label partitions the non-zero pixels of a mask into 8-connected
// components. Labels are assigned in raster order of each component's first
// pixel, starting at 1; label 0 is the background. Each component carries its
// axis-aligned bounding box, pixel area, and centroid.
//
// # Classification
//
// A Classifier applies two fixed rules in order:
//
//  1. Area below NoiseFloor -> Noise
//  2. Bounding-box coverage (box area / image area) above FrameCoverage -> Frame
//
// Everything else is Foreground. Coverage exactly equal to FrameCoverage is
// Foreground.
//
// # Limitations
//
// Coverage is the only frame discriminator. A pose whose bounding box spans
// more than FrameCoverage of the image is dropped as a frame, and a frame that
// touches the artwork merges with it into one component and is kept.
package segment
