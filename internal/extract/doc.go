// Package extract turns dark line-art icons into transparent white artwork
// for documentation.
//
// The pipeline is a single synchronous pass:
//
//  1. Decode the source (alpha is kept but never used for segmentation)
//  2. BT.601 luminance
//  3. Inverted fixed-level threshold: at or below Config.Threshold is content
//  4. 8-connected component labeling
//  5. Classification: small components are noise, components whose bounding
//     box covers more than Config.FrameCoverage of the image are the frame,
//     the rest is kept
//  6. Compose: every pixel gets the foreground colour, alpha is the kept mask
//  7. Encode by output file extension
//
// ModeThreshold skips steps 4 and 5 and keeps every content pixel.
//
// # Presets
//
// Hands reproduces the hand-point/hand-pinch assets (threshold 200, output
// next to the input with a "_clean" suffix). Wave targets the darker wave
// asset (threshold 100). Both share the default noise floor and coverage
// limit and can be adjusted per asset through Config or the environment.
//
// # Failure Semantics
//
// A source that cannot be decoded, or a mask with no components at all,
// returns an error and writes nothing. When every component is filtered out
// the blank, fully transparent result is still written and Report.Blank is
// set; this is logged as a warning rather than treated as a failure.
package extract
