// Package imaging provides the raster half of the outline-extraction pipeline.
//
// This package implements loading and saving of photographs and the
// preprocessing stages that turn a photograph into a clean binary mask:
// grayscale conversion, region-of-interest cropping, Gaussian blurring,
// fixed and Otsu thresholding, and morphological cleanup. All operations
// work with standard Go image types and use a coordinate system where
// (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Masks
//
// A mask is an *image.Gray whose pixels are either 0 (background) or 255
// (foreground), always with bounds anchored at the origin. Thresholding
// here is inverse-binary: the foreground is the dark region of the source
// image, because open water reads darker than its surroundings in a
// plan-view photograph.
//
// Morphological operations accept and return gonum mat.Dense matrices so
// that repeated passes do not round-trip through image types; use
// MaskToDense and DenseToMask at the boundaries.
//
// # Boundary Handling
//
// Neighborhood operations (erosion, dilation) use clamped (replicated)
// edge values, so a foreground region touching the image border is not
// eaten away from that side.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Region coordinates outside image bounds or inverted (x1 >= x2)
//   - Even or non-positive structuring element sizes
//   - File I/O errors during image loading
//   - Encoding errors during image output
package imaging
