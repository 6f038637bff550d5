// Package overlay blends an RGBA watermark onto an RGB or RGBA background.
//
// The package works on raw 8-bit pixel buffers described by an Image view
// rather than on image.Image values, so callers keep ownership of allocation,
// decoding and encoding. The background is modified in place; the watermark
// is only read.
//
// # Blending
//
// For every background pixel covered by the watermark, the watermark alpha
// byte a is turned into an opacity a/255 and each color channel becomes
//
//	bg*(1-opacity) + wm*opacity
//
// rounded to the nearest integer and clamped to 0-255. Only the color
// channels are written. A 4-channel background keeps its own alpha bytes.
//
// # Clipping
//
// The watermark is placed with its top-left corner at (x, y), which may be
// negative or past the background edge. Only the intersection of the
// placement rectangle with the background bounds is processed. An empty
// intersection is an error.
//
// # Concurrency
//
// The rows of the intersection are split into disjoint contiguous ranges and
// blended concurrently. Overlay returns once every range has finished. The
// result does not depend on how many workers were used.
//
// # Errors
//
// Validation happens before any pixel is written. Failures wrap one of the
// sentinel errors ErrInvalidFormat or ErrEmptyRegion and can be tested with
// errors.Is.
package overlay
