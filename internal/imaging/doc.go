// Package imaging connects decoded Go images and image files to the overlay
// compositor.
//
// The overlay package only understands raw 8-bit pixel buffers. This package
// loads and caches images from disk, converts them to overlay views, places
// and scales watermarks, and encodes the blended result for the server and
// the command-line tool.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Watermark offsets may be
// negative or lie past the background edge; only the overlapping part is
// blended.
//
// # Buffers
//
// Every image is normalized to *image.NRGBA (non-premultiplied RGBA) with
// github.com/disintegration/imaging before blending. Opaque backgrounds are
// packed into 3-channel views, others are blended in place as 4-channel views
// whose alpha bytes are kept. Inputs are never modified: Composite always
// works on copies, and cached images are shared read-only.
//
// # Generated Watermarks
//
// Besides image files, watermarks can be a solid color block
// (SolidWatermark), a line of text in the 7x13 basic font (TextWatermark) or
// a coordinate grid (GridOverlay). All of them are ordinary NRGBA layers that
// go through the same compositor.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless.
package imaging
