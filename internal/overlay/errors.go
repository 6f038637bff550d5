package overlay

import "errors"

var (
	// ErrInvalidFormat reports an unsupported channel count or bit depth, or a
	// view whose buffer cannot hold the pixels it describes.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrEmptyRegion reports that the watermark placement does not overlap
	// the background at all.
	ErrEmptyRegion = errors.New("empty region")
)
