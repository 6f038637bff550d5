package overlay

import (
	"fmt"
	"image"
	"math"
)

const (
	// ChannelsRGB is the channel count of a background without alpha.
	ChannelsRGB = 3

	// ChannelsRGBA is the channel count of a watermark, or of a background
	// carrying its own alpha.
	ChannelsRGBA = 4

	// AlphaIndex is the offset of the alpha byte within a 4-channel pixel.
	AlphaIndex = 3

	// Depth8 is the only supported bit depth per channel.
	Depth8 = 8
)

// Image is a view over an externally owned, row-major pixel buffer.
//
// Pixel (x, y) channel c lives at Pix[y*Stride + x*Channels + c]. Stride may
// be larger than Width*Channels when rows are padded.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Stride   int // bytes between the starts of consecutive rows
	Channels int // 3 (RGB) or 4 (RGBA)
	Depth    int // bits per channel
}

// NewImage allocates a zeroed 8-bit image with tightly packed rows.
func NewImage(width, height, channels int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * channels
	return &Image{
		Pix:      make([]byte, stride*height),
		Width:    width,
		Height:   height,
		Stride:   stride,
		Channels: channels,
		Depth:    Depth8,
	}
}

// Bounds returns the image rectangle with its origin at (0, 0).
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (m *Image) PixOffset(x, y int) int {
	return y*m.Stride + x*m.Channels
}

// is8Bit reports whether the view has the given channel count at 8 bits.
func (m *Image) is8Bit(channels int) bool {
	return m != nil && m.Channels == channels && m.Depth == Depth8
}

// checkGeometry verifies that the buffer can hold every pixel the view
// describes.
func (m *Image) checkGeometry(role string) error {
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("%w: %s has negative dimensions %dx%d", ErrInvalidFormat, role, m.Width, m.Height)
	}
	if m.Width > math.MaxInt/m.Channels {
		return fmt.Errorf("%w: %s width %d too large", ErrInvalidFormat, role, m.Width)
	}
	row := m.Width * m.Channels
	if m.Stride < row {
		return fmt.Errorf("%w: %s stride %d shorter than row of %d bytes",
			ErrInvalidFormat, role, m.Stride, row)
	}
	if m.Width == 0 || m.Height == 0 {
		return nil
	}
	if m.Height-1 > (math.MaxInt-row)/m.Stride {
		return fmt.Errorf("%w: %s of %d rows with stride %d too large", ErrInvalidFormat, role, m.Height, m.Stride)
	}
	need := (m.Height-1)*m.Stride + row
	if len(m.Pix) < need {
		return fmt.Errorf("%w: %s buffer holds %d bytes, need %d", ErrInvalidFormat, role, len(m.Pix), need)
	}
	return nil
}
