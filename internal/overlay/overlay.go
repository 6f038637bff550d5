package overlay

import (
	"fmt"
	"image"
	"math"
)

// Compositor blends watermarks onto backgrounds using a fixed number of
// row workers.
//
// The zero value splits the work into one range per available CPU.
type Compositor struct {
	// Workers is the number of row ranges blended concurrently. Values below
	// 1 let the runtime pick based on GOMAXPROCS.
	Workers int
}

// Overlay blends watermark onto background with the watermark's top-left
// corner at (x, y), using the default Compositor.
func Overlay(background, watermark *Image, x, y int) error {
	return Compositor{}.Overlay(background, watermark, x, y)
}

// Overlay blends watermark onto background with the watermark's top-left
// corner at (x, y).
//
// Parameters:
//   - background: 3 or 4 channel 8-bit view, modified in place.
//   - watermark: 4 channel 8-bit view, read only. Its fourth channel is the
//     per-pixel alpha.
//   - x, y: placement offset in background pixels. May be negative.
//
// Returns an error wrapping ErrInvalidFormat or ErrEmptyRegion when the
// inputs are rejected. In that case the background is left untouched.
func (c Compositor) Overlay(background, watermark *Image, x, y int) error {
	target, err := blendRegion(background, watermark, x, y)
	if err != nil {
		return err
	}

	c.dispatch(target.Dy(), func(start, end int) {
		blendRows(background, watermark, target, x, y, target.Min.Y+start, target.Min.Y+end)
	})
	return nil
}

// blendRegion validates both views and returns the part of the background
// covered by the watermark.
func blendRegion(background, watermark *Image, x, y int) (image.Rectangle, error) {
	if !background.is8Bit(ChannelsRGB) && !background.is8Bit(ChannelsRGBA) {
		return image.Rectangle{}, fmt.Errorf("%w: background must be 3 or 4 channel 8-bit", ErrInvalidFormat)
	}
	if !watermark.is8Bit(ChannelsRGBA) {
		return image.Rectangle{}, fmt.Errorf("%w: watermark must be 4-channel 8-bit", ErrInvalidFormat)
	}
	if err := background.checkGeometry("background"); err != nil {
		return image.Rectangle{}, err
	}
	if err := watermark.checkGeometry("watermark"); err != nil {
		return image.Rectangle{}, err
	}

	// Reject disjoint placements before forming x+Width, which can overflow
	// for offsets near the int limits.
	if x >= background.Width || y >= background.Height || x <= -watermark.Width || y <= -watermark.Height {
		return image.Rectangle{}, fmt.Errorf("%w: resulting blend region is empty", ErrEmptyRegion)
	}

	placement := image.Rect(x, y, x+watermark.Width, y+watermark.Height)
	target := background.Bounds().Intersect(placement)
	if target.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: resulting blend region is empty", ErrEmptyRegion)
	}
	return target, nil
}

// blendRows blends background rows [start, end) of target. The watermark
// pixel for background (px, py) is (px-x, py-y).
func blendRows(background, watermark *Image, target image.Rectangle, x, y, start, end int) {
	bg, wm := background.Pix, watermark.Pix

	for py := start; py < end; py++ {
		bi := background.PixOffset(target.Min.X, py)
		wi := watermark.PixOffset(target.Min.X-x, py-y)

		for px := target.Min.X; px < target.Max.X; px++ {
			opacity := float64(wm[wi+AlphaIndex]) / 255.0

			// Color channels only; a background alpha byte is left as is.
			for c := 0; c < ChannelsRGB; c++ {
				v := float64(bg[bi+c])*(1.0-opacity) + float64(wm[wi+c])*opacity
				bg[bi+c] = saturate(v)
			}

			bi += background.Channels
			wi += ChannelsRGBA
		}
	}
}

// saturate rounds v to the nearest integer, ties to even, and clamps it to
// the 8-bit range.
func saturate(v float64) uint8 {
	r := math.RoundToEven(v)
	if r <= 0 {
		return 0
	}
	if r >= 255 {
		return 255
	}
	return uint8(r)
}
