package imaging

import (
	"image"

	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// NRGBAView wraps the pixel buffer of img as a 4-channel overlay view without
// copying. Blending into the view modifies img.
//
// The view's origin is img.Bounds().Min, so sub-images work as expected.
func NRGBAView(img *image.NRGBA) *overlay.Image {
	b := img.Bounds()
	return &overlay.Image{
		Pix:      img.Pix[img.PixOffset(b.Min.X, b.Min.Y):],
		Width:    b.Dx(),
		Height:   b.Dy(),
		Stride:   img.Stride,
		Channels: overlay.ChannelsRGBA,
		Depth:    overlay.Depth8,
	}
}

// RGBView packs the color channels of img into a new 3-channel view.
// The alpha channel is dropped, so this is only lossless for opaque images.
func RGBView(img *image.NRGBA) *overlay.Image {
	b := img.Bounds()
	view := overlay.NewImage(b.Dx(), b.Dy(), overlay.ChannelsRGB)

	for y := 0; y < view.Height; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := view.Pix[view.PixOffset(0, y):]
		for x := 0; x < view.Width; x++ {
			copy(dst[x*3:x*3+3], src[x*4:x*4+3])
		}
	}
	return view
}

// ViewToNRGBA returns an NRGBA image holding the pixels of view.
//
// A 4-channel view shares its buffer with the result. A 3-channel view is
// expanded into a new opaque image.
func ViewToNRGBA(view *overlay.Image) *image.NRGBA {
	rect := image.Rect(0, 0, view.Width, view.Height)
	if view.Channels == overlay.ChannelsRGBA {
		return &image.NRGBA{Pix: view.Pix, Stride: view.Stride, Rect: rect}
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < view.Height; y++ {
		src := view.Pix[view.PixOffset(0, y):]
		dst := img.Pix[img.PixOffset(0, y):]
		for x := 0; x < view.Width; x++ {
			copy(dst[x*4:x*4+3], src[x*3:x*3+3])
			dst[x*4+3] = 0xff
		}
	}
	return img
}
