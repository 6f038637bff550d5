package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// Anchors lists the named watermark placements accepted by Anchor.
var Anchors = []string{
	"top-left", "top", "top-right",
	"left", "center", "right",
	"bottom-left", "bottom", "bottom-right",
}

// CompositeOptions controls how a watermark is placed and blended.
type CompositeOptions struct {
	// X and Y place the watermark's top-left corner when Anchor is empty.
	// They may be negative or beyond the background edge; only the
	// overlapping part is blended.
	X, Y int

	// Anchor selects a named placement instead of X/Y (see Anchors).
	Anchor string

	// Margin is the distance in pixels kept between an anchored watermark
	// and the background edges it is aligned to.
	Margin int

	// Scale resizes the watermark before blending. 0 and 1 keep its size.
	Scale float64

	// Opacity multiplies the watermark alpha channel. Values lie in [0, 1];
	// 0 is treated as 1 so the zero value applies the watermark unchanged.
	Opacity float64

	// Workers is the number of row ranges blended concurrently. 0 lets the
	// runtime decide.
	Workers int
}

// Composite blends wm onto a copy of bg and returns the result.
//
// Neither input is modified. Fully opaque backgrounds are blended as 3-channel
// RGB buffers; backgrounds with transparency are blended as 4-channel buffers
// whose alpha channel is kept as it was.
//
// Errors from the blend itself wrap overlay.ErrInvalidFormat or
// overlay.ErrEmptyRegion.
func Composite(bg, wm image.Image, opts CompositeOptions) (*image.NRGBA, error) {
	if opts.Opacity < 0 || opts.Opacity > 1 {
		return nil, fmt.Errorf("opacity %.3f outside [0,1]", opts.Opacity)
	}
	if opts.Scale < 0 {
		return nil, fmt.Errorf("invalid scale %.3f: must not be negative", opts.Scale)
	}

	mark := imaging.Clone(wm)
	if opts.Scale != 1.0 && opts.Scale > 0 {
		newWidth := int(float64(mark.Bounds().Dx()) * opts.Scale)
		newHeight := int(float64(mark.Bounds().Dy()) * opts.Scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f shrinks watermark to nothing", opts.Scale)
		}
		mark = imaging.Resize(mark, newWidth, newHeight, imaging.Lanczos)
	}
	if opts.Opacity > 0 && opts.Opacity < 1 {
		fadeAlpha(mark, opts.Opacity)
	}

	dst := imaging.Clone(bg)

	x, y := opts.X, opts.Y
	if opts.Anchor != "" {
		var err error
		x, y, err = Anchor(dst.Bounds().Dx(), dst.Bounds().Dy(), mark.Bounds().Dx(), mark.Bounds().Dy(),
			opts.Anchor, opts.Margin)
		if err != nil {
			return nil, err
		}
	}

	comp := overlay.Compositor{Workers: opts.Workers}

	if dst.Opaque() {
		view := RGBView(dst)
		if err := comp.Overlay(view, NRGBAView(mark), x, y); err != nil {
			return nil, fmt.Errorf("failed to overlay watermark: %w", err)
		}
		return ViewToNRGBA(view), nil
	}

	if err := comp.Overlay(NRGBAView(dst), NRGBAView(mark), x, y); err != nil {
		return nil, fmt.Errorf("failed to overlay watermark: %w", err)
	}
	return dst, nil
}

// Anchor computes the top-left offset of a wmW x wmH watermark placed at a
// named position on a bgW x bgH background.
//
// Centered axes ignore margin. A watermark larger than the background yields
// negative offsets, which the compositor clips.
func Anchor(bgW, bgH, wmW, wmH int, anchor string, margin int) (int, int, error) {
	left := margin
	right := bgW - wmW - margin
	top := margin
	bottom := bgH - wmH - margin
	midX := (bgW - wmW) / 2
	midY := (bgH - wmH) / 2

	switch anchor {
	case "top-left":
		return left, top, nil
	case "top":
		return midX, top, nil
	case "top-right":
		return right, top, nil
	case "left":
		return left, midY, nil
	case "center":
		return midX, midY, nil
	case "right":
		return right, midY, nil
	case "bottom-left":
		return left, bottom, nil
	case "bottom":
		return midX, bottom, nil
	case "bottom-right":
		return right, bottom, nil
	default:
		return 0, 0, fmt.Errorf("unknown anchor: %s", anchor)
	}
}

// fadeAlpha multiplies every alpha byte of img by opacity.
func fadeAlpha(img *image.NRGBA, opacity float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			i := x*4 + overlay.AlphaIndex
			row[i] = uint8(math.Round(float64(row[i]) * opacity))
		}
	}
}
