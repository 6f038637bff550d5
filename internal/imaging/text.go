package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textPadding is the transparent border kept around rendered text, in font pixels.
const textPadding = 2

// TextWatermark renders text onto a transparent layer using the 7x13 basic
// font. Each font pixel becomes a scale x scale block. Glyph pixels take the
// color c, including its alpha; everything else is fully transparent.
func TextWatermark(text string, c color.NRGBA, scale int) (*image.NRGBA, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty watermark text")
	}
	if strings.ContainsAny(text, "\r\n") {
		return nil, fmt.Errorf("watermark text must be a single line")
	}
	if scale < 1 {
		return nil, fmt.Errorf("invalid text scale %d", scale)
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil() + 2*textPadding
	height := metrics.Height.Ceil() + 2*textPadding

	layer := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(textPadding), Y: fixed.I(textPadding) + metrics.Ascent},
	}
	d.DrawString(text)

	if scale == 1 {
		return layer, nil
	}
	return imaging.Resize(layer, width*scale, height*scale, imaging.NearestNeighbor), nil
}
