package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// GridOverlayResult contains the image with grid overlay
type GridOverlayResult struct {
	ImageResult
	GridSpacing int `json:"grid_spacing"`
}

// GridOverlay blends a coordinate grid onto a copy of img.
//
// The grid is drawn into a transparent layer the size of the image and then
// composited like any other watermark, so the alpha of gridColorHex controls
// how strongly the lines show. An unparsable color falls back to
// semi-transparent red.
func GridOverlay(img image.Image, gridSpacing int, showCoordinates bool, gridColorHex string) (*GridOverlayResult, error) {
	if gridSpacing <= 0 {
		return nil, fmt.Errorf("invalid grid spacing %d", gridSpacing)
	}

	gridColor, err := ParseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.NRGBA{255, 0, 0, 128}
	}

	bounds := img.Bounds()
	layer := gridLayer(bounds.Dx(), bounds.Dy(), gridSpacing, showCoordinates, gridColor)

	result, err := Composite(img, layer, CompositeOptions{})
	if err != nil {
		return nil, err
	}

	encoded, err := EncodeResult(result, imaging.PNG)
	if err != nil {
		return nil, err
	}
	return &GridOverlayResult{ImageResult: *encoded, GridSpacing: gridSpacing}, nil
}

// gridLayer renders grid lines and optional coordinate labels onto a fully
// transparent width x height layer.
func gridLayer(width, height, spacing int, showCoordinates bool, lineColor color.NRGBA) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, width, height))

	for x := spacing; x < width; x += spacing {
		for y := 0; y < height; y++ {
			layer.SetNRGBA(x, y, lineColor)
		}
	}
	for y := spacing; y < height; y += spacing {
		for x := 0; x < width; x++ {
			layer.SetNRGBA(x, y, lineColor)
		}
	}

	if showCoordinates {
		labelColor := color.NRGBA{255, 255, 255, 255}
		bgColor := color.NRGBA{0, 0, 0, 180}

		for y := spacing; y < height; y += spacing {
			for x := spacing; x < width; x += spacing {
				drawLabel(layer, x+2, y+2, fmt.Sprintf("%d,%d", x, y), labelColor, bgColor)
			}
		}
	}

	return layer
}

// drawLabel draws text with a 3x5 pixel font for digits and commas.
// Pixels outside img are skipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	const charWidth, labelHeight = 4, 7
	labelWidth := len(text) * charWidth

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setInside(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel == '1' {
						setInside(img, cx+col, y+row, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}

func setInside(img *image.NRGBA, x, y int, c color.NRGBA) {
	if (image.Point{x, y}).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}
