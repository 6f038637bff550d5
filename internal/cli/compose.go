package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
)

// ComposeCmd blends one watermark onto one background and writes the result.
type ComposeCmd struct {
	Background string    `help:"Background image" required:"" type:"path"`
	Watermark  string    `help:"Watermark image; images without transparency are applied fully opaque" required:"" type:"path"`
	Out        string    `help:"Output file; the format follows the extension" required:"" type:"path"`
	Placement  Placement `embed:""`
}

func (c *ComposeCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Background, err = absFile("background", c.Background); err != nil {
		return err
	}
	if c.Watermark, err = absFile("watermark", c.Watermark); err != nil {
		return err
	}
	if err := outputFormatOf(c.Out); err != nil {
		return err
	}
	if c.Out, err = filepath.Abs(c.Out); err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	return c.Placement.check()
}

func (c *ComposeCmd) Run(cache *imaging.ImageCache) error {
	bg, err := cache.Load(c.Background)
	if err != nil {
		return err
	}
	wm, err := cache.Load(c.Watermark)
	if err != nil {
		return err
	}

	result, err := imaging.Composite(bg, wm, c.Placement.options())
	if err != nil {
		return err
	}

	saved, err := imaging.SaveImage(result, c.Out)
	if err != nil {
		return err
	}
	cache.Evict(c.Out)

	slog.Info("composited", "background", c.Background, "watermark", c.Watermark, "out", saved.Path,
		"width", saved.Width, "height", saved.Height, "size", humanize.Bytes(uint64(saved.FileSizeBytes)))
	return nil
}
