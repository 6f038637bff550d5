// Package cli implements the image-overlay command line: one-shot and
// folder-wide watermark compositing driven by kong.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
)

// CLI is the kong grammar of the image-overlay binary.
type CLI struct {
	Compose ComposeCmd `cmd:"" help:"Blend a watermark onto one background image"`
	Batch   BatchCmd   `cmd:"" help:"Blend a watermark onto every image in a folder"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// BuildInfo carries the version values injected into main at link time.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Placement holds the flags shared by the compositing commands.
type Placement struct {
	X       int     `help:"Watermark left edge in background pixels (may be negative)" default:"0"`
	Y       int     `help:"Watermark top edge in background pixels (may be negative)" default:"0"`
	Anchor  string  `help:"Named placement used instead of --x/--y (top-left, top, top-right, left, center, right, bottom-left, bottom, bottom-right)"`
	Margin  int     `help:"Distance from the edges for anchored placement" default:"0"`
	Scale   float64 `help:"Watermark scale factor" default:"1"`
	Opacity float64 `help:"Multiplier for the watermark alpha, in (0,1]" default:"1"`
	Workers int     `help:"Rows blended concurrently (0 = automatic)" default:"0" env:"IMAGE_OVERLAY_WORKERS"`
}

func (p *Placement) check() error {
	if p.Anchor != "" {
		if !slices.Contains(imaging.Anchors, p.Anchor) {
			return fmt.Errorf("unknown anchor %q, want one of %s", p.Anchor, strings.Join(imaging.Anchors, ", "))
		}
		if p.X != 0 || p.Y != 0 {
			return fmt.Errorf("--x/--y cannot be combined with --anchor")
		}
	}
	if p.Margin < 0 {
		return fmt.Errorf("invalid margin: %d", p.Margin)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("invalid scale: %g", p.Scale)
	}
	if p.Opacity <= 0 || p.Opacity > 1 {
		return fmt.Errorf("invalid opacity %g: must be in (0,1]", p.Opacity)
	}
	if p.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", p.Workers)
	}
	return nil
}

func (p *Placement) options() imaging.CompositeOptions {
	return imaging.CompositeOptions{
		X:       p.X,
		Y:       p.Y,
		Anchor:  p.Anchor,
		Margin:  p.Margin,
		Scale:   p.Scale,
		Opacity: p.Opacity,
		Workers: p.Workers,
	}
}

// VersionCmd prints the build information.
type VersionCmd struct{}

func (c *VersionCmd) Run(kctx *kong.Context, info BuildInfo) error {
	fmt.Fprintf(kctx.Stdout, "image-overlay %s\n", info.Version)
	fmt.Fprintf(kctx.Stdout, "  Build time: %s\n", info.BuildTime)
	fmt.Fprintf(kctx.Stdout, "  Git commit: %s\n", info.GitCommit)
	return nil
}

// absFile resolves path and checks that it names a regular file.
func absFile(flag, path string) (string, error) {
	abs, err := filepath.Abs(path)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(abs); err == nil && !info.Mode().IsRegular() {
			err = fmt.Errorf("not a regular file")
		}
	}
	if err != nil {
		return "", fmt.Errorf("invalid %s path %q: %w", flag, path, err)
	}
	return abs, nil
}

// outputFormatOf checks that path ends in an extension images can be written as.
func outputFormatOf(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("output %q has no file extension", path)
	}
	_, err := imaging.ParseFormat(ext)
	return err
}
