package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
)

// BatchCmd blends one watermark onto every image of a folder.
type BatchCmd struct {
	Watermark string    `help:"Watermark image" required:"" type:"path"`
	Scan      string    `help:"Source folder to scan" default:"."`
	Dest      string    `help:"Destination folder. Relative to the scan folder if not absolute." default:"watermarked"`
	Jobs      int       `help:"Images processed concurrently (0 = one per CPU)" default:"0"`
	Placement Placement `embed:""`
}

func (c *BatchCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Watermark, err = absFile("watermark", c.Watermark); err != nil {
		return err
	}

	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}
	if c.Dest == c.Scan {
		return fmt.Errorf("destination must differ from the scan folder")
	}

	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs: %d", c.Jobs)
	}
	return c.Placement.check()
}

func (c *BatchCmd) Run(cache *imaging.ImageCache) error {
	wm, err := cache.Load(c.Watermark)
	if err != nil {
		return err
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	opts := c.Placement.options()
	var processed, failed, written atomic.Uint64

	p := startPool(c.Jobs)
	for _, file := range files {
		if file.IsDir() || !isImageName(file.Name()) {
			continue
		}
		src := filepath.Join(c.Scan, file.Name())
		if src == c.Watermark {
			continue
		}

		p.do(func() {
			logger := slog.Default().With("file", src)

			// Backgrounds are used once; keep them out of the cache.
			bg, err := cache.Load(src)
			cache.Evict(src)
			if err != nil {
				failed.Add(1)
				logger.Error("could not load image", "error", err)
				return
			}

			result, err := imaging.Composite(bg, wm, opts)
			if err != nil {
				failed.Add(1)
				logger.Error("could not overlay watermark", "error", err)
				return
			}

			saved, err := imaging.SaveImage(result, filepath.Join(c.Dest, outputName(file.Name())))
			if err != nil {
				failed.Add(1)
				logger.Error("could not save image", "dir", c.Dest, "error", err)
				return
			}
			processed.Add(1)
			written.Add(uint64(saved.FileSizeBytes))
		})
	}
	p.wait()

	slog.Info("stats", "processed", processed.Load(), "errors", failed.Load(),
		"written", humanize.Bytes(written.Load()))

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("error processing %d files", n)
	}
	return nil
}

// isImageName reports whether name has an extension the loader decodes.
func isImageName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

// outputName keeps the source name unless its format cannot be encoded, in
// which case the result is written as PNG.
func outputName(name string) string {
	ext := filepath.Ext(name)
	if _, err := imaging.ParseFormat(strings.TrimPrefix(ext, ".")); err != nil {
		return strings.TrimSuffix(name, ext) + ".png"
	}
	return name
}
