package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/image-overlay-mcp/internal/cli"
	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var c cli.CLI
	kctx := kong.Parse(&c,
		kong.Name("image-overlay"),
		kong.Description("Alpha-blend watermarks onto images."),
		kong.UsageOnError(),
		kong.Bind(imaging.NewImageCache(), cli.BuildInfo{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		}),
	)
	kctx.FatalIfErrorf(kctx.Run())
}
