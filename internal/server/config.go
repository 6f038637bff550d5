package server

import (
	"fmt"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel = "IMAGE_OVERLAY_LOG_LEVEL"
	EnvWorkers  = "IMAGE_OVERLAY_WORKERS"
)

// Config holds process-wide server settings.
type Config struct {
	// Debug enables per-request logging to stderr.
	Debug bool

	// Workers is the number of row ranges each overlay blends concurrently.
	// 0 lets the runtime decide from GOMAXPROCS.
	Workers int
}

// ConfigFromEnv builds a Config from environment variables looked up with
// getenv (usually os.Getenv).
//
//   - IMAGE_OVERLAY_LOG_LEVEL=debug enables debug logging
//   - IMAGE_OVERLAY_WORKERS=N sets the blend worker count (N >= 0)
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Debug: getenv(EnvLogLevel) == "debug",
	}

	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: want a non-negative integer", EnvWorkers, v)
		}
		cfg.Workers = n
	}

	return cfg, nil
}
