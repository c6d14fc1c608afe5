package config

import (
	"fmt"
	"strings"
)

var supportedFrameRates = []float64{23.976, 24, 25, 29.97, 30, 50, 59.94, 60}

// Validate checks the configuration for values the tool cannot operate with.
func (c *Config) Validate() error {
	if c.Export.FrameRate <= 0 {
		return fmt.Errorf("export.frame_rate must be positive, got %v", c.Export.FrameRate)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return fmt.Errorf("paths.data_dir must not be empty")
	}
	return nil
}

// SupportedFrameRate reports whether rate has an exact rational table entry.
// Other rates still export, falling back to 23.976-style timing.
func SupportedFrameRate(rate float64) bool {
	for _, supported := range supportedFrameRates {
		if rate == supported {
			return true
		}
	}
	return false
}
