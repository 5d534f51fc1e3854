package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/mqttdash/internal/errors"
)

// Limits for layout values.
const (
	MinBreakpoint  = 40
	MaxBreakpoint  = 1000
	MinPanelHeight = 6
	MaxPanelHeight = 60
	MaxTitleLength = 80
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but mqttdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade mqttdash or lower the version field")
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		return errors.New(errors.ErrConfig,
			"Title can't be empty",
			"Set 'title' or remove it to use \""+DefaultTitle+"\"")
	}
	if len(title) > MaxTitleLength {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Title is %d characters, the limit is %d", len(title), MaxTitleLength),
			"Shorten 'title'")
	}

	if b := cfg.Layout.Breakpoint; b < MinBreakpoint || b > MaxBreakpoint {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("layout.breakpoint %d is out of range", b),
			fmt.Sprintf("Use a width between %d and %d columns", MinBreakpoint, MaxBreakpoint))
	}

	if h := cfg.Layout.PanelHeight; h < MinPanelHeight || h > MaxPanelHeight {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("layout.panel_height %d is out of range", h),
			fmt.Sprintf("Use a height between %d and %d rows", MinPanelHeight, MaxPanelHeight))
	}

	if cfg.Data.Watch && cfg.Data.File == "" {
		return errors.New(errors.ErrConfig,
			"data.watch is set but there is no data.file to watch",
			"Set data.file to a sample data file, or turn off data.watch")
	}

	return nil
}
