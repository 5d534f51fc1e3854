package cli

import (
	"os"

	"github.com/rileyhilliard/mqttdash/internal/config"
	"github.com/rileyhilliard/mqttdash/internal/dashboard"
	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/logger"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// sampleSource labels the built-in data set in headers.
const sampleSource = "built-in sample data"

// loadSettings finds the config, applies global flag overrides and validates
// the result.
func loadSettings() (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if dataFlag != "" {
		cfg.Data.File = config.ExpandTilde(dataFlag)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newProvider returns the series source named by cfg.
func newProvider(cfg *config.Config, log logger.Logger) metrics.Provider {
	if cfg.Data.File == "" {
		return metrics.NewStaticProvider()
	}
	return metrics.NewFileProvider(cfg.Data.File, log)
}

// sourceLabel describes where series come from.
func sourceLabel(cfg *config.Config) string {
	if cfg.Data.File == "" {
		return sampleSource
	}
	return cfg.Data.File
}

// dashboardOptions maps config onto dashboard options.
func dashboardOptions(cfg *config.Config) dashboard.Options {
	return dashboard.Options{
		Title:       cfg.Title,
		Breakpoint:  cfg.Layout.Breakpoint,
		PanelHeight: cfg.Layout.PanelHeight,
		Source:      sourceLabel(cfg),
	}
}

// setupLogging picks the logger for this run. A log file from the
// environment wins over config. Interactive runs without a file stay silent
// so log lines never land on the dashboard.
func setupLogging(cfg *config.Config, interactive bool) (logger.Logger, func() error, error) {
	path := cfg.Log.File
	if env := os.Getenv(logger.EnvLogFile); env != "" {
		path = config.ExpandTilde(env)
	}
	debug := cfg.Log.Debug || os.Getenv(logger.EnvDebug) != ""

	noClose := func() error { return nil }

	if path == "" {
		l := logger.NewEnvLogger("[mqttdash]")
		if interactive {
			l = logger.Noop()
		}
		logger.SetDefault(l)
		return l, noClose, nil
	}

	l, closeFn, err := logger.NewFileLogger(path, debug)
	if err != nil {
		return nil, noClose, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+path,
			"Check the directory exists and is writable, or unset log.file")
	}
	logger.SetDefault(l)
	return l, closeFn, nil
}
