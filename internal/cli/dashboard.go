package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/mqttdash/internal/dashboard"
	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
	"github.com/spf13/cobra"
)

// watchFlag enables reloading on data file changes.
var watchFlag bool

// dashboardCmd is the explicit form of running mqttdash with no subcommand.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard in the alternate screen.

Keyboard shortcuts:
  q / Ctrl+C    Quit
  r             Reload all panels
  Tab / up / down  Select panel
  left / right  Move the time cursor
  Home / End    First / last point
  Esc           Clear the cursor
  PgUp / PgDn   Scroll
  ?             Show help

Examples:
  mqttdash dashboard
  mqttdash dashboard --data ./metrics.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(watchFlag)
	},
}

func init() {
	dashboardCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload when the data file changes")
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardCommand starts the interactive dashboard.
func dashboardCommand(watch bool) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if watch {
		cfg.Data.Watch = true
		if cfg.Data.File == "" {
			return errors.New(errors.ErrConfig,
				"--watch needs a data file",
				"Pass --data <file> or set data.file in .mqttdash.yaml")
		}
	}

	log, closeLog, err := setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	provider := newProvider(cfg, log)

	var changes <-chan struct{}
	if cfg.Data.Watch {
		w, err := metrics.NewWatcher(cfg.Data.File, log)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrData,
				"Can't watch "+cfg.Data.File,
				"Check the file's directory exists, or run without --watch")
		}
		defer w.Close()
		changes = w.Changes()
		log.Info("watching %s for changes", cfg.Data.File)
	}

	model := dashboard.NewModel(provider, dashboardOptions(cfg), log, changes)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Dashboard exited unexpectedly",
			"Set MQTTDASH_LOG_FILE to capture diagnostics and try again")
	}
	return nil
}
