package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	dataFlag    string
	noColorFlag bool
)

// rootCmd opens the dashboard when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "mqttdash",
	Short: "Terminal dashboard for MQTT broker metrics",
	Long: `mqttdash charts MQTT broker health in the terminal.

Four panels show clients connected, topic subscriptions, MQTT sessions and
messages in/out over time. Each panel loads independently, so one bad series
never blanks the rest of the dashboard.

Examples:
  mqttdash
  mqttdash --data ./metrics.yaml --watch
  mqttdash snapshot --width 140
  mqttdash series messagesInOut`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(watchFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .mqttdash.yaml, searched upward)")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "sample data file (overrides data.file)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload when the data file changes")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !machineMode {
			printError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// printError writes err in the structured three-part format. Plain errors
// (cobra flag parsing, for instance) get the same failure glyph.
func printError(w io.Writer, err error) {
	if dashErr, ok := errors.As(err); ok {
		fmt.Fprint(w, dashErr.Error())
		return
	}
	fmt.Fprintln(w, ui.ErrorStyle().Render(ui.SymbolFail+" "+err.Error()))
}
