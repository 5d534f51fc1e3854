package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/mqttdash/internal/dashboard"
	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 120

var snapshotWidthFlag int

// snapshotCmd prints the dashboard once without taking over the terminal.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the dashboard once and exit",
	Long: `Load every panel once and print the dashboard to stdout.

Useful for scripts, CI logs and terminals without alternate screen support.
The width defaults to the terminal width, or 120 columns when stdout is not
a terminal. Panels lay out in two columns from layout.breakpoint upward.

Examples:
  mqttdash snapshot
  mqttdash snapshot --width 80
  mqttdash snapshot --data ./metrics.yaml > dashboard.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd.OutOrStdout(), snapshotWidthFlag)
	},
}

func init() {
	snapshotCmd.Flags().IntVar(&snapshotWidthFlag, "width", 0, "render width in columns (default: terminal width)")
	rootCmd.AddCommand(snapshotCmd)
}

// snapshotCommand renders the static dashboard to w.
func snapshotCommand(w io.Writer, width int) error {
	if width < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--width %d is negative", width),
			"Pass a positive column count, or omit --width")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	log, closeLog, err := setupLogging(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if width == 0 {
		width = terminalWidth()
	}

	_, err = fmt.Fprint(w, dashboard.RenderStatic(newProvider(cfg, log), dashboardOptions(cfg), width))
	return err
}

// terminalWidth returns stdout's width, or fallbackWidth.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
