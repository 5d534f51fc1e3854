package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/mqttdash/internal/chart"
	"github.com/rileyhilliard/mqttdash/internal/config"
	"github.com/rileyhilliard/mqttdash/internal/dashboard"
	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
	"github.com/rileyhilliard/mqttdash/internal/ui"
	"github.com/rileyhilliard/mqttdash/internal/util"
	"github.com/spf13/cobra"
)

var (
	seriesChartFlag bool
	seriesWidthFlag int
)

// seriesCmd prints one metric's series, or lists the metrics.
var seriesCmd = &cobra.Command{
	Use:   "series [metric]",
	Short: "List metrics, or print one metric's series",
	Long: `Without an argument, list every metric with its chart kind and point
count. With a metric name, print its points as a table together with a
sparkline and peak per field.

Metric names are case-insensitive: clientsConnected, topicSubscriptions,
mqttSessions, messagesInOut.

Examples:
  mqttdash series
  mqttdash series messagesInOut
  mqttdash series mqttSessions --chart
  mqttdash series clientsConnected --json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: metricNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			return listSeriesCommand(out)
		}
		err := seriesCommand(out, args[0], seriesChartFlag, seriesWidthFlag)
		if err != nil && machineMode {
			_ = WriteJSONFromError(out, err)
		}
		return err
	},
}

func init() {
	seriesCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")
	seriesCmd.Flags().BoolVar(&seriesChartFlag, "chart", false, "draw the panel chart above the table")
	seriesCmd.Flags().IntVar(&seriesWidthFlag, "width", 0, "chart width in columns (default: terminal width)")
	rootCmd.AddCommand(seriesCmd)
}

// metricNames returns every metric identifier for completion.
func metricNames() []string {
	ids := metrics.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}

// SeriesListing is the JSON shape of one row of `series` without arguments.
type SeriesListing struct {
	ID     metrics.MetricID  `json:"id"`
	Name   string            `json:"name"`
	Kind   metrics.ChartKind `json:"chartKind"`
	Points int               `json:"points"`
	Error  string            `json:"error,omitempty"`
}

// listSeriesCommand prints the catalog with point counts from the provider.
func listSeriesCommand(w io.Writer) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogging(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	provider := newProvider(cfg, log)

	listing := make([]SeriesListing, 0, len(metrics.Catalog))
	for _, def := range metrics.Catalog {
		row := SeriesListing{ID: def.ID, Name: def.Name, Kind: def.Kind}
		if s, err := provider.Series(def.ID); err != nil {
			row.Error = ui.SymbolFail + " " + errors.Summary(err)
		} else {
			row.Points = s.Len()
		}
		listing = append(listing, row)
	}

	if machineMode {
		return WriteJSONSuccess(w, listing)
	}

	rows := make([][]string, len(listing))
	for i, l := range listing {
		points := fmt.Sprintf("%d %s", l.Points, util.Pluralize(l.Points, "point", "points"))
		if l.Error != "" {
			points = l.Error
		}
		rows[i] = []string{l.ID.String(), l.Name, string(l.Kind), points}
	}

	fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{Version: formatVersion(version), Title: cfg.Title, Source: sourceLabel(cfg)}))
	fmt.Fprintln(w, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "Metric", Width: 20},
		{Title: "Name", Width: 21},
		{Title: "Chart", Width: 12},
		{Title: "Points", Width: 40},
	}, rows))
	return nil
}

// seriesCommand prints one series.
func seriesCommand(w io.Writer, name string, withChart bool, width int) error {
	id, err := metrics.ParseMetricID(name)
	if err != nil {
		return err
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

	s, err := newProvider(cfg, log).Series(id)
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, s)
	}

	fmt.Fprint(w, renderSeries(cfg, s, withChart, width))
	return nil
}

// renderSeries formats a series for people.
func renderSeries(cfg *config.Config, s metrics.MetricSeries, withChart bool, width int) string {
	enc := chart.DefaultEncodings(s.ID)

	out := ui.RenderHeader(ui.HeaderInfo{Version: formatVersion(version), Title: s.Name, Source: sourceLabel(cfg)})
	out += ui.MutedStyle().Render(dashboard.Description(s.ID)) + "\n\n"

	if withChart {
		if width <= 0 {
			width = terminalWidth()
		}
		out += chart.New(s.ID, cfg.Layout.PanelHeight).Render(s, width, -1) + "\n\n"
	}

	out += ui.RenderSeriesSummary(s, enc) + "\n"
	out += ui.RenderSeriesTable(s, enc) + "\n"
	return out
}
