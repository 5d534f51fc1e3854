package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/mqttdash/internal/chart"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// SparklineWidth caps how many points a series sparkline shows.
const SparklineWidth = 48

const timeColumnWidth = 10

// RenderSeriesTable renders every point of s with one column per field.
func RenderSeriesTable(s metrics.MetricSeries, enc chart.Encodings) string {
	columns := []TableColumn{{Title: "Time", Width: timeColumnWidth}}
	for _, f := range s.Fields {
		label := enc.For(f).Label
		columns = append(columns, TableColumn{Title: label, Width: max(len(label), 10) + 2})
	}

	rows := make([][]string, 0, len(s.Points))
	for _, p := range s.Points {
		row := []string{p.Time}
		for _, f := range s.Fields {
			v, ok := p.Value(f)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, chart.FormatValue(v))
		}
		rows = append(rows, row)
	}

	return RenderSimpleTable(columns, rows)
}

// RenderSeriesSummary renders one line per field: swatch, label, sparkline,
// range and peak.
func RenderSeriesSummary(s metrics.MetricSeries, enc chart.Encodings) string {
	labelWidth := 0
	for _, f := range s.Fields {
		labelWidth = max(labelWidth, lipgloss.Width(enc.For(f).Label))
	}

	var b strings.Builder
	for _, f := range s.Fields {
		e := enc.For(f)
		values := s.Values(f)
		if len(values) == 0 {
			continue
		}

		lo, hi := values[0], values[0]
		for _, v := range values {
			lo = min(lo, v)
			hi = max(hi, v)
		}

		swatch := lipgloss.NewStyle().Foreground(e.Color).Render(SymbolBullet)
		line := fmt.Sprintf("%s %s  %s  %s",
			swatch,
			padRight(e.Label, labelWidth),
			RenderSparkline(values, SparklineWidth, e.Color),
			MutedStyle().Render(fmt.Sprintf("%s..%s", chart.FormatValue(lo), chart.FormatValue(hi))),
		)
		if t, v, ok := chart.Peak(s, f); ok {
			line += MutedStyle().Render(fmt.Sprintf("  %s %s at %s", SymbolPeak, chart.FormatValue(v), t))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
