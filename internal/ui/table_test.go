package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/mqttdash/internal/chart"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Time", Width: 10},
		{Title: "Clients", Width: 10},
	}
	rows := []table.Row{
		{"00:00", "150"},
		{"04:00", "200"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Time")
	assert.Contains(t, view, "Clients")
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "04:00")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Time", Width: 10}}, nil))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))

	styled := SuccessStyle().Render("ok")
	assert.Equal(t, 4, len(ansi.Strip(padRight(styled, 4))))
}

func TestRenderSeriesTable(t *testing.T) {
	s, err := metrics.NewStaticProvider().Series(metrics.MessagesInOut)
	require.NoError(t, err)

	out := ansi.Strip(RenderSeriesTable(s, chart.DefaultEncodings(s.ID)))

	assert.Contains(t, out, "Messages In")
	assert.Contains(t, out, "Messages Out")
	assert.Contains(t, out, "12:00")
	assert.Contains(t, out, "3,500")
	assert.Contains(t, out, "3,300")
}

func TestRenderSeriesSummary(t *testing.T) {
	s, err := metrics.NewStaticProvider().Series(metrics.ClientsConnected)
	require.NoError(t, err)

	out := ansi.Strip(RenderSeriesSummary(s, chart.DefaultEncodings(s.ID)))

	assert.Contains(t, out, "Clients")
	assert.Contains(t, out, "150..400")
	assert.Contains(t, out, "400 at 12:00")
	assert.True(t, containsBlockChar(out))
}

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader(HeaderInfo{Version: "v1.0.0", Title: "Broker A", Source: "sample data"}))

	assert.Contains(t, out, "mqttdash v1.0.0")
	assert.Contains(t, out, "Broker A")
	assert.Contains(t, out, "sample data")
	assert.Contains(t, out, "━━━")
}
