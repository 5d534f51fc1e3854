package dashboard

import (
	"strings"

	"github.com/rileyhilliard/mqttdash/internal/logger"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// RenderStatic loads every panel once and renders the dashboard without
// interactive chrome. Panel failures are drawn in place, as in the TUI.
func RenderStatic(provider metrics.Provider, opts Options, width int) string {
	m := Load(provider, opts, nil)
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n\n")
	b.WriteString(m.renderPanels(width))
	b.WriteString("\n")
	return b.String()
}

// Load builds a model and loads every panel synchronously.
func Load(provider metrics.Provider, opts Options, log logger.Logger) Model {
	m := NewModel(provider, opts, log, nil)
	for i := range m.panels {
		p := &m.panels[i]
		p.seq++
		s, err := provider.Series(p.Def.ID)
		m.applySeries(seriesMsg{index: i, seq: p.seq, series: s, err: err})
	}
	return m
}
