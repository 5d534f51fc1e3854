package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/mqttdash/internal/chart"
	"github.com/rileyhilliard/mqttdash/internal/errors"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(m.renderWidth()))
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.body.View())
	} else {
		b.WriteString(m.renderPanels(m.renderWidth()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderWidth() int {
	if m.width <= 0 {
		return DefaultWidth
	}
	return m.width
}

// renderHeader renders the title with a summary of panel states.
func (m Model) renderHeader(width int) string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render(m.opts.Title)

	summary := fmt.Sprintf(" | %d/%d panels ready", m.ReadyCount(), len(m.panels))
	if m.opts.Source != "" {
		summary += " | " + m.opts.Source
	}
	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(summary)

	return HeaderStyle.Render(ansi.Truncate(title+stats, width-2, "…"))
}

// renderPanels renders the panel grid at the given total width.
func (m Model) renderPanels(width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	cols := columnsFor(width, m.opts.Breakpoint)
	panelWidth := width / cols

	cards := make([]string, len(m.panels))
	for i, p := range m.panels {
		cursor := -1
		if i == m.selected {
			cursor = m.cursor
		}
		cards[i] = m.renderPanel(p, panelWidth, i == m.selected, cursor)
	}
	return layoutPanels(cards, cols)
}

// layoutPanels arranges rendered panels in rows of cols, keeping their order.
func layoutPanels(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderPanel renders one panel: title with state badge, description, chart.
func (m Model) renderPanel(p Panel, width int, selected bool, cursor int) string {
	inner := width - 4
	if inner < chart.MinWidth {
		inner = chart.MinWidth
	}

	titleStyle := PanelTitleStyle
	style := PanelStyle
	if selected {
		titleStyle = PanelTitleSelectedStyle
		style = PanelSelectedStyle
	}

	title := titleStyle.Render(p.Def.Name)
	badge := stateBadge(p.State)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	titleLine := ansi.Truncate(title+strings.Repeat(" ", gap)+badge, inner, "")

	desc := DescriptionStyle.Render(ansi.Truncate(p.Description, inner, "…"))

	body := m.renderPanelBody(p, inner, cursor)

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, desc, body)
	return style.Width(inner + 2).Render(content)
}

// renderPanelBody draws the chart, or a placeholder sized like one.
func (m Model) renderPanelBody(p Panel, width, cursor int) string {
	height := m.chartHeight()

	switch {
	case p.State == StateError:
		return errorPlaceholder(p.Err, width, height)
	case p.Series.Len() > 0:
		return p.renderer.Render(p.Series, width, cursor)
	case p.State == StateLoading:
		return chart.Placeholder(width, height, "Loading…")
	default:
		return p.renderer.Render(p.Series, width, cursor)
	}
}

// errorPlaceholder shows a panel failure. Unavailable data gets a retry hint;
// a malformed series renders the empty placeholder with the reason.
func errorPlaceholder(err error, width, height int) string {
	var lines []string
	if errors.IsCode(err, errors.ErrSeries) {
		lines = []string{"No data", errors.Summary(err)}
	} else {
		lines = []string{
			StateErrorStyle.Render("✗ " + errors.Summary(err)),
			"press r to retry",
		}
	}
	for i, l := range lines {
		lines[i] = LabelStyle.Render(ansi.Truncate(l, width, "…"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func stateBadge(s PanelState) string {
	switch s {
	case StateLoading:
		return StateLoadingStyle.Render(GlyphLoading + " loading")
	case StateError:
		return StateErrorStyle.Render(GlyphError + " error")
	default:
		return StateReadyStyle.Render(GlyphReady)
	}
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	h := newHelp()
	h.Width = m.renderWidth() - 2
	return FooterStyle.Render(h.ShortHelpView(keys.ShortHelp()))
}
