package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// DefaultHeight is the chart height in rows when none is configured.
const DefaultHeight = 12

// Renderer draws the series of one metric. Each dashboard panel owns one.
type Renderer struct {
	Encodings Encodings
	Height    int
}

// New returns a renderer with the default encodings for id.
func New(id metrics.MetricID, height int) *Renderer {
	return &Renderer{Encodings: DefaultEncodings(id), Height: height}
}

func (r *Renderer) height() int {
	if r.Height <= 0 {
		return DefaultHeight
	}
	if r.Height < MinHeight {
		return MinHeight
	}
	return r.Height
}

// Render draws s at the given width. cursor selects the point whose values
// are shown in the info line; pass -1 for the legend instead. The result is
// always exactly Height lines of exactly width columns.
func (r *Renderer) Render(s metrics.MetricSeries, width, cursor int) string {
	if width < MinWidth {
		width = MinWidth
	}
	p := Build(s, width, r.height(), cursor)
	if p.Empty {
		return Placeholder(width, r.height(), "No data")
	}
	return r.Draw(p, s)
}

// Placeholder renders a message centered in an otherwise blank chart area.
func Placeholder(width, height int, msg string) string {
	if width < 1 {
		width = 1
	}
	msg = ansi.Truncate(msg, width, "…")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, mutedStyle.Render(msg))
}

// Draw styles a built plot. s must be the series p was built from.
func (r *Renderer) Draw(p Plot, s metrics.MetricSeries) string {
	lines := make([]string, 0, p.Height)

	for i, row := range p.Rows {
		label := p.YLabels[i]
		edge := "│"
		if label != "" {
			edge = "┤"
		}
		gutter := labelStyle.Render(padLeft(label, p.LabelWidth)) + " " + axisStyle.Render(edge)
		lines = append(lines, gutter+r.cells(row, p.Fields))
	}

	lines = append(lines, strings.Repeat(" ", p.LabelWidth+1)+axisStyle.Render("└")+r.cells(p.Axis, p.Fields))
	lines = append(lines, strings.Repeat(" ", p.LabelWidth+2)+xLabelRow(p.XLabels, p.PlotWidth()))
	lines = append(lines, r.info(p, s))

	for i, l := range lines {
		lines[i] = fit(l, p.Width)
	}
	return strings.Join(lines, "\n")
}

// cells styles a row, one style run per layer change.
func (r *Renderer) cells(row []Cell, fields []metrics.Field) string {
	var b strings.Builder
	var run strings.Builder
	cur := LayerEmpty
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(r.styleFor(cur, fields).Render(run.String()))
		run.Reset()
	}
	for _, c := range row {
		if c.Layer != cur {
			flush()
			cur = c.Layer
		}
		run.WriteRune(c.Ch)
	}
	flush()
	return b.String()
}

func (r *Renderer) styleFor(l Layer, fields []metrics.Field) lipgloss.Style {
	switch l {
	case LayerEmpty:
		return lipgloss.NewStyle()
	case LayerGrid:
		return gridStyle
	case LayerCursor:
		return cursorStyle
	case LayerAxis:
		return axisStyle
	}
	color := ColorLabel
	if int(l) < len(fields) {
		color = r.Encodings.For(fields[l]).Color
	}
	return lipgloss.NewStyle().Foreground(color)
}

func xLabelRow(labels []XLabel, width int) string {
	var b strings.Builder
	col := 0
	for _, l := range labels {
		if l.Col > col {
			b.WriteString(strings.Repeat(" ", l.Col-col))
		}
		style := labelStyle
		if l.Cursor {
			style = cursorStyle
		}
		b.WriteString(style.Render(l.Text))
		col = l.Col + lipgloss.Width(l.Text)
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}

// info renders the tooltip for the cursor, or the legend and peak without one.
func (r *Renderer) info(p Plot, s metrics.MetricSeries) string {
	swatch := func(e Encoding) string {
		return lipgloss.NewStyle().Foreground(e.Color).Render("■")
	}

	if tip, ok := TooltipAt(s, r.Encodings, p.Cursor); ok {
		parts := []string{cursorStyle.Render(tip.Time)}
		for _, e := range tip.Entries {
			parts = append(parts, swatch(e.Encoding)+" "+labelStyle.Render(e.Label)+" "+
				lipgloss.NewStyle().Bold(true).Render(FormatValue(e.Value)))
		}
		return strings.Join(parts, "  ")
	}

	var parts []string
	for _, f := range s.Fields {
		e := r.Encodings.For(f)
		parts = append(parts, swatch(e)+" "+labelStyle.Render(e.Label))
	}
	if len(s.Fields) == 1 {
		if t, v, ok := Peak(s, s.Fields[0]); ok {
			parts = append(parts, mutedStyle.Render("peak "+FormatValue(v)+" at "+t))
		}
	}
	return strings.Join(parts, "  ")
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

// fit truncates or pads a styled line to exactly w columns.
func fit(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if n := lipgloss.Width(s); n < w {
		s += strings.Repeat(" ", w-n)
	}
	return s
}
