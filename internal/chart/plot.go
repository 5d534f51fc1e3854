package chart

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// Size limits. Smaller requests are raised to these.
const (
	MinWidth  = 20
	MinHeight = 6

	// reservedRows holds the X axis, the time labels and the info line.
	reservedRows = 3
)

// Layer identifies what drew a cell. Non-negative layers are the index of a
// field in the series.
type Layer int

const (
	LayerEmpty  Layer = -1
	LayerGrid   Layer = -2
	LayerCursor Layer = -3
	LayerAxis   Layer = -4
)

// Cell is one character of the plot area.
type Cell struct {
	Ch    rune
	Layer Layer
}

// XLabel is a time label placed under the axis, starting at column Col.
type XLabel struct {
	Col    int
	Text   string
	Index  int
	Cursor bool
}

// Plot is the laid-out chart before styling.
type Plot struct {
	Kind   metrics.ChartKind
	Fields []metrics.Field
	Width  int
	Height int
	Empty  bool

	Scale      Scale
	LabelWidth int
	// YLabels has one entry per plot row, empty where the row has no tick.
	YLabels []string
	Rows    [][]Cell
	Axis    []Cell
	XLabels []XLabel
	// Columns is the plot column of every point.
	Columns []int
	// Cursor is the selected point index, or -1.
	Cursor int
}

// PlotWidth returns the number of plot columns right of the Y axis.
func (p Plot) PlotWidth() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Build lays out s in a width x height box. cursor selects a point for the
// tooltip; negative means none and values past the end select the last point.
func Build(s metrics.MetricSeries, width, height, cursor int) Plot {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	p := Plot{Kind: s.Kind, Fields: s.Fields, Width: width, Height: height, Cursor: -1}
	n := s.Len()
	if n == 0 || len(s.Fields) == 0 {
		p.Empty = true
		return p
	}
	if cursor >= 0 {
		p.Cursor = clampInt(cursor, n-1)
	}

	lo, hi := valueRange(s)
	p.Scale = NiceScale(lo, hi, DefaultTicks, s.Kind == metrics.KindBar)
	for _, t := range p.Scale.Ticks {
		if w := lipgloss.Width(FormatValue(t)); w > p.LabelWidth {
			p.LabelWidth = w
		}
	}

	plotW := width - p.LabelWidth - 2
	if plotW < 2 {
		plotW = 2
	}
	plotH := height - reservedRows

	p.Rows = make([][]Cell, plotH)
	for r := range p.Rows {
		p.Rows[r] = make([]Cell, plotW)
		for c := range p.Rows[r] {
			p.Rows[r][c] = Cell{Ch: ' ', Layer: LayerEmpty}
		}
	}

	p.YLabels = yLabels(p.Scale, plotH)

	if s.Kind == metrics.KindBar {
		p.Columns = p.drawBars(s)
	} else {
		p.Columns = p.drawCurves(s)
	}

	p.drawGrid()
	p.drawCursor()
	p.Axis = axisCells(plotW, p.Columns, p.Cursor)
	p.XLabels = xLabels(s, p.Columns, plotW, p.Cursor)
	return p
}

// valueRange returns the min and max over every field of every point.
func valueRange(s metrics.MetricSeries) (lo, hi float64) {
	first := true
	for _, pt := range s.Points {
		for _, f := range s.Fields {
			v, ok := pt.Value(f)
			if !ok {
				continue
			}
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// yLabels puts each tick label on the row nearest its value. When ticks
// collide on a short plot the first one wins.
func yLabels(s Scale, rows int) []string {
	out := make([]string, rows)
	for _, t := range s.Ticks {
		r := tickRow(s, t, rows)
		if out[r] == "" {
			out[r] = FormatValue(t)
		}
	}
	return out
}

func tickRow(s Scale, v float64, rows int) int {
	return clampInt(int(math.Round((1-s.Norm(v))*float64(rows-1))), rows-1)
}

// pointDot spreads n points evenly over a span of dots.
func pointDot(i, n, dots int) int {
	if n == 1 {
		return dots / 2
	}
	return int(math.Round(float64(i) * float64(dots-1) / float64(n-1)))
}

func (p *Plot) yDot(v float64, dots int) int {
	return clampInt(int(math.Round(p.Scale.Norm(v)*float64(dots-1))), dots-1)
}

// drawCurves draws area, line and multi-line geometry on a braille canvas
// and returns the point columns.
func (p *Plot) drawCurves(s metrics.MetricSeries) []int {
	n := s.Len()
	c := newCanvas(p.PlotWidth(), len(p.Rows))

	xs := make([]int, n)
	cols := make([]int, n)
	for i := range xs {
		xs[i] = pointDot(i, n, c.dotWidth())
		cols[i] = xs[i] / 2
	}

	fill := s.Kind == metrics.KindArea
	for fi, f := range s.Fields {
		p.drawCurve(c, s.Values(f), xs, Layer(fi), fill)
	}

	c.blit(p.Rows)
	return cols
}

func (p *Plot) drawCurve(c *canvas, ys []float64, xs []int, l Layer, fill bool) {
	if len(ys) == 0 {
		return
	}
	dots := c.dotHeight()

	if len(ys) == 1 || len(ys) != len(xs) {
		y := p.yDot(ys[0], dots)
		if fill {
			c.column(xs[0], 0, y, l)
		} else {
			c.set(xs[0], y, l)
		}
		return
	}

	curve := newMonotone(ys)
	x0, x1 := xs[0], xs[len(xs)-1]
	span := float64(len(ys) - 1)
	prev := -1
	for x := x0; x <= x1; x++ {
		t := float64(x-x0) / float64(x1-x0) * span
		y := p.yDot(curve.at(t), dots)
		switch {
		case fill:
			c.column(x, 0, y, l)
		case prev < 0:
			c.set(x, y, l)
		default:
			c.column(x, prev, y, l)
		}
		prev = y
	}
}

// barBlocks are the partial fills for the top cell of a bar, in eighths.
var barBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// drawBars draws one block-character bar per point, centered in equal slots,
// and returns the bar centers.
func (p *Plot) drawBars(s metrics.MetricSeries) []int {
	n := s.Len()
	plotW := p.PlotWidth()
	rows := len(p.Rows)
	f := s.Fields[0]

	slot := float64(plotW) / float64(n)
	barW := int(slot * 0.6)
	if barW < 1 {
		barW = 1
	}

	// Bars stand on the cell row holding zero; values at or below it draw nothing.
	base := int(math.Round(p.Scale.Norm(0) * float64(rows)))

	cols := make([]int, n)
	for i, pt := range s.Points {
		center := clampInt(int((float64(i)+0.5)*slot), plotW-1)
		cols[i] = center

		v, ok := pt.Value(f)
		if !ok {
			continue
		}
		eighths := int(math.Round(p.Scale.Norm(v)*float64(rows*8))) - base*8
		if eighths <= 0 {
			continue
		}
		full, rem := eighths/8, eighths%8

		start := center - barW/2
		for col := start; col < start+barW; col++ {
			if col < 0 || col >= plotW {
				continue
			}
			for k := 0; k < full && base+k < rows; k++ {
				p.Rows[rows-1-base-k][col] = Cell{Ch: '█', Layer: 0}
			}
			if rem > 0 && base+full < rows {
				p.Rows[rows-1-base-full][col] = Cell{Ch: barBlocks[rem-1], Layer: 0}
			}
		}
	}
	return cols
}

// drawGrid dashes the tick rows and point columns wherever nothing was drawn.
func (p *Plot) drawGrid() {
	isCol := make(map[int]bool, len(p.Columns))
	for _, c := range p.Columns {
		isCol[c] = true
	}

	for r, row := range p.Rows {
		tick := p.YLabels[r] != ""
		for c := range row {
			if row[c].Layer != LayerEmpty {
				continue
			}
			switch {
			case tick && isCol[c]:
				row[c] = Cell{Ch: '┼', Layer: LayerGrid}
			case tick:
				row[c] = Cell{Ch: '╌', Layer: LayerGrid}
			case isCol[c]:
				row[c] = Cell{Ch: '╎', Layer: LayerGrid}
			}
		}
	}
}

// drawCursor marks the selected point's column in the free cells.
func (p *Plot) drawCursor() {
	if p.Cursor < 0 {
		return
	}
	col := p.Columns[p.Cursor]
	for _, row := range p.Rows {
		if row[col].Layer == LayerEmpty || row[col].Layer == LayerGrid {
			row[col] = Cell{Ch: '│', Layer: LayerCursor}
		}
	}
}

func axisCells(width int, cols []int, cursor int) []Cell {
	out := make([]Cell, width)
	for i := range out {
		out[i] = Cell{Ch: '─', Layer: LayerAxis}
	}
	for _, c := range cols {
		out[c] = Cell{Ch: '┬', Layer: LayerAxis}
	}
	if cursor >= 0 {
		out[cols[cursor]] = Cell{Ch: '┴', Layer: LayerCursor}
	}
	return out
}

// xLabels centers each time label under its column, dropping labels that
// would touch an already placed one. The cursor label is placed first so it
// is never dropped.
func xLabels(s metrics.MetricSeries, cols []int, width, cursor int) []XLabel {
	used := make([]bool, width)
	var out []XLabel

	place := func(i int) {
		text := s.Points[i].Time
		w := lipgloss.Width(text)
		if w > width {
			return
		}
		start := clampInt(cols[i]-w/2, width-w)
		lo, hi := start-1, start+w
		for c := lo; c <= hi; c++ {
			if c >= 0 && c < width && used[c] {
				return
			}
		}
		for c := start; c < start+w; c++ {
			used[c] = true
		}
		out = append(out, XLabel{Col: start, Text: text, Index: i, Cursor: i == cursor})
	}

	if cursor >= 0 {
		place(cursor)
	}
	for i := range s.Points {
		if i != cursor {
			place(i)
		}
	}

	// Left to right for rendering.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Col < out[j-1].Col; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
