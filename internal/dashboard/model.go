package dashboard

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/mqttdash/internal/chart"
	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/logger"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// Rows reserved around the scrollable panel grid.
const (
	headerHeight = 2
	footerHeight = 2
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	provider metrics.Provider
	opts     Options
	log      logger.Logger
	changes  <-chan struct{}

	panels   []Panel
	selected int
	// cursor is the time index shown in the selected panel's tooltip, or -1.
	cursor int

	width    int
	height   int
	showHelp bool
	quitting bool

	body          viewport.Model
	viewportReady bool
}

// seriesMsg carries the result of loading one panel.
type seriesMsg struct {
	index  int
	seq    int
	series metrics.MetricSeries
	err    error
}

// dataChangedMsg signals that the watched data file changed.
type dataChangedMsg struct{}

// NewModel creates a dashboard over provider. changes, when non-nil, is a
// stream of data change signals (see metrics.Watcher) that trigger a reload.
func NewModel(provider metrics.Provider, opts Options, log logger.Logger, changes <-chan struct{}) Model {
	if log == nil {
		log = logger.Default()
	}
	opts = opts.withDefaults()

	m := Model{
		provider: provider,
		opts:     opts,
		log:      log,
		changes:  changes,
		cursor:   -1,
	}
	for _, def := range metrics.Catalog {
		m.panels = append(m.panels, newPanel(def, opts.PanelHeight))
	}
	return m
}

// Init loads every panel and starts listening for data changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.reloadAll()}
	if m.changes != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			m.refreshBody()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		bodyHeight := m.height - headerHeight - footerHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.viewportReady {
			m.body = viewport.New(m.width, bodyHeight)
			m.viewportReady = true
		} else {
			m.body.Width = m.width
			m.body.Height = bodyHeight
		}
		m.refreshBody()
		m.ensureSelectedVisible()

	case seriesMsg:
		m.applySeries(msg)
		m.refreshBody()

	case dataChangedMsg:
		m.log.Info("data changed, reloading %d panels", len(m.panels))
		return m, tea.Batch(m.reloadAll(), m.waitForChange())
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// reloadAll marks every panel loading and issues one load command per panel.
func (m *Model) reloadAll() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.panels))
	for i := range m.panels {
		cmds[i] = m.reload(i)
	}
	return tea.Batch(cmds...)
}

// reload issues a load for panel i. The panel keeps showing its last series
// until the new one arrives.
func (m *Model) reload(i int) tea.Cmd {
	p := &m.panels[i]
	p.seq++
	p.State = StateLoading
	return loadCmd(m.provider, i, p.seq, p.Def.ID)
}

func loadCmd(provider metrics.Provider, index, seq int, id metrics.MetricID) tea.Cmd {
	return func() tea.Msg {
		s, err := provider.Series(id)
		return seriesMsg{index: index, seq: seq, series: s, err: err}
	}
}

// waitForChange blocks until the data source reports a change.
func (m Model) waitForChange() tea.Cmd {
	changes := m.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return dataChangedMsg{}
	}
}

// applySeries records a load result on its panel. Results from superseded
// loads are dropped.
func (m *Model) applySeries(msg seriesMsg) {
	if msg.index < 0 || msg.index >= len(m.panels) {
		return
	}
	p := &m.panels[msg.index]
	if msg.seq != p.seq {
		return
	}

	if msg.err != nil {
		p.State = StateError
		p.Err = msg.err
		p.Series = metrics.MetricSeries{}
		m.log.Warn("panel %s: %s", p.Def.ID, errors.Summary(msg.err))
		return
	}

	p.State = StateReady
	p.Err = nil
	p.Series = msg.series
	m.log.Debug("panel %s loaded: %d points", p.Def.ID, msg.series.Len())
}

// refreshBody re-renders the panel grid into the viewport.
func (m *Model) refreshBody() {
	if !m.viewportReady {
		return
	}
	m.body.SetContent(m.renderPanels(m.width))
}

// ensureSelectedVisible scrolls so the selected panel's row is on screen.
func (m *Model) ensureSelectedVisible() {
	if !m.viewportReady {
		return
	}
	top := m.selectedRow() * m.panelOuterHeight()
	bottom := top + m.panelOuterHeight()
	switch {
	case top < m.body.YOffset:
		m.body.SetYOffset(top)
	case bottom > m.body.YOffset+m.body.Height:
		m.body.SetYOffset(min(top, bottom-m.body.Height))
	}
}

// Columns returns how many panels sit side by side at the current width.
func (m Model) Columns() int {
	return columnsFor(m.width, m.opts.Breakpoint)
}

func columnsFor(width, breakpoint int) int {
	if width >= breakpoint {
		return 2
	}
	return 1
}

func (m Model) selectedRow() int {
	return m.selected / m.Columns()
}

// chartHeight is the rendered chart height of every panel.
func (m Model) chartHeight() int {
	if m.opts.PanelHeight < chart.MinHeight {
		return chart.MinHeight
	}
	return m.opts.PanelHeight
}

// panelOuterHeight counts the title, description, chart and both borders.
func (m Model) panelOuterHeight() int {
	return m.chartHeight() + 4
}

// Panels returns a copy of the panels in display order.
func (m Model) Panels() []Panel {
	out := make([]Panel, len(m.panels))
	copy(out, m.panels)
	return out
}

// Selected returns the index of the selected panel.
func (m Model) Selected() int {
	return m.selected
}

// Cursor returns the time cursor, or -1 when none is set.
func (m Model) Cursor() int {
	return m.cursor
}

// Title returns the dashboard title.
func (m Model) Title() string {
	return m.opts.Title
}

// ReadyCount returns how many panels have data.
func (m Model) ReadyCount() int {
	n := 0
	for _, p := range m.panels {
		if p.State == StateReady {
			n++
		}
	}
	return n
}

// ScrollOffset returns the first visible line of the panel grid.
func (m Model) ScrollOffset() int {
	return m.body.YOffset
}
