package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit        key.Binding
	Refresh     key.Binding
	NextPanel   key.Binding
	PrevPanel   key.Binding
	PanelUp     key.Binding
	PanelDown   key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	CursorFirst key.Binding
	CursorLast  key.Binding
	Clear       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	ToggleHelp  key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Refresh, k.NextPanel, k.CursorRight, k.ToggleHelp}
}

// FullHelp returns the bindings shown in the help overlay, grouped by row.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Refresh, k.ToggleHelp},
		{k.NextPanel, k.PrevPanel, k.PanelUp, k.PanelDown},
		{k.CursorLeft, k.CursorRight, k.CursorFirst, k.CursorLast, k.Clear},
		{k.PageUp, k.PageDown},
	}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	NextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	PrevPanel: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous panel"),
	),
	PanelUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "panel above"),
	),
	PanelDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "panel below"),
	),
	CursorLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous point"),
	),
	CursorRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "inspect"),
	),
	CursorFirst: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first point"),
	),
	CursorLast: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last point"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear cursor / close"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// HandleKeyMsg processes keyboard input and updates the model.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, keys.ToggleHelp) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key.Matches(msg, keys.Clear) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Refresh):
		return true, m.reloadAll()

	case key.Matches(msg, keys.NextPanel):
		m.selectPanel((m.selected + 1) % len(m.panels))
		return true, nil

	case key.Matches(msg, keys.PrevPanel):
		m.selectPanel((m.selected - 1 + len(m.panels)) % len(m.panels))
		return true, nil

	case key.Matches(msg, keys.PanelUp):
		m.selectPanel(m.selected - m.Columns())
		return true, nil

	case key.Matches(msg, keys.PanelDown):
		m.selectPanel(m.selected + m.Columns())
		return true, nil

	case key.Matches(msg, keys.CursorLeft):
		m.moveCursor(-1)
		return true, nil

	case key.Matches(msg, keys.CursorRight):
		m.moveCursor(1)
		return true, nil

	case key.Matches(msg, keys.CursorFirst):
		if m.selectedLen() > 0 {
			m.cursor = 0
		}
		return true, nil

	case key.Matches(msg, keys.CursorLast):
		if n := m.selectedLen(); n > 0 {
			m.cursor = n - 1
		}
		return true, nil

	case key.Matches(msg, keys.Clear):
		m.cursor = -1
		return true, nil

	case key.Matches(msg, keys.PageUp):
		m.scroll(-1)
		return true, nil

	case key.Matches(msg, keys.PageDown):
		m.scroll(1)
		return true, nil
	}

	return false, nil
}

// selectPanel moves the selection when i is a valid panel index. The cursor
// is clamped to the new panel's points.
func (m *Model) selectPanel(i int) {
	if i < 0 || i >= len(m.panels) {
		return
	}
	m.selected = i
	m.ensureSelectedVisible()
	if m.cursor < 0 {
		return
	}
	if n := m.selectedLen(); n == 0 {
		m.cursor = -1
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
}

// moveCursor steps the time cursor. The first step from no cursor lands on
// the first point when moving right and the last point when moving left.
func (m *Model) moveCursor(delta int) {
	n := m.selectedLen()
	if n == 0 {
		m.cursor = -1
		return
	}
	if m.cursor < 0 {
		if delta > 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m *Model) selectedLen() int {
	if m.selected < 0 || m.selected >= len(m.panels) {
		return 0
	}
	return m.panels[m.selected].Series.Len()
}

// scroll moves the panel grid by one page.
func (m *Model) scroll(pages int) {
	if !m.viewportReady {
		return
	}
	m.body.SetYOffset(m.body.YOffset + pages*m.body.Height)
}
