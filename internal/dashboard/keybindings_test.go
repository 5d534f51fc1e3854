package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMap_ShortHelp(t *testing.T) {
	help := keys.ShortHelp()
	assert.Len(t, help, 5)
}

func TestKeyMap_FullHelp(t *testing.T) {
	help := keys.FullHelp()
	assert.Len(t, help, 4)

	var n int
	for _, row := range help {
		n += len(row)
	}
	assert.Equal(t, 14, n, "every binding appears once")
}

func TestHandleKey_TabCyclesPanels(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())

	for _, want := range []int{1, 2, 3, 0} {
		m, _ = update(t, m, keyMsg("tab"))
		assert.Equal(t, want, m.Selected())
	}

	m, _ = update(t, m, keyMsg("shift+tab"))
	assert.Equal(t, 3, m.Selected())
}

func TestHandleKey_UpDownFollowColumns(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())

	narrow, _ := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 200})
	narrow, _ = update(t, narrow, keyMsg("down"))
	assert.Equal(t, 1, narrow.Selected())
	narrow, _ = update(t, narrow, keyMsg("j"))
	assert.Equal(t, 2, narrow.Selected())
	narrow, _ = update(t, narrow, keyMsg("k"))
	assert.Equal(t, 1, narrow.Selected())

	wide, _ := update(t, m, tea.WindowSizeMsg{Width: 140, Height: 200})
	wide, _ = update(t, wide, keyMsg("down"))
	assert.Equal(t, 2, wide.Selected())
	wide, _ = update(t, wide, keyMsg("down"))
	assert.Equal(t, 2, wide.Selected(), "no row below")
	wide, _ = update(t, wide, keyMsg("up"))
	assert.Equal(t, 0, wide.Selected())
	wide, _ = update(t, wide, keyMsg("up"))
	assert.Equal(t, 0, wide.Selected(), "no row above")
}

func TestHandleKey_Cursor(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())

	m, _ = update(t, m, keyMsg("right"))
	assert.Equal(t, 0, m.Cursor())
	m, _ = update(t, m, keyMsg("l"))
	m, _ = update(t, m, keyMsg("l"))
	m, _ = update(t, m, keyMsg("l"))
	assert.Equal(t, 3, m.Cursor())

	out := ansi.Strip(m.renderPanels(120))
	assert.Contains(t, out, "12:00  ■ Clients 400")

	m, _ = update(t, m, keyMsg("end"))
	assert.Equal(t, 6, m.Cursor())
	m, _ = update(t, m, keyMsg("right"))
	assert.Equal(t, 6, m.Cursor(), "clamped at last point")

	m, _ = update(t, m, keyMsg("home"))
	assert.Equal(t, 0, m.Cursor())
	m, _ = update(t, m, keyMsg("h"))
	assert.Equal(t, 0, m.Cursor(), "clamped at first point")

	m, _ = update(t, m, keyMsg("esc"))
	assert.Equal(t, -1, m.Cursor())

	m, _ = update(t, m, keyMsg("left"))
	assert.Equal(t, 6, m.Cursor(), "first step left starts at the end")
}

func TestHandleKey_CursorFollowsSelection(t *testing.T) {
	data := metrics.SampleData()
	data[metrics.TopicSubscriptions] = data[metrics.TopicSubscriptions][:3]
	m := loaded(t, metrics.NewStaticProviderFrom(data))

	m, _ = update(t, m, keyMsg("end"))
	assert.Equal(t, 6, m.Cursor())

	m, _ = update(t, m, keyMsg("tab"))
	assert.Equal(t, 2, m.Cursor(), "clamped to the shorter series")
}

func TestHandleKey_CursorNeedsData(t *testing.T) {
	m := NewModel(metrics.NewStaticProvider(), DefaultOptions(), nil, nil)
	m, _ = update(t, m, keyMsg("right"))
	assert.Equal(t, -1, m.Cursor())
	m, _ = update(t, m, keyMsg("end"))
	assert.Equal(t, -1, m.Cursor())
}

func TestHandleKey_Help(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(t, m, keyMsg("?"))
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "previous point")

	m, _ = update(t, m, keyMsg("esc"))
	assert.NotContains(t, ansi.Strip(m.View()), "Keyboard Shortcuts")

	m, _ = update(t, m, keyMsg("?"))
	m, _ = update(t, m, keyMsg("?"))
	assert.NotContains(t, ansi.Strip(m.View()), "Keyboard Shortcuts")
}

func TestHandleKey_Scroll(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	require.Equal(t, 0, m.ScrollOffset())

	m, _ = update(t, m, keyMsg("pgdown"))
	assert.Equal(t, 16, m.ScrollOffset())

	m, _ = update(t, m, keyMsg("pgup"))
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestHandleKey_SelectionScrollsIntoView(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, keyMsg("shift+tab"))
	assert.Equal(t, 3, m.Selected())

	// One column of 16-line panels in a 20-line body; the last panel ends at
	// line 64, so the body scrolls until that line is visible.
	assert.Equal(t, 44, m.ScrollOffset())

	m, _ = update(t, m, keyMsg("tab"))
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.ScrollOffset())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Messages In/Out")
}

func TestHandleKey_Unhandled(t *testing.T) {
	m := loaded(t, metrics.NewStaticProvider())
	handled, cmd := m.HandleKeyMsg(keyMsg("x"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}
