// Package dashboard implements the MQTT broker dashboard TUI.
//
// The dashboard shows four panels in a fixed order: connected clients,
// topic subscriptions, sessions and message throughput. Each panel owns a
// chart.Renderer and loads its series independently, so a panel whose data
// is unavailable shows an error while the others keep rendering.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: panels, selection, time cursor, terminal size, scroll position
//   - Update: keystrokes, window resizes, loaded series, data file changes
//   - View: header, panel grid in a scrollable viewport, footer
//
// # Message Flow
//
//  1. Init issues one load command per panel
//  2. Each command asks the metrics.Provider for its series
//  3. seriesMsg arrives and replaces that panel's series (or records the error)
//  4. A change on the data file (when watched) reloads every panel
//
// # Layout
//
// Below the breakpoint (default 100 columns) panels stack in one column; at
// or above it they form a two-column grid. Panel order never changes.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C        - Quit
//	r                - Reload all panels
//	Tab, ↑/↓, j/k    - Select panel
//	←/→, h/l         - Move the time cursor (tooltip)
//	Home/End         - First / last point
//	Esc              - Clear the cursor / close help
//	PgUp/PgDn        - Scroll
//	?                - Toggle help overlay
package dashboard
