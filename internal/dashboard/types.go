package dashboard

import (
	"github.com/rileyhilliard/mqttdash/internal/chart"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// PanelState is the load state of one panel.
type PanelState int

const (
	StateLoading PanelState = iota
	StateReady
	StateError
)

// String returns a human-readable state.
func (s PanelState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// descriptions are the one-line captions under each panel title.
var descriptions = map[metrics.MetricID]string{
	metrics.ClientsConnected:   "Number of clients connected over time",
	metrics.TopicSubscriptions: "Number of topic subscriptions over time",
	metrics.MQTTSessions:       "Number of MQTT sessions over time",
	metrics.MessagesInOut:      "Number of messages received and sent over time",
}

// Description returns the caption shown under a metric's panel title.
func Description(id metrics.MetricID) string {
	return descriptions[id]
}

// Panel is one titled chart on the dashboard.
type Panel struct {
	Def         metrics.Definition
	Description string
	State       PanelState
	Series      metrics.MetricSeries
	Err         error

	renderer *chart.Renderer
	// seq identifies the latest load request; older results are dropped.
	seq int
}

func newPanel(def metrics.Definition, height int) Panel {
	return Panel{
		Def:         def,
		Description: Description(def.ID),
		State:       StateLoading,
		renderer:    chart.New(def.ID, height),
	}
}

// Options configure the dashboard.
type Options struct {
	Title       string
	Breakpoint  int
	PanelHeight int
	// Source names where the data comes from, shown in the header.
	Source string
}

// Defaults.
const (
	DefaultTitle      = "MQTT Dashboard"
	DefaultBreakpoint = 100
	DefaultWidth      = 80
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Title:       DefaultTitle,
		Breakpoint:  DefaultBreakpoint,
		PanelHeight: chart.DefaultHeight,
	}
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Breakpoint <= 0 {
		o.Breakpoint = d.Breakpoint
	}
	if o.PanelHeight <= 0 {
		o.PanelHeight = d.PanelHeight
	}
	return o
}
