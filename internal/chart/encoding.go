package chart

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
)

// Encoding is the visual encoding of one field: its color and legend label.
type Encoding struct {
	Color lipgloss.Color
	Label string
}

// Encodings maps the fields of a series to their encoding.
type Encodings map[metrics.Field]Encoding

// Series palette.
const (
	ColorPurple = lipgloss.Color("#8884d8")
	ColorGreen  = lipgloss.Color("#82ca9d")
	ColorAmber  = lipgloss.Color("#ffc658")
)

// DefaultEncodings returns the encoding table for a metric.
func DefaultEncodings(id metrics.MetricID) Encodings {
	switch id {
	case metrics.ClientsConnected:
		return Encodings{metrics.FieldCount: {Color: ColorPurple, Label: "Clients"}}
	case metrics.TopicSubscriptions:
		return Encodings{metrics.FieldCount: {Color: ColorGreen, Label: "Subscriptions"}}
	case metrics.MQTTSessions:
		return Encodings{metrics.FieldCount: {Color: ColorAmber, Label: "Sessions"}}
	case metrics.MessagesInOut:
		return Encodings{
			metrics.FieldIn:  {Color: ColorPurple, Label: "Messages In"},
			metrics.FieldOut: {Color: ColorGreen, Label: "Messages Out"},
		}
	default:
		return Encodings{}
	}
}

// For returns the encoding of f, falling back to the field name in the label
// color when the table has no entry.
func (e Encodings) For(f metrics.Field) Encoding {
	if enc, ok := e[f]; ok {
		return enc
	}
	return Encoding{Color: ColorLabel, Label: string(f)}
}
