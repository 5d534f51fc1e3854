package metrics

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/util"
)

// Definition describes a metric: how it is named, which fields its points
// carry, and which chart kind draws it.
type Definition struct {
	ID     MetricID
	Name   string
	Kind   ChartKind
	Fields []Field
}

// Catalog lists every metric in dashboard display order.
var Catalog = []Definition{
	{ID: ClientsConnected, Name: "Clients Connected", Kind: KindArea, Fields: []Field{FieldCount}},
	{ID: TopicSubscriptions, Name: "Topic Subscriptions", Kind: KindBar, Fields: []Field{FieldCount}},
	{ID: MQTTSessions, Name: "MQTT Sessions", Kind: KindLine, Fields: []Field{FieldCount}},
	{ID: MessagesInOut, Name: "Messages In/Out", Kind: KindMultiLine, Fields: []Field{FieldIn, FieldOut}},
}

// legacyIDs maps keys used by older sample files to current identifiers.
var legacyIDs = map[string]MetricID{
	"clientConnected": ClientsConnected,
}

// IDs returns all metric identifiers in display order.
func IDs() []MetricID {
	ids := make([]MetricID, len(Catalog))
	for i, d := range Catalog {
		ids[i] = d.ID
	}
	return ids
}

// Lookup returns the definition for id.
func Lookup(id MetricID) (Definition, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// ParseMetricID resolves a user-supplied name to a MetricID.
// Matching is case-insensitive and accepts legacy keys.
func ParseMetricID(s string) (MetricID, error) {
	s = strings.TrimSpace(s)
	for _, d := range Catalog {
		if strings.EqualFold(s, string(d.ID)) {
			return d.ID, nil
		}
	}
	for legacy, id := range legacyIDs {
		if strings.EqualFold(s, legacy) {
			return id, nil
		}
	}

	names := make([]string, len(Catalog))
	for i, d := range Catalog {
		names[i] = string(d.ID)
	}
	suggestion := "Valid metrics: " + util.JoinOrNone(names)
	if similar := util.SuggestSimilar(s, names, 3); len(similar) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? %s", similar[0], suggestion)
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown metric '%s'", s),
		suggestion)
}

// seriesFor wraps points in a MetricSeries using the catalog definition.
func seriesFor(d Definition, points []TimeSeriesPoint) MetricSeries {
	return MetricSeries{
		ID:     d.ID,
		Name:   d.Name,
		Kind:   d.Kind,
		Fields: append([]Field(nil), d.Fields...),
		Points: points,
	}
}
