package metrics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MetricID identifies one of the broker metrics shown on the dashboard.
type MetricID string

const (
	ClientsConnected   MetricID = "clientsConnected"
	TopicSubscriptions MetricID = "topicSubscriptions"
	MQTTSessions       MetricID = "mqttSessions"
	MessagesInOut      MetricID = "messagesInOut"
)

// String returns the identifier as used in data files and on the command line.
func (id MetricID) String() string {
	return string(id)
}

// Field names a numeric value carried by a point.
type Field string

const (
	FieldCount Field = "count"
	FieldIn    Field = "in"
	FieldOut   Field = "out"
)

// ChartKind selects the geometry used to draw a series.
type ChartKind string

const (
	KindArea      ChartKind = "area"
	KindBar       ChartKind = "bar"
	KindLine      ChartKind = "line"
	KindMultiLine ChartKind = "multi-line"
)

// TimeSeriesPoint is a single time-stamped observation.
// Time is a display label such as "12:00"; Values holds one entry per field
// of the series shape.
type TimeSeriesPoint struct {
	Time   string
	Values map[Field]float64
}

// Point builds a TimeSeriesPoint from alternating Field/number pairs. It
// panics on an odd argument count, a key that is not a Field, or a value that
// is not a Go integer or float.
func Point(time string, kv ...interface{}) TimeSeriesPoint {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("metrics.Point(%q): odd number of field/value arguments", time))
	}
	p := TimeSeriesPoint{Time: time, Values: make(map[Field]float64, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		f, ok := kv[i].(Field)
		if !ok {
			panic(fmt.Sprintf("metrics.Point(%q): key %v is %T, not Field", time, kv[i], kv[i]))
		}
		v, ok := toFloat(kv[i+1])
		if !ok {
			panic(fmt.Sprintf("metrics.Point(%q): value for %q is %T, not a number", time, f, kv[i+1]))
		}
		p.Values[f] = v
	}
	return p
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Value returns the value of field f and whether the point carries it.
func (p TimeSeriesPoint) Value(f Field) (float64, bool) {
	v, ok := p.Values[f]
	return v, ok
}

// fields returns the point's field names in sorted order.
func (p TimeSeriesPoint) fields() []Field {
	out := make([]Field, 0, len(p.Values))
	for f := range p.Values {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// clone returns a deep copy so callers can never alias provider data.
func (p TimeSeriesPoint) clone() TimeSeriesPoint {
	values := make(map[Field]float64, len(p.Values))
	for f, v := range p.Values {
		values[f] = v
	}
	return TimeSeriesPoint{Time: p.Time, Values: values}
}

// UnmarshalYAML decodes the flat form {time: "00:00", count: 150}.
func (p *TimeSeriesPoint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: point must be a mapping", node.Line)
	}

	p.Values = make(map[Field]float64)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Value == "time" {
			p.Time = val.Value
			continue
		}
		var f float64
		if err := val.Decode(&f); err != nil {
			if f, err = strconv.ParseFloat(val.Value, 64); err != nil {
				return fmt.Errorf("line %d: field %q is not numeric: %q", val.Line, key.Value, val.Value)
			}
		}
		p.Values[Field(key.Value)] = f
	}
	return nil
}

// MarshalYAML encodes the point in the same flat form it is read from.
func (p TimeSeriesPoint) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "time"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: p.Time, Style: yaml.DoubleQuotedStyle},
	)
	for _, f := range p.fields() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(f)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(p.Values[f], 'f', -1, 64)},
		)
	}
	return node, nil
}

// MarshalJSON encodes the point as a flat object, e.g. {"time":"00:00","in":1000,"out":950}.
func (p TimeSeriesPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(p.Values)+1)
	flat["time"] = p.Time
	for f, v := range p.Values {
		flat[string(f)] = v
	}
	return json.Marshal(flat)
}

// MetricSeries is the ordered sequence of points for one metric together with
// how it should be charted. A series is built once and replaced wholesale on
// refresh; nothing edits Points in place.
type MetricSeries struct {
	ID     MetricID          `json:"id"`
	Name   string            `json:"name"`
	Kind   ChartKind         `json:"chartKind"`
	Fields []Field           `json:"fields"`
	Points []TimeSeriesPoint `json:"points"`
}

// Len returns the number of points.
func (s MetricSeries) Len() int {
	return len(s.Points)
}

// Values returns the values of field f in point order.
// Points missing the field contribute nothing.
func (s MetricSeries) Values(f Field) []float64 {
	out := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		if v, ok := p.Values[f]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Times returns the time labels in point order.
func (s MetricSeries) Times() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Time
	}
	return out
}

// Clone returns a deep copy of the series.
func (s MetricSeries) Clone() MetricSeries {
	c := s
	c.Fields = append([]Field(nil), s.Fields...)
	c.Points = make([]TimeSeriesPoint, len(s.Points))
	for i, p := range s.Points {
		c.Points[i] = p.clone()
	}
	return c
}
