package metrics

import (
	"testing"

	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_AllMetricsOrdered(t *testing.T) {
	p := NewStaticProvider()

	for _, id := range IDs() {
		t.Run(string(id), func(t *testing.T) {
			s, err := p.Series(id)
			require.NoError(t, err)

			require.NotEmpty(t, s.Points)
			assert.Equal(t, id, s.ID)

			for i := 1; i < len(s.Points); i++ {
				prev, err := ParseTimeLabel(s.Points[i-1].Time)
				require.NoError(t, err)
				cur, err := ParseTimeLabel(s.Points[i].Time)
				require.NoError(t, err)
				assert.True(t, cur.After(prev), "%s should come after %s", s.Points[i].Time, s.Points[i-1].Time)
			}
		})
	}
}

func TestStaticProvider_ChartKinds(t *testing.T) {
	p := NewStaticProvider()

	tests := []struct {
		id     MetricID
		kind   ChartKind
		fields []Field
		name   string
	}{
		{ClientsConnected, KindArea, []Field{FieldCount}, "Clients Connected"},
		{TopicSubscriptions, KindBar, []Field{FieldCount}, "Topic Subscriptions"},
		{MQTTSessions, KindLine, []Field{FieldCount}, "MQTT Sessions"},
		{MessagesInOut, KindMultiLine, []Field{FieldIn, FieldOut}, "Messages In/Out"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			s, err := p.Series(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.fields, s.Fields)
			assert.Equal(t, tt.name, s.Name)
		})
	}
}

func TestStaticProvider_SampleValues(t *testing.T) {
	p := NewStaticProvider()

	clients, err := p.Series(ClientsConnected)
	require.NoError(t, err)
	assert.Equal(t, []float64{150, 200, 350, 400, 300, 250, 180}, clients.Values(FieldCount))
	assert.Equal(t, []string{"00:00", "04:00", "08:00", "12:00", "16:00", "20:00", "23:59"}, clients.Times())

	msgs, err := p.Series(MessagesInOut)
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 1500, 3000, 3500, 2800, 2000, 1500}, msgs.Values(FieldIn))
	assert.Equal(t, []float64{950, 1400, 2800, 3300, 2700, 1900, 1400}, msgs.Values(FieldOut))
}

func TestStaticProvider_Idempotent(t *testing.T) {
	p := NewStaticProvider()

	first, err := p.Series(MQTTSessions)
	require.NoError(t, err)
	second, err := p.Series(MQTTSessions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStaticProvider_ReturnsCopies(t *testing.T) {
	p := NewStaticProvider()

	s, err := p.Series(ClientsConnected)
	require.NoError(t, err)
	s.Points[0].Values[FieldCount] = 9999
	s.Points[0].Time = "mutated"

	again, err := p.Series(ClientsConnected)
	require.NoError(t, err)
	assert.Equal(t, "00:00", again.Points[0].Time)
	assert.Equal(t, 150.0, again.Points[0].Values[FieldCount])
}

func TestStaticProviderFrom_CopiesInput(t *testing.T) {
	data := SampleData()
	p := NewStaticProviderFrom(data)

	data[ClientsConnected][0].Values[FieldCount] = -1

	s, err := p.Series(ClientsConnected)
	require.NoError(t, err)
	assert.Equal(t, 150.0, s.Points[0].Values[FieldCount])
}

func TestStaticProvider_MissingMetric(t *testing.T) {
	p := NewStaticProviderFrom(map[MetricID][]TimeSeriesPoint{})

	_, err := p.Series(ClientsConnected)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrData))
}

func TestStaticProvider_UnknownMetric(t *testing.T) {
	_, err := NewStaticProvider().Series(MetricID("bogus"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrData))
}

func TestStaticProvider_EmptySeriesIsMalformed(t *testing.T) {
	p := NewStaticProviderFrom(map[MetricID][]TimeSeriesPoint{
		MQTTSessions: {},
	})

	_, err := p.Series(MQTTSessions)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSeries))
}

func TestParseMetricID(t *testing.T) {
	tests := []struct {
		in      string
		want    MetricID
		wantErr bool
	}{
		{in: "clientsConnected", want: ClientsConnected},
		{in: "CLIENTSCONNECTED", want: ClientsConnected},
		{in: "clientConnected", want: ClientsConnected},
		{in: " messagesInOut ", want: MessagesInOut},
		{in: "mqttSessions", want: MQTTSessions},
		{in: "topicSubscriptions", want: TopicSubscriptions},
		{in: "retained", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMetricID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogOrder(t *testing.T) {
	assert.Equal(t, []MetricID{ClientsConnected, TopicSubscriptions, MQTTSessions, MessagesInOut}, IDs())

	def, ok := Lookup(MessagesInOut)
	require.True(t, ok)
	assert.Equal(t, KindMultiLine, def.Kind)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestPoint(t *testing.T) {
	p := Point("08:00", FieldIn, 3000, FieldOut, 2800.5)

	in, ok := p.Value(FieldIn)
	require.True(t, ok)
	assert.Equal(t, 3000.0, in)

	out, ok := p.Value(FieldOut)
	require.True(t, ok)
	assert.Equal(t, 2800.5, out)

	_, ok = p.Value(FieldCount)
	assert.False(t, ok)
}

func TestPoint_NumericTypes(t *testing.T) {
	p := Point("00:00", FieldIn, int64(7), FieldOut, uint8(3))
	assert.Equal(t, map[Field]float64{FieldIn: 7, FieldOut: 3}, p.Values)

	assert.Equal(t, 1.5, Point("00:00", FieldCount, float32(1.5)).Values[FieldCount])
}

func TestPoint_PanicsOnMisuse(t *testing.T) {
	tests := []struct {
		name string
		kv   []interface{}
	}{
		{name: "string key", kv: []interface{}{"count", 1}},
		{name: "non numeric value", kv: []interface{}{FieldCount, "1"}},
		{name: "missing value", kv: []interface{}{FieldCount}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { Point("00:00", tt.kv...) })
		})
	}
}

func TestMetricSeries_Clone(t *testing.T) {
	s, err := NewStaticProvider().Series(MessagesInOut)
	require.NoError(t, err)

	c := s.Clone()
	c.Fields[0] = "changed"
	c.Points[3].Values[FieldIn] = 0

	assert.Equal(t, FieldIn, s.Fields[0])
	assert.Equal(t, 3500.0, s.Points[3].Values[FieldIn])
}

func TestParseMetricID_SuggestsClosest(t *testing.T) {
	_, err := ParseMetricID("mqttSesions")
	require.Error(t, err)

	dashErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Contains(t, dashErr.Suggestion, "Did you mean 'mqttSessions'?")
	assert.Contains(t, dashErr.Suggestion, "messagesInOut")

	_, err = ParseMetricID("retained")
	dashErr, ok = errors.As(err)
	require.True(t, ok)
	assert.NotContains(t, dashErr.Suggestion, "Did you mean")
}
