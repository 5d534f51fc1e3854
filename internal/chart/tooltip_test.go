package chart

import (
	"testing"

	"github.com/rileyhilliard/mqttdash/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTooltipAt_MessagesInOut(t *testing.T) {
	s := sampleSeries(t, metrics.MessagesInOut)
	enc := DefaultEncodings(metrics.MessagesInOut)

	tip, ok := TooltipAt(s, enc, 3)
	require.True(t, ok)
	assert.Equal(t, "12:00", tip.Time)
	require.Len(t, tip.Entries, 2)

	in, ok := tip.Value(metrics.FieldIn)
	require.True(t, ok)
	assert.Equal(t, 3500.0, in)

	out, ok := tip.Value(metrics.FieldOut)
	require.True(t, ok)
	assert.Equal(t, 3300.0, out)

	assert.Equal(t, "Messages In", tip.Entries[0].Label)
	assert.Equal(t, "Messages Out", tip.Entries[1].Label)
	assert.NotEqual(t, tip.Entries[0].Color, tip.Entries[1].Color)

	_, ok = tip.Value(metrics.FieldCount)
	assert.False(t, ok)
}

func TestTooltipAt_OutOfRange(t *testing.T) {
	s := sampleSeries(t, metrics.ClientsConnected)
	enc := DefaultEncodings(metrics.ClientsConnected)

	for _, idx := range []int{-1, 7, 100} {
		_, ok := TooltipAt(s, enc, idx)
		assert.False(t, ok, "index %d", idx)
	}
}

func TestTooltipAt_UnknownFieldFallsBack(t *testing.T) {
	s := sampleSeries(t, metrics.ClientsConnected)

	tip, ok := TooltipAt(s, Encodings{}, 0)
	require.True(t, ok)
	require.Len(t, tip.Entries, 1)
	assert.Equal(t, "count", tip.Entries[0].Label)
	assert.Equal(t, ColorLabel, tip.Entries[0].Color)
}

func TestPeak(t *testing.T) {
	tests := []struct {
		id       metrics.MetricID
		field    metrics.Field
		wantTime string
		wantVal  float64
	}{
		{metrics.ClientsConnected, metrics.FieldCount, "12:00", 400},
		{metrics.TopicSubscriptions, metrics.FieldCount, "12:00", 1500},
		{metrics.MQTTSessions, metrics.FieldCount, "12:00", 800},
		{metrics.MessagesInOut, metrics.FieldIn, "12:00", 3500},
		{metrics.MessagesInOut, metrics.FieldOut, "12:00", 3300},
	}

	for _, tt := range tests {
		t.Run(string(tt.id)+"/"+string(tt.field), func(t *testing.T) {
			tm, v, ok := Peak(sampleSeries(t, tt.id), tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.wantTime, tm)
			assert.Equal(t, tt.wantVal, v)
		})
	}
}

func TestPeak_TiesGoToEarliest(t *testing.T) {
	s := metrics.MetricSeries{
		Fields: []metrics.Field{metrics.FieldCount},
		Points: []metrics.TimeSeriesPoint{
			metrics.Point("00:00", metrics.FieldCount, 5),
			metrics.Point("01:00", metrics.FieldCount, 9),
			metrics.Point("02:00", metrics.FieldCount, 9),
		},
	}
	tm, v, ok := Peak(s, metrics.FieldCount)
	require.True(t, ok)
	assert.Equal(t, "01:00", tm)
	assert.Equal(t, 9.0, v)

	_, _, ok = Peak(s, metrics.FieldIn)
	assert.False(t, ok)
}

func TestDefaultEncodings(t *testing.T) {
	assert.Equal(t, ColorPurple, DefaultEncodings(metrics.ClientsConnected)[metrics.FieldCount].Color)
	assert.Equal(t, ColorGreen, DefaultEncodings(metrics.TopicSubscriptions)[metrics.FieldCount].Color)
	assert.Equal(t, ColorAmber, DefaultEncodings(metrics.MQTTSessions)[metrics.FieldCount].Color)
	assert.Empty(t, DefaultEncodings("bogus"))
}
