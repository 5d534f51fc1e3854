package metrics

import (
	"fmt"

	"github.com/rileyhilliard/mqttdash/internal/errors"
)

// Provider supplies the series for each dashboard metric.
//
// Implementations must return a fully populated series whose points are
// non-empty and chronologically ordered, or an error coded errors.ErrData
// (the source could not be read) or errors.ErrSeries (the source returned
// points that break the series invariants). Returned series are owned by the
// caller.
type Provider interface {
	Series(id MetricID) (MetricSeries, error)
}

// StaticProvider serves a fixed in-memory dataset.
type StaticProvider struct {
	data map[MetricID][]TimeSeriesPoint
}

// NewStaticProvider returns a provider over the built-in sample data.
func NewStaticProvider() *StaticProvider {
	return NewStaticProviderFrom(SampleData())
}

// NewStaticProviderFrom returns a provider over data. The map is copied so
// later edits by the caller are not observed.
func NewStaticProviderFrom(data map[MetricID][]TimeSeriesPoint) *StaticProvider {
	own := make(map[MetricID][]TimeSeriesPoint, len(data))
	for id, points := range data {
		cp := make([]TimeSeriesPoint, len(points))
		for i, p := range points {
			cp[i] = p.clone()
		}
		own[id] = cp
	}
	return &StaticProvider{data: own}
}

// Series implements Provider.
func (p *StaticProvider) Series(id MetricID) (MetricSeries, error) {
	def, ok := Lookup(id)
	if !ok {
		return MetricSeries{}, errors.NewDataUnavailable(string(id), fmt.Errorf("unknown metric"))
	}

	points, ok := p.data[id]
	if !ok {
		return MetricSeries{}, errors.NewDataUnavailable(string(id), fmt.Errorf("no sample data for metric"))
	}

	s := seriesFor(def, points).Clone()
	if err := Validate(s); err != nil {
		return MetricSeries{}, err
	}
	return s, nil
}

// SampleData returns a fresh copy of the built-in broker sample dataset:
// one day at four-hour resolution with a final 23:59 reading.
func SampleData() map[MetricID][]TimeSeriesPoint {
	return map[MetricID][]TimeSeriesPoint{
		ClientsConnected: {
			Point("00:00", FieldCount, 150),
			Point("04:00", FieldCount, 200),
			Point("08:00", FieldCount, 350),
			Point("12:00", FieldCount, 400),
			Point("16:00", FieldCount, 300),
			Point("20:00", FieldCount, 250),
			Point("23:59", FieldCount, 180),
		},
		TopicSubscriptions: {
			Point("00:00", FieldCount, 500),
			Point("04:00", FieldCount, 700),
			Point("08:00", FieldCount, 1200),
			Point("12:00", FieldCount, 1500),
			Point("16:00", FieldCount, 1300),
			Point("20:00", FieldCount, 1000),
			Point("23:59", FieldCount, 800),
		},
		MQTTSessions: {
			Point("00:00", FieldCount, 300),
			Point("04:00", FieldCount, 400),
			Point("08:00", FieldCount, 700),
			Point("12:00", FieldCount, 800),
			Point("16:00", FieldCount, 600),
			Point("20:00", FieldCount, 500),
			Point("23:59", FieldCount, 400),
		},
		MessagesInOut: {
			Point("00:00", FieldIn, 1000, FieldOut, 950),
			Point("04:00", FieldIn, 1500, FieldOut, 1400),
			Point("08:00", FieldIn, 3000, FieldOut, 2800),
			Point("12:00", FieldIn, 3500, FieldOut, 3300),
			Point("16:00", FieldIn, 2800, FieldOut, 2700),
			Point("20:00", FieldIn, 2000, FieldOut, 1900),
			Point("23:59", FieldIn, 1500, FieldOut, 1400),
		},
	}
}
