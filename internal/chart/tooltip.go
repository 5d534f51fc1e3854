package chart

import "github.com/rileyhilliard/mqttdash/internal/metrics"

// TooltipEntry is the value of one field at the tooltip's time.
type TooltipEntry struct {
	Field metrics.Field
	Encoding
	Value float64
}

// Tooltip holds the exact values of a series at one point.
type Tooltip struct {
	Index   int
	Time    string
	Entries []TooltipEntry
}

// TooltipAt returns the tooltip for point idx of s, labelled and colored with
// enc. It reports false when idx is out of range.
func TooltipAt(s metrics.MetricSeries, enc Encodings, idx int) (Tooltip, bool) {
	if idx < 0 || idx >= s.Len() {
		return Tooltip{}, false
	}
	pt := s.Points[idx]
	tip := Tooltip{Index: idx, Time: pt.Time}
	for _, f := range s.Fields {
		v, ok := pt.Value(f)
		if !ok {
			continue
		}
		tip.Entries = append(tip.Entries, TooltipEntry{Field: f, Encoding: enc.For(f), Value: v})
	}
	return tip, true
}

// Value returns the tooltip value of field f.
func (t Tooltip) Value(f metrics.Field) (float64, bool) {
	for _, e := range t.Entries {
		if e.Field == f {
			return e.Value, true
		}
	}
	return 0, false
}

// Peak returns the time and value of the largest value of f in s. Ties go to
// the earliest point. ok is false when no point carries f.
func Peak(s metrics.MetricSeries, f metrics.Field) (time string, value float64, ok bool) {
	for _, pt := range s.Points {
		v, has := pt.Value(f)
		if !has {
			continue
		}
		if !ok || v > value {
			time, value, ok = pt.Time, v, true
		}
	}
	return time, value, ok
}
