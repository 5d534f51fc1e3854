package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/rileyhilliard/mqttdash/internal/errors"
)

// timeLayouts are the accepted formats for point time labels.
var timeLayouts = []string{"15:04", "15:04:05", time.RFC3339}

// ParseTimeLabel converts a time label into a comparable instant.
func ParseTimeLabel(label string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q is not HH:MM, HH:MM:SS or RFC 3339", label)
}

// Validate checks the series invariants: at least one point, every point
// carries exactly the series fields as finite non-negative counts, and time
// labels are unique and strictly ascending in insertion order. It never
// reorders points.
func Validate(s MetricSeries) error {
	id := string(s.ID)

	if len(s.Fields) == 0 {
		return errors.NewMalformedSeries(id, "series declares no fields")
	}
	if len(s.Points) == 0 {
		return errors.NewMalformedSeries(id, "series has no points")
	}

	var prev time.Time
	hi := 0.0
	for i, p := range s.Points {
		if p.Time == "" {
			return errors.NewMalformedSeries(id, fmt.Sprintf("point %d has no time", i))
		}

		if len(p.Values) != len(s.Fields) {
			return errors.NewMalformedSeries(id,
				fmt.Sprintf("point %s has %d values, want %d", p.Time, len(p.Values), len(s.Fields)))
		}
		for _, f := range s.Fields {
			v, ok := p.Values[f]
			if !ok {
				return errors.NewMalformedSeries(id, fmt.Sprintf("point %s is missing %q", p.Time, f))
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.NewMalformedSeries(id, fmt.Sprintf("point %s has a non-finite %q", p.Time, f))
			}
			if v < 0 {
				return errors.NewMalformedSeries(id, fmt.Sprintf("point %s has a negative %q", p.Time, f))
			}
			hi = math.Max(hi, v)
		}

		t, err := ParseTimeLabel(p.Time)
		if err != nil {
			return errors.NewMalformedSeries(id, err.Error())
		}
		if i > 0 {
			switch {
			case t.Equal(prev):
				return errors.NewMalformedSeries(id, fmt.Sprintf("time %s appears more than once", p.Time))
			case t.Before(prev):
				return errors.NewMalformedSeries(id, fmt.Sprintf("time %s is out of order", p.Time))
			}
		}
		prev = t
	}

	// Axis ticks are computed from the range; keep headroom for rounding up.
	if hi > math.MaxFloat64/16 {
		return errors.NewMalformedSeries(id, "values are too large to plot")
	}

	return nil
}
