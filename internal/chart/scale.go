package chart

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// DefaultTicks is the number of Y axis ticks a scale aims for.
const DefaultTicks = 5

// Scale is a linear Y axis with round tick values.
type Scale struct {
	Min   float64
	Max   float64
	Step  float64
	Ticks []float64
}

// NiceScale returns a scale covering [lo, hi] whose bounds and ticks fall on
// multiples of 1, 2 or 5 times a power of ten. When includeZero is set the
// scale is widened to contain zero. Bounds that are not finite, or a range
// too wide to represent, produce the unit scale.
func NiceScale(lo, hi float64, ticks int, includeZero bool) Scale {
	if ticks < 2 {
		ticks = 2
	}
	if !isFinite(lo) || !isFinite(hi) {
		return unitScale(ticks)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if includeZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if lo == hi {
		pad := math.Abs(lo) * 0.1
		if pad == 0 {
			pad = 1
		}
		if includeZero && lo == 0 {
			hi += pad
		} else {
			lo -= pad
			hi += pad
		}
	}

	span := niceNum(hi-lo, false)
	step := niceNum(span/float64(ticks-1), true)
	if !isFinite(span) || !isFinite(step) || step <= 0 {
		return unitScale(ticks)
	}
	s := Scale{
		Min:  math.Floor(lo/step) * step,
		Max:  math.Ceil(hi/step) * step,
		Step: step,
	}
	if !isFinite(s.Min) || !isFinite(s.Max) || !isFinite(s.Max-s.Min) {
		return unitScale(ticks)
	}

	count := int(math.Round((s.Max-s.Min)/step)) + 1
	s.Ticks = make([]float64, count)
	for i := range s.Ticks {
		s.Ticks[i] = roundTo(s.Min+float64(i)*step, step)
	}
	return s
}

// unitScale is the [0, 1] scale with evenly spaced ticks.
func unitScale(ticks int) Scale {
	s := Scale{Min: 0, Max: 1, Step: 1 / float64(ticks-1), Ticks: make([]float64, ticks)}
	for i := range s.Ticks {
		s.Ticks[i] = float64(i) * s.Step
	}
	s.Ticks[ticks-1] = 1
	return s
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Norm maps v onto [0, 1] within the scale, clamped.
func (s Scale) Norm(v float64) float64 {
	if s.Max <= s.Min {
		return 0.5
	}
	n := (v - s.Min) / (s.Max - s.Min)
	if math.IsNaN(n) {
		return 0
	}
	return math.Max(0, math.Min(1, n))
}

// niceNum picks a round number near x: rounded to the closest when round is
// set, otherwise the smallest nice number not below x.
func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

// roundTo removes floating point drift from a multiple of step.
func roundTo(v, step float64) float64 {
	r := math.Round(v/step) * step
	if r == 0 {
		return 0
	}
	return r
}

// FormatValue renders a value for axis labels and tooltips: integers with
// thousands separators, fractions to two decimals.
func FormatValue(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 2)
}
