package chart

import "math"

// monotone is a monotone cubic Hermite interpolant over evenly spaced
// samples (Fritsch-Carlson). Between two samples it never leaves their
// range, so a smoothed curve cannot overshoot the data.
type monotone struct {
	ys []float64
	ms []float64
}

func newMonotone(ys []float64) monotone {
	n := len(ys)
	m := monotone{ys: ys, ms: make([]float64, n)}
	if n < 2 {
		return m
	}

	d := make([]float64, n-1)
	for i := range d {
		d[i] = ys[i+1] - ys[i]
	}

	m.ms[0] = d[0]
	m.ms[n-1] = d[n-2]
	for i := 1; i < n-1; i++ {
		if d[i-1]*d[i] <= 0 {
			m.ms[i] = 0
		} else {
			m.ms[i] = (d[i-1] + d[i]) / 2
		}
	}

	for i := range d {
		if d[i] == 0 {
			m.ms[i] = 0
			m.ms[i+1] = 0
			continue
		}
		a := m.ms[i] / d[i]
		b := m.ms[i+1] / d[i]
		if s := a*a + b*b; s > 9 {
			t := 3 / math.Sqrt(s)
			m.ms[i] = t * a * d[i]
			m.ms[i+1] = t * b * d[i]
		}
	}
	return m
}

// at evaluates the curve at x, where sample i sits at x = i.
func (m monotone) at(x float64) float64 {
	n := len(m.ys)
	switch {
	case n == 0:
		return 0
	case n == 1 || x <= 0:
		return m.ys[0]
	case x >= float64(n-1):
		return m.ys[n-1]
	}

	i := int(x)
	t := x - float64(i)
	t2, t3 := t*t, t*t*t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*m.ys[i] + h10*m.ms[i] + h01*m.ys[i+1] + h11*m.ms[i+1]
}
