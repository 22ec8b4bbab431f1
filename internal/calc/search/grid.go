package search

import "math"

// Discretized parameter axes. Each axis materializes its values once
// so the Cartesian product is an explicit, order-stable enumeration
// that can be tested apart from the feasibility logic.

type Axis struct {
	Min, Max, Step float64
}

// Values returns Min, Min+Step, ... up to and including Max (within a
// half-step tolerance for float drift).
func (a Axis) Values() []float64 {
	if a.Step <= 0 || a.Max < a.Min {
		return nil
	}
	span := (a.Max - a.Min) / a.Step
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return nil
	}
	n := int(math.Floor((a.Max-a.Min)/a.Step+0.5)) + 1
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := a.Min + float64(i)*a.Step
		if v > a.Max+a.Step/2 {
			break
		}
		vals = append(vals, v)
	}
	return vals
}

// Product walks the Cartesian product of the axes in row-major order
// (last axis fastest) and calls fn with the flat iteration index and
// one value per axis. fn returning false stops the walk.
func Product(axes [][]float64, fn func(index int, vals []float64) bool) {
	for _, ax := range axes {
		if len(ax) == 0 {
			return
		}
	}
	vals := make([]float64, len(axes))
	idx := make([]int, len(axes))
	index := 0
	for {
		for i, ax := range axes {
			vals[i] = ax[idx[i]]
		}
		if !fn(index, vals) {
			return
		}
		index++
		i := len(axes) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(axes[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// concrete strengths tried, ascending. Strengths above 6000 are
// uneconomical on short spans and get skipped there.
var strengthList = []float64{4000, 5000, 6000, 8000, 10000}

const shortSpanFt = 25.0

func Strengths(spanFt float64) []float64 {
	if spanFt >= shortSpanFt {
		return strengthList
	}
	out := make([]float64, 0, len(strengthList))
	for _, fc := range strengthList {
		if fc > 6000 {
			continue
		}
		out = append(out, fc)
	}
	return out
}

// shared axes
var (
	balanceAxis = Axis{Min: 0.60, Max: 1.10, Step: 0.05}
	eccAxis     = Axis{Min: 0.50, Max: 1.00, Step: 0.05}
)
