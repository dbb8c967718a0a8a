package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/guregu/null.v3"
)

// MedianFloats returns the median of vs, averaging the two middle elements
// for even-length input. Returns an invalid null.Float for empty input, which
// is how a group with zero usable measurements propagates downstream.
func MedianFloats(vs []float64) null.Float {
	if len(vs) == 0 {
		return null.NewFloat(0, false)
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return null.FloatFrom(sorted[mid])
	}
	return null.FloatFrom((sorted[mid-1] + sorted[mid]) / 2)
}

// Median is MedianFloats over the valid values of vs only.
func Median(vs []null.Float) null.Float {
	return MedianFloats(Valid(vs))
}

// MAD returns the median absolute deviation of vs, unscaled
// (median(|x - median(x)|)).
func MAD(vs []float64) null.Float {
	med := MedianFloats(vs)
	if !med.Valid {
		return med
	}
	devs := make([]float64, len(vs))
	for i, v := range vs {
		devs[i] = math.Abs(v - med.Float64)
	}
	return MedianFloats(devs)
}

// Valid extracts the valid values of vs, preserving order.
func Valid(vs []null.Float) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}

// Summary is a compact description of a score distribution, attached to the
// exported verdict summary for downstream eyeballing.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe summarizes vs. Zero value for empty input.
func Describe(vs []float64) Summary {
	if len(vs) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	return Summary{
		N:      len(sorted),
		Mean:   stat.Mean(sorted, nil),
		StdDev: stdDev(sorted),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: MedianFloats(sorted).Float64,
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

func stdDev(sorted []float64) float64 {
	if len(sorted) < 2 {
		return 0
	}
	return stat.StdDev(sorted, nil)
}
