package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"
)

func TestMedianFloats(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd", []float64{40, 60, 50}, 50},
		{"even", []float64{40, 60}, 50},
		{"single", []float64{7}, 7},
		{"unsorted even", []float64{4, 1, 3, 2}, 2.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MedianFloats(c.in)
			assert.True(t, got.Valid)
			assert.InDelta(t, c.want, got.Float64, 1e-12)
		})
	}
}

func TestMedianFloatsEmpty(t *testing.T) {
	assert.False(t, MedianFloats(nil).Valid)
}

func TestMedianSkipsMissing(t *testing.T) {
	vs := []null.Float{
		null.FloatFrom(10),
		null.NewFloat(0, false),
		null.FloatFrom(30),
	}
	got := Median(vs)
	assert.True(t, got.Valid)
	assert.InDelta(t, 20, got.Float64, 1e-12)

	assert.False(t, Median([]null.Float{null.NewFloat(0, false)}).Valid)
}

func TestMAD(t *testing.T) {
	got := MAD([]float64{0.2, 0.3, 0.4})
	assert.True(t, got.Valid)
	assert.InDelta(t, 0.1, got.Float64, 1e-12)

	// Signed input: MAD of deviations from the signed median.
	got = MAD([]float64{0.2, 0.4, -0.1})
	assert.True(t, got.Valid)
	assert.InDelta(t, 0.2, got.Float64, 1e-12)

	assert.False(t, MAD(nil).Valid)
}

func TestDescribe(t *testing.T) {
	sum := Describe([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, sum.N)
	assert.InDelta(t, 2.5, sum.Mean, 1e-12)
	assert.InDelta(t, 2.5, sum.Median, 1e-12)
	assert.InDelta(t, 1, sum.Min, 1e-12)
	assert.InDelta(t, 4, sum.Max, 1e-12)

	assert.Equal(t, Summary{}, Describe(nil))
	assert.Equal(t, 0.0, Describe([]float64{5}).StdDev)
}
