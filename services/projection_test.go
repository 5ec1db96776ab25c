package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectRevenueDegenerateInputs(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{name: "empty series", series: nil, want: 0},
		{name: "single point", series: []float64{4200}, want: 4200},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			p := ProjectRevenue(testCase.series)

			assert.Equal(t, testCase.want, p.NextPeriod)
			assert.Equal(t, TrendStable, p.Trend)
			assert.Equal(t, ConfidenceLow, p.Confidence)
		})
	}
}

func TestProjectRevenuePerfectLinearGrowth(t *testing.T) {
	series := []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

	p := ProjectRevenue(series)

	assert.InDelta(t, 1100, p.NextPeriod, 0.001)
	assert.Equal(t, TrendIncreasing, p.Trend)
	assert.Equal(t, ConfidenceHigh, p.Confidence)
}

func TestProjectRevenueDecline(t *testing.T) {
	series := []float64{1000, 900, 800, 700, 600, 500, 400, 300, 200, 100}

	p := ProjectRevenue(series)

	// Extrapolation would go to zero; projections never report negative revenue.
	assert.InDelta(t, 0, p.NextPeriod, 0.001)
	assert.Equal(t, TrendDecreasing, p.Trend)
	assert.Equal(t, ConfidenceHigh, p.Confidence)
}

func TestProjectRevenueFlatSeries(t *testing.T) {
	series := []float64{500, 500, 500, 500, 500, 500, 500, 500, 500, 500}

	p := ProjectRevenue(series)

	assert.InDelta(t, 500, p.NextPeriod, 0.001)
	assert.Equal(t, TrendStable, p.Trend)
	assert.Equal(t, ConfidenceHigh, p.Confidence)
}

func TestProjectRevenueConfidenceFromNoise(t *testing.T) {
	quiet := []float64{500, 520, 490, 510, 505, 495, 515, 500, 510, 490}
	noisy := []float64{0, 300, 0, 300, 0, 300, 0, 300, 0, 300}
	wild := []float64{0, 1000, 0, 1000, 0, 1000, 0, 1000, 0, 1000}

	assert.Equal(t, ConfidenceHigh, ProjectRevenue(quiet).Confidence)
	assert.Equal(t, ConfidenceMedium, ProjectRevenue(noisy).Confidence)
	assert.Equal(t, ConfidenceLow, ProjectRevenue(wild).Confidence)
}

func TestClassifyTrendBand(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   string
	}{
		{
			name:   "within ten percent band is stable",
			series: []float64{100, 100, 100, 100, 100, 100, 100, 105, 105, 105, 105, 105, 105, 105},
			want:   TrendStable,
		},
		{
			name:   "recent week clearly above prior",
			series: []float64{100, 100, 100, 100, 100, 100, 100, 200, 200, 200, 200, 200, 200, 200},
			want:   TrendIncreasing,
		},
		{
			name:   "recent week clearly below prior",
			series: []float64{200, 200, 200, 200, 200, 200, 200, 100, 100, 100, 100, 100, 100, 100},
			want:   TrendDecreasing,
		},
		{
			name:   "growth from zero prior",
			series: []float64{0, 0, 0, 0, 0, 0, 0, 50, 50, 50, 50, 50, 50, 50},
			want:   TrendIncreasing,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, classifyTrend(testCase.series))
		})
	}
}
