package services

// Sales projection over a historical daily-revenue series: ordinary
// least-squares regression for the next-period estimate, a trend label from
// the trailing week against the prior segment, and a confidence label from
// residual variance.

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Residual variance thresholds for the confidence label.
const (
	varianceHighConfidence   = 10000.0
	varianceMediumConfidence = 50000.0
)

type Projection struct {
	NextPeriod float64 `json:"nextPeriod"`
	Trend      string  `json:"trend"`
	Confidence string  `json:"confidence"`
}

// ProjectRevenue fits y = slope*x + intercept over the series (x = index)
// and extrapolates one step. Degenerate inputs (fewer than 2 points or a
// zero denominator) fall back to the simple average with low confidence.
func ProjectRevenue(series []float64) Projection {
	n := len(series)
	if n < 2 {
		return Projection{
			NextPeriod: mean(series),
			Trend:      TrendStable,
			Confidence: ConfidenceLow,
		}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denominator := fn*sumXX - sumX*sumX
	if denominator == 0 {
		return Projection{
			NextPeriod: mean(series),
			Trend:      TrendStable,
			Confidence: ConfidenceLow,
		}
	}

	slope := (fn*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / fn

	next := slope*fn + intercept
	if next < 0 {
		next = 0
	}

	var residualVariance float64
	for i, y := range series {
		predicted := slope*float64(i) + intercept
		residualVariance += (y - predicted) * (y - predicted)
	}
	residualVariance /= fn

	confidence := ConfidenceLow
	switch {
	case residualVariance < varianceHighConfidence:
		confidence = ConfidenceHigh
	case residualVariance < varianceMediumConfidence:
		confidence = ConfidenceMedium
	}

	return Projection{
		NextPeriod: next,
		Trend:      classifyTrend(series),
		Confidence: confidence,
	}
}

// classifyTrend compares the trailing 7-point average against the average of
// everything before it, with a +-10% band counting as stable.
func classifyTrend(series []float64) string {
	if len(series) < 2 {
		return TrendStable
	}

	window := 7
	if window > len(series) {
		window = len(series) / 2
		if window == 0 {
			window = 1
		}
	}

	recent := mean(series[len(series)-window:])
	prior := mean(series[:len(series)-window])
	if prior == 0 {
		if recent > 0 {
			return TrendIncreasing
		}
		return TrendStable
	}

	change := (recent - prior) / prior
	switch {
	case change > 0.10:
		return TrendIncreasing
	case change < -0.10:
		return TrendDecreasing
	}
	return TrendStable
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
