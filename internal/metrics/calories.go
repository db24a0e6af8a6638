package metrics

// Calorie prediction is a least-squares linear fit over a fixed reference
// dataset of (duration, calories) observations. The reference data is
// perfectly linear, so the fitted model reduces to calories = 10 x duration;
// the fit is kept (rather than the closed form) so the reference dataset
// stays the single source of truth.
var (
	referenceDurations = []float64{10, 20, 30, 40, 50, 60}
	referenceCalories  = []float64{100, 200, 300, 400, 500, 600}

	calorieSlope, calorieIntercept = fitLinear(referenceDurations, referenceCalories)
)

// PredictCalories estimates the calories burned during a workout of the
// given duration in minutes, rounded to two decimals. The model
// extrapolates freely outside the reference range; no clamping is applied.
func PredictCalories(durationMinutes int) float64 {
	return Round2(calorieSlope*float64(durationMinutes) + calorieIntercept)
}

// fitLinear computes the ordinary least-squares slope and intercept for the
// given observations. Panics if the inputs are mismatched or degenerate;
// the only caller feeds it the fixed reference dataset above.
func fitLinear(xs, ys []float64) (slope, intercept float64) {
	if len(xs) != len(ys) || len(xs) < 2 {
		panic("metrics: reference dataset must contain at least two paired observations")
	}

	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, variance float64
	for i := range xs {
		dx := xs[i] - meanX
		cov += dx * (ys[i] - meanY)
		variance += dx * dx
	}
	if variance == 0 {
		panic("metrics: reference durations are all identical")
	}

	slope = cov / variance
	intercept = meanY - slope*meanX
	return slope, intercept
}
