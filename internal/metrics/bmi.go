// Package metrics is the pure computation core of the fitness tracker:
// BMI classification, calorie prediction, and progress aggregation.
// Nothing in this package touches storage or I/O, which keeps every
// function deterministic and directly testable.
package metrics

import "math"

// BMICategory labels the three supported BMI bands.
type BMICategory int

const (
	Underweight BMICategory = iota
	Healthy
	Overweight
)

// String implements fmt.Stringer.
func (c BMICategory) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case Healthy:
		return "Healthy"
	case Overweight:
		return "Overweight"
	default:
		return "Unknown"
	}
}

// BMIClassification pairs a category with its fixed recommendation lines
// shown on the dashboard.
type BMIClassification struct {
	Category BMICategory
	Advice   string
	Tip      string
}

// BMI band boundaries. 18.5 and 25.0 are both classified as Healthy.
const (
	bmiUnderweightBelow = 18.5
	bmiOverweightAbove  = 25.0
)

// BMI computes weight / (height/100)^2 rounded to two decimals.
// Validation of the inputs is the caller's job; the formula itself is
// defined for any positive pair.
func BMI(heightCm, weightKg float64) float64 {
	heightM := heightCm / 100
	return Round2(weightKg / (heightM * heightM))
}

// ClassifyBMI maps a BMI value to its band and recommendation.
func ClassifyBMI(bmi float64) BMIClassification {
	switch {
	case bmi < bmiUnderweightBelow:
		return BMIClassification{
			Category: Underweight,
			Advice:   "Suggested: Strength training & muscle gain workouts!",
			Tip:      "Eat high-protein meals & focus on progressive overload.",
		}
	case bmi > bmiOverweightAbove:
		return BMIClassification{
			Category: Overweight,
			Advice:   "Suggested: More cardio & weight loss workouts!",
			Tip:      "Try HIIT workouts & strength training 4-5x per week.",
		}
	default:
		return BMIClassification{
			Category: Healthy,
			Advice:   "You have a healthy BMI! Keep going!",
			Tip:      "Maintain a balanced diet & regular activity.",
		}
	}
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
