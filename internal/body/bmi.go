// Package body computes body-composition metrics from user profile data.
// It is independent of workout data.
package body

import "math"

// BMI category bands. Boundaries are inclusive-low: exactly 18.5 is Normal,
// exactly 25 is Overweight, exactly 30 is Obese.
const (
	CategoryUnderweight = "underweight"
	CategoryNormal      = "normal"
	CategoryOverweight  = "overweight"
	CategoryObese       = "obese"
)

// BMI computes body mass index (kg/m²) rounded to one decimal place.
// It reports false unless both inputs are present and positive; "no data yet"
// is an expected state for a new user, not an error.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10, true
}

// Category bands a BMI value. Callers must only pass a BMI that BMI()
// reported as defined.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
