package body

import "testing"

// TestBMIReference verifies the reference value: 70kg at 175cm is 22.857...,
// rounded to one decimal as 22.9, in the normal band.
func TestBMIReference(t *testing.T) {
	bmi, ok := BMI(70, 175)
	if !ok {
		t.Fatal("BMI(70, 175) reported undefined")
	}
	if bmi != 22.9 {
		t.Errorf("BMI(70, 175) = %v, want 22.9", bmi)
	}
	if c := Category(bmi); c != CategoryNormal {
		t.Errorf("Category(22.9) = %q, want %q", c, CategoryNormal)
	}
}

// TestBMIUndefined verifies that missing or non-positive inputs yield an
// undefined result instead of a bogus number.
func TestBMIUndefined(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
	}{
		{"zero weight", 0, 175},
		{"zero height", 70, 0},
		{"negative weight", -70, 175},
		{"negative height", 70, -175},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := BMI(tt.weight, tt.height); ok {
				t.Errorf("BMI(%v, %v) defined, want undefined", tt.weight, tt.height)
			}
		})
	}
}

// TestCategoryBoundaries verifies the inclusive-low band edges.
func TestCategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15.0, CategoryUnderweight},
		{18.4, CategoryUnderweight},
		{18.5, CategoryNormal},
		{24.9, CategoryNormal},
		{25.0, CategoryOverweight},
		{29.9, CategoryOverweight},
		{30.0, CategoryObese},
		{42.0, CategoryObese},
	}
	for _, tt := range tests {
		if got := Category(tt.bmi); got != tt.want {
			t.Errorf("Category(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
