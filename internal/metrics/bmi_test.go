package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI_Formula(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
	}{
		{"alice", 170, 70, 24.22},
		{"tall light", 190, 60, 16.62},
		{"short heavy", 150, 90, 40.0},
		{"boundary healthy", 200, 74, 18.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BMI(tt.heightCm, tt.weightKg), 1e-9)
		})
	}
}

func TestClassifyBMI_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{18.49, Underweight},
		{18.5, Healthy},
		{25.0, Healthy},
		{25.01, Overweight},
		{10.0, Underweight},
		{40.0, Overweight},
	}

	for _, tt := range tests {
		got := ClassifyBMI(tt.bmi)
		assert.Equalf(t, tt.want, got.Category, "bmi %v", tt.bmi)
		assert.NotEmptyf(t, got.Advice, "bmi %v must carry a recommendation", tt.bmi)
		assert.NotEmptyf(t, got.Tip, "bmi %v must carry a tip", tt.bmi)
	}
}

func TestBMICategory_String(t *testing.T) {
	assert.Equal(t, "Underweight", Underweight.String())
	assert.Equal(t, "Healthy", Healthy.String())
	assert.Equal(t, "Overweight", Overweight.String())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 24.22, Round2(24.2214532871))
	assert.Equal(t, 400.0, Round2(400.0))
	assert.Equal(t, 0.13, Round2(0.125))
}
